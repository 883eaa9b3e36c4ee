package inspection

import (
	"time"

	"github.com/fleetops/preflight/internal/domain/checklist"
)

// Health is the driver's self-reported condition at submission time.
type Health struct {
	SleepHours float64 `json:"sleep_hours"`
	Condition  string  `json:"condition"` // good, fair, poor
	Medication string  `json:"medication,omitempty"`
}

// Inspection represents one completed pre-operational check. The
// verdict is computed by the evaluator before the record is persisted
// and is never mutated afterward; only the generated document reference
// may be attached later.
type Inspection struct {
	ID           string              `json:"id"`
	VehicleID    string              `json:"vehicle_id"`
	DriverID     string              `json:"driver_id"`
	Date         string              `json:"date"` // YYYY-MM-DD
	Time         string              `json:"time"` // HH:MM
	Mileage      int                 `json:"mileage"`
	Destination  string              `json:"destination"`
	Health       Health              `json:"health"`
	Sections     checklist.Sections  `json:"sections"`
	Observations string              `json:"observations,omitempty"`
	SignatureRef string              `json:"signature_ref,omitempty"`
	DocumentRef  string              `json:"document_ref,omitempty"`
	Verdict      checklist.Verdict   `json:"verdict"`
	CreatedAt    time.Time           `json:"created_at"`
}

// SubmitResult reports the outcome of an inspection submission. The
// inspection write is the primary transaction; alert generation is
// best-effort, so a failed alert write is captured here instead of
// failing the submission.
type SubmitResult struct {
	Inspection     *Inspection
	AlertID        string
	AlertGenerated bool
	AlertErr       error
}

// Filter contains inspection filtering options
type Filter struct {
	VehicleID string
	DriverID  string
	Verdict   string
}
