package alert

import "time"

// Alert represents a maintenance alert raised against a vehicle or a
// driver, either generated by the engine or created by an administrator.
type Alert struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id,omitempty"`
	DriverID      string     `json:"driver_id,omitempty"`
	InspectionID  string     `json:"inspection_id,omitempty"`
	Type          Type       `json:"type"`
	Priority      Priority   `json:"priority"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	AffectedItems []string   `json:"affected_items,omitempty"`
	Status        Status     `json:"status"`
	DetectedAt    time.Time  `json:"detected_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
}

// SystemActor is the attribution recorded on engine-generated alerts.
const SystemActor = "system"

// Type classifies what an alert is about.
type Type string

// Alert types. The engine produces the first three; the last two exist
// for manually created alerts only.
const (
	TypeFailedInspection     Type = "failed_inspection"
	TypeExpiredDocument      Type = "expired_document"
	TypeExpiringDocument     Type = "expiring_document"
	TypeScheduledMaintenance Type = "scheduled_maintenance"
	TypeHighMileage          Type = "high_mileage"
)

// Priority is the urgency of an alert, most urgent first.
type Priority string

// Alert priorities
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Status is the lifecycle state of an alert.
type Status string

// Alert statuses. Every alert starts out pending.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusPostponed  Status = "postponed"
)

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusPostponed:
		return true
	}
	return false
}

// Open reports whether the alert still needs attention.
func (a *Alert) Open() bool {
	return a.Status == StatusPending || a.Status == StatusInProgress
}

// Filter contains alert filtering options
type Filter struct {
	Type      string
	Priority  string
	Status    string
	VehicleID string
	DriverID  string
}
