package dto

import "time"

// HealthDTO carries the driver's self-reported condition
type HealthDTO struct {
	SleepHours float64 `json:"sleep_hours" validate:"gte=0,lte=24"`
	Condition  string  `json:"condition" validate:"omitempty,oneof=good fair poor"`
	Medication string  `json:"medication,omitempty"`
}

// SubmitInspectionRequest is the payload for submitting a completed
// pre-operational checklist
type SubmitInspectionRequest struct {
	VehicleID    string                       `json:"vehicle_id" validate:"required"`
	DriverID     string                       `json:"driver_id" validate:"required"`
	Date         string                       `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         string                       `json:"time" validate:"omitempty,datetime=15:04"`
	Mileage      int                          `json:"mileage" validate:"gte=0"`
	Destination  string                       `json:"destination"`
	Health       HealthDTO                    `json:"health"`
	Sections     map[string]map[string]string `json:"sections" validate:"required"`
	Observations string                       `json:"observations,omitempty"`
	SignatureRef string                       `json:"signature_ref,omitempty"`
}

// SubmitInspectionResponse reports the stored inspection and the outcome
// of alert generation
type SubmitInspectionResponse struct {
	ID             string `json:"id"`
	Verdict        string `json:"verdict"`
	AlertID        string `json:"alert_id,omitempty"`
	AlertGenerated bool   `json:"alert_generated"`
	AlertError     string `json:"alert_error,omitempty"`
}

// InspectionDTO is the API representation of an inspection
type InspectionDTO struct {
	ID           string                       `json:"id"`
	VehicleID    string                       `json:"vehicle_id"`
	DriverID     string                       `json:"driver_id"`
	Date         string                       `json:"date"`
	Time         string                       `json:"time"`
	Mileage      int                          `json:"mileage"`
	Destination  string                       `json:"destination,omitempty"`
	Health       HealthDTO                    `json:"health"`
	Sections     map[string]map[string]string `json:"sections"`
	Observations string                       `json:"observations,omitempty"`
	SignatureRef string                       `json:"signature_ref,omitempty"`
	DocumentRef  string                       `json:"document_ref,omitempty"`
	Verdict      string                       `json:"verdict"`
	CreatedAt    time.Time                    `json:"created_at"`
}
