package dto

import "time"

// CreateAlertRequest is the payload for manually creating an alert. The
// engine-generated types cannot be created by hand.
type CreateAlertRequest struct {
	VehicleID     string   `json:"vehicle_id" validate:"required_without=DriverID"`
	DriverID      string   `json:"driver_id"`
	Type          string   `json:"type" validate:"required,oneof=scheduled_maintenance high_mileage"`
	Priority      string   `json:"priority" validate:"required,oneof=critical high medium low"`
	Title         string   `json:"title" validate:"required,max=256"`
	Description   string   `json:"description" validate:"required"`
	AffectedItems []string `json:"affected_items,omitempty"`
}

// UpdateAlertStatusRequest is the payload for moving an alert through
// its lifecycle
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved postponed"`
	Note   string `json:"note,omitempty" validate:"max=1000"`
}

// AlertDTO is the API representation of an alert
type AlertDTO struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicle_id,omitempty"`
	DriverID      string     `json:"driver_id,omitempty"`
	InspectionID  string     `json:"inspection_id,omitempty"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	AffectedItems []string   `json:"affected_items,omitempty"`
	Status        string     `json:"status"`
	DetectedAt    time.Time  `json:"detected_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
}
