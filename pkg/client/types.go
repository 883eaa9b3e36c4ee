package client

import "time"

// Alert is the API representation of a maintenance alert
type Alert struct {
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

// Health is the driver's self-reported condition on an inspection
type Health struct {
	SleepHours float64 `json:"sleep_hours"`
	Condition  string  `json:"condition"`
	Medication string  `json:"medication,omitempty"`
}

// Inspection is the API representation of a pre-operational inspection
type Inspection struct {
	ID           string                       `json:"id"`
	VehicleID    string                       `json:"vehicle_id"`
	DriverID     string                       `json:"driver_id"`
	Date         string                       `json:"date"`
	Time         string                       `json:"time"`
	Mileage      int                          `json:"mileage"`
	Destination  string                       `json:"destination,omitempty"`
	Health       Health                       `json:"health"`
	Sections     map[string]map[string]string `json:"sections"`
	Observations string                       `json:"observations,omitempty"`
	Verdict      string                       `json:"verdict"`
	CreatedAt    time.Time                    `json:"created_at"`
}

// SubmitInspectionResult reports the outcome of a submission
type SubmitInspectionResult struct {
	ID             string `json:"id"`
	Verdict        string `json:"verdict"`
	AlertID        string `json:"alert_id,omitempty"`
	AlertGenerated bool   `json:"alert_generated"`
	AlertError     string `json:"alert_error,omitempty"`
}

// Vehicle is the API representation of a fleet vehicle
type Vehicle struct {
	ID                   string    `json:"id"`
	Plate                string    `json:"plate"`
	Make                 string    `json:"make"`
	Model                string    `json:"model"`
	Year                 int       `json:"year"`
	Kind                 string    `json:"kind"`
	Color                string    `json:"color,omitempty"`
	Mileage              int       `json:"mileage"`
	State                string    `json:"state"`
	SOATExpiry           string    `json:"soat_expiry,omitempty"`
	RoadworthinessExpiry string    `json:"roadworthiness_expiry,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Driver is the API representation of a driver
type Driver struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	NationalID      string    `json:"national_id"`
	LicenseNumber   string    `json:"license_number"`
	LicenseCategory string    `json:"license_category,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	LicenseExpiry   string    `json:"license_expiry,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AlertPage is a paginated list of alerts
type AlertPage struct {
	Data       []Alert `json:"data"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalItems int64   `json:"total_items"`
	TotalPages int     `json:"total_pages"`
}

// InspectionPage is a paginated list of inspections
type InspectionPage struct {
	Data       []Inspection `json:"data"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalItems int64        `json:"total_items"`
	TotalPages int          `json:"total_pages"`
}
