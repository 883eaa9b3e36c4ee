package driver

import "time"

// Driver represents a conductor authorized to operate fleet vehicles
type Driver struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	NationalID      string    `json:"national_id"`
	LicenseNumber   string    `json:"license_number"`
	LicenseCategory string    `json:"license_category,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	// License expiration date, YYYY-MM-DD; empty when unknown
	LicenseExpiry string `json:"license_expiry,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
