package dto

import "time"

// CreateDriverRequest is the payload for registering a driver
type CreateDriverRequest struct {
	Name            string `json:"name" validate:"required,max=128"`
	NationalID      string `json:"national_id" validate:"required,max=32"`
	LicenseNumber   string `json:"license_number" validate:"required,max=32"`
	LicenseCategory string `json:"license_category"`
	Phone           string `json:"phone"`
	Email           string `json:"email" validate:"omitempty,email"`
	LicenseExpiry   string `json:"license_expiry" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateDriverRequest is the payload for updating a driver
type UpdateDriverRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=128"`
	NationalID      *string `json:"national_id" validate:"omitempty,max=32"`
	LicenseNumber   *string `json:"license_number" validate:"omitempty,max=32"`
	LicenseCategory *string `json:"license_category"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	LicenseExpiry   *string `json:"license_expiry" validate:"omitempty,datetime=2006-01-02"`
}

// DriverDTO is the API representation of a driver
type DriverDTO struct {
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
