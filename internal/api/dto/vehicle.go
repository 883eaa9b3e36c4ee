package dto

import "time"

// CreateVehicleRequest is the payload for registering a vehicle
type CreateVehicleRequest struct {
	Plate                string `json:"plate" validate:"required,max=16"`
	Make                 string `json:"make" validate:"required"`
	Model                string `json:"model" validate:"required"`
	Year                 int    `json:"year" validate:"required,gte=1950,lte=2100"`
	Kind                 string `json:"kind" validate:"required"`
	Color                string `json:"color"`
	Mileage              int    `json:"mileage" validate:"gte=0"`
	SOATExpiry           string `json:"soat_expiry" validate:"omitempty,datetime=2006-01-02"`
	RoadworthinessExpiry string `json:"roadworthiness_expiry" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateVehicleRequest is the payload for updating a vehicle
type UpdateVehicleRequest struct {
	Plate                *string `json:"plate" validate:"omitempty,max=16"`
	Make                 *string `json:"make"`
	Model                *string `json:"model"`
	Year                 *int    `json:"year" validate:"omitempty,gte=1950,lte=2100"`
	Kind                 *string `json:"kind"`
	Color                *string `json:"color"`
	Mileage              *int    `json:"mileage" validate:"omitempty,gte=0"`
	State                *string `json:"state" validate:"omitempty,oneof=active inactive maintenance"`
	SOATExpiry           *string `json:"soat_expiry" validate:"omitempty,datetime=2006-01-02"`
	RoadworthinessExpiry *string `json:"roadworthiness_expiry" validate:"omitempty,datetime=2006-01-02"`
}

// VehicleDTO is the API representation of a vehicle
type VehicleDTO struct {
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
