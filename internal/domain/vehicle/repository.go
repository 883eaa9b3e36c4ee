package vehicle

import "context"

// Repository defines the interface for vehicle data access
type Repository interface {
	// Create persists a new vehicle
	Create(ctx context.Context, v *Vehicle) error

	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id string) (*Vehicle, error)

	// Update persists changes to a vehicle
	Update(ctx context.Context, v *Vehicle) error

	// Delete removes a vehicle
	Delete(ctx context.Context, id string) error

	// List retrieves all vehicles matching the filter
	List(ctx context.Context, filter Filter) ([]*Vehicle, error)
}
