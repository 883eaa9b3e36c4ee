package driver

import "context"

// Repository defines the interface for driver data access
type Repository interface {
	// Create persists a new driver
	Create(ctx context.Context, d *Driver) error

	// GetByID retrieves a driver by ID
	GetByID(ctx context.Context, id string) (*Driver, error)

	// Update persists changes to a driver
	Update(ctx context.Context, d *Driver) error

	// Delete removes a driver
	Delete(ctx context.Context, id string) error

	// List retrieves all drivers
	List(ctx context.Context) ([]*Driver, error)
}
