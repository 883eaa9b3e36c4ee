package driver

import (
	"context"

	"github.com/fleetops/preflight/internal/domain/alert"
)

// Service defines the interface for driver business logic
type Service interface {
	// Create persists a new driver, assigning its ID
	Create(ctx context.Context, d *Driver) (string, error)

	// GetByID retrieves a driver by ID
	GetByID(ctx context.Context, id string) (*Driver, error)

	// Update persists changes to a driver
	Update(ctx context.Context, d *Driver) error

	// Delete removes a driver
	Delete(ctx context.Context, id string) error

	// List retrieves all drivers
	List(ctx context.Context) ([]*Driver, error)

	// CheckExpiry runs the license expiration rules against the driver
	// and persists the resulting alert, unless an open alert of the
	// same type already targets the driver
	CheckExpiry(ctx context.Context, id string) ([]*alert.Alert, error)
}
