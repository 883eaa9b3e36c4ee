package vehicle

import (
	"context"

	"github.com/fleetops/preflight/internal/domain/alert"
)

// Service defines the interface for vehicle business logic
type Service interface {
	// Create persists a new vehicle, assigning its ID
	Create(ctx context.Context, v *Vehicle) (string, error)

	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id string) (*Vehicle, error)

	// Update persists changes to a vehicle
	Update(ctx context.Context, v *Vehicle) error

	// Delete removes a vehicle
	Delete(ctx context.Context, id string) error

	// List retrieves all vehicles matching the filter
	List(ctx context.Context, filter Filter) ([]*Vehicle, error)

	// CheckExpiry runs the document expiration rules against the
	// vehicle and persists any resulting alerts, skipping documents
	// that already have an open alert of the same type
	CheckExpiry(ctx context.Context, id string) ([]*alert.Alert, error)
}
