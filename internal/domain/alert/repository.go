package alert

import "context"

// Repository defines the interface for alert data access
type Repository interface {
	// Create persists a new alert
	Create(ctx context.Context, alert *Alert) error

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// Update persists changes to an alert
	Update(ctx context.Context, alert *Alert) error

	// Delete removes an alert
	Delete(ctx context.Context, id string) error

	// ListWithPagination retrieves alerts with filters and pagination
	ListWithPagination(ctx context.Context, filter Filter, limit, offset int) ([]*Alert, int64, error)

	// CountByStatus counts alerts grouped by status
	CountByStatus(ctx context.Context) (map[string]int, error)

	// ExistsOpen reports whether a pending or in-progress alert of the
	// given type for the given document already targets the vehicle or
	// driver
	ExistsOpen(ctx context.Context, vehicleID, driverID string, t Type, document string) (bool, error)

	// CountPendingByPriority counts pending alerts grouped by priority
	CountPendingByPriority(ctx context.Context) (map[string]int, error)
}
