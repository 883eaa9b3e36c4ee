package alert

import "context"

// Service defines the interface for alert business logic
type Service interface {
	// Create persists a new alert, assigning its ID and defaulting the
	// status to pending
	Create(ctx context.Context, alert *Alert) (string, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// List retrieves alerts with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Alert, int64, error)

	// Transition moves an alert to a new lifecycle status, stamping the
	// resolution timestamp and appending the optional note
	Transition(ctx context.Context, id string, status Status, note string) error

	// Delete removes an alert (administrative action)
	Delete(ctx context.Context, id string) error

	// Summary counts alerts grouped by status
	Summary(ctx context.Context) (map[string]int, error)
}
