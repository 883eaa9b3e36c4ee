package inspection

import "context"

// Repository defines the interface for inspection data access
type Repository interface {
	// Create persists a new inspection with its computed verdict
	Create(ctx context.Context, insp *Inspection) error

	// GetByID retrieves an inspection by ID
	GetByID(ctx context.Context, id string) (*Inspection, error)

	// ListWithPagination retrieves inspections with filters and pagination
	ListWithPagination(ctx context.Context, filter Filter, limit, offset int) ([]*Inspection, int64, error)

	// AttachDocument records the reference of a generated report
	AttachDocument(ctx context.Context, id, ref string) error
}
