package inspection

import "context"

// Service defines the interface for inspection business logic
type Service interface {
	// Submit evaluates the checklist, persists the inspection with its
	// verdict, and generates a maintenance alert for any failed items.
	// Alert generation is best-effort: its failure is reported through
	// the SubmitResult, never as the returned error.
	Submit(ctx context.Context, insp *Inspection) (*SubmitResult, error)

	// GetByID retrieves an inspection by ID
	GetByID(ctx context.Context, id string) (*Inspection, error)

	// List retrieves inspections with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Inspection, int64, error)
}
