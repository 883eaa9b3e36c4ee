package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/domain/inspection"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/metrics"
)

// InspectionService implements inspection.Service
type InspectionService struct {
	repo        inspection.Repository
	vehicleRepo vehicle.Repository
	alerts      alert.Service
	evaluator   *checklist.Evaluator
	generator   *engine.InspectionAlertGenerator
	logger      *logger.Logger
	now         func() time.Time
}

// NewInspectionService creates a new inspection service
func NewInspectionService(
	repo inspection.Repository,
	vehicleRepo vehicle.Repository,
	alerts alert.Service,
	evaluator *checklist.Evaluator,
	generator *engine.InspectionAlertGenerator,
	log *logger.Logger,
) *InspectionService {
	return &InspectionService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		alerts:      alerts,
		evaluator:   evaluator,
		generator:   generator,
		logger:      log,
		now:         time.Now,
	}
}

// Submit evaluates the checklist, persists the inspection, then runs
// the alert generator. The inspection write is the primary transaction:
// once it commits, Submit reports success even if alert persistence
// fails, and the failure is carried in the SubmitResult instead.
func (s *InspectionService) Submit(ctx context.Context, insp *inspection.Inspection) (*inspection.SubmitResult, error) {
	now := s.now()
	if insp.ID == "" {
		insp.ID = uuid.New().String()
	}
	if insp.Date == "" {
		insp.Date = now.Format("2006-01-02")
	}
	if insp.Time == "" {
		insp.Time = now.Format("15:04")
	}
	insp.CreatedAt = now

	// The verdict is computed before persistence and is immutable on
	// the stored record.
	insp.Verdict = s.evaluator.Evaluate(insp.Sections)
	metrics.RecordEvaluation(string(insp.Verdict))

	if err := s.repo.Create(ctx, insp); err != nil {
		s.logger.ErrorWithErr(err, "Failed to save inspection")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"inspection_id": insp.ID,
		"vehicle_id":    insp.VehicleID,
		"driver_id":     insp.DriverID,
		"verdict":       insp.Verdict,
	}).Info("Inspection saved")

	result := &inspection.SubmitResult{Inspection: insp}

	plate := insp.VehicleID
	if v, err := s.vehicleRepo.GetByID(ctx, insp.VehicleID); err == nil {
		plate = v.Plate
	} else {
		s.logger.WithFields(map[string]interface{}{
			"vehicle_id": insp.VehicleID,
		}).Warn("Vehicle lookup failed, using ID in alert text")
	}

	a := s.generator.Generate(insp, plate)
	if a == nil {
		return result, nil
	}

	id, err := s.alerts.Create(ctx, a)
	if err != nil {
		// Best-effort: the safety record is already durable, a lost
		// notification must not roll it back.
		metrics.RecordAlertGenerationFailure()
		s.logger.WithFields(map[string]interface{}{
			"inspection_id": insp.ID,
		}).ErrorWithErr(err, "Inspection saved but alert generation failed")
		result.AlertErr = err
		return result, nil
	}

	metrics.RecordAlertGenerated(string(a.Type), string(a.Priority))
	result.AlertID = id
	result.AlertGenerated = true
	return result, nil
}

// GetByID retrieves an inspection by ID
func (s *InspectionService) GetByID(ctx context.Context, id string) (*inspection.Inspection, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves inspections with filters and pagination
func (s *InspectionService) List(ctx context.Context, filter inspection.Filter, limit, offset int) ([]*inspection.Inspection, int64, error) {
	return s.repo.ListWithPagination(ctx, filter, limit, offset)
}
