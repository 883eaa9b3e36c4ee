package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/metrics"
)

// VehicleService implements vehicle.Service
type VehicleService struct {
	repo      vehicle.Repository
	alertRepo alert.Repository
	alerts    alert.Service
	generator *engine.ExpirationAlertGenerator
	logger    *logger.Logger
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(
	repo vehicle.Repository,
	alertRepo alert.Repository,
	alerts alert.Service,
	generator *engine.ExpirationAlertGenerator,
	log *logger.Logger,
) *VehicleService {
	return &VehicleService{
		repo:      repo,
		alertRepo: alertRepo,
		alerts:    alerts,
		generator: generator,
		logger:    log,
	}
}

// Create persists a new vehicle
func (s *VehicleService) Create(ctx context.Context, v *vehicle.Vehicle) (string, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.State == "" {
		v.State = vehicle.StateActive
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create vehicle")
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id": v.ID,
		"plate":      v.Plate,
	}).Info("Vehicle created")

	return v.ID, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

// Update persists changes to a vehicle
func (s *VehicleService) Update(ctx context.Context, v *vehicle.Vehicle) error {
	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update vehicle")
		return err
	}
	return nil
}

// Delete removes a vehicle
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete vehicle")
		return err
	}
	return nil
}

// List retrieves all vehicles matching the filter
func (s *VehicleService) List(ctx context.Context, filter vehicle.Filter) ([]*vehicle.Vehicle, error) {
	return s.repo.List(ctx, filter)
}

// CheckExpiry runs the expiration rules against the vehicle's documents
// and persists any resulting alerts. A document that already has an
// open alert of the same type is skipped so repeated checks don't stack
// duplicates.
func (s *VehicleService) CheckExpiry(ctx context.Context, id string) ([]*alert.Alert, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var created []*alert.Alert
	for _, a := range s.generator.ForVehicle(v) {
		document := ""
		if len(a.AffectedItems) > 0 {
			document = a.AffectedItems[0]
		}

		exists, err := s.alertRepo.ExistsOpen(ctx, v.ID, "", a.Type, document)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		if _, err := s.alerts.Create(ctx, a); err != nil {
			return created, err
		}
		metrics.RecordAlertGenerated(string(a.Type), string(a.Priority))
		created = append(created, a)
	}

	return created, nil
}
