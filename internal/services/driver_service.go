package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/metrics"
)

// DriverService implements driver.Service
type DriverService struct {
	repo      driver.Repository
	alertRepo alert.Repository
	alerts    alert.Service
	generator *engine.ExpirationAlertGenerator
	logger    *logger.Logger
}

// NewDriverService creates a new driver service
func NewDriverService(
	repo driver.Repository,
	alertRepo alert.Repository,
	alerts alert.Service,
	generator *engine.ExpirationAlertGenerator,
	log *logger.Logger,
) *DriverService {
	return &DriverService{
		repo:      repo,
		alertRepo: alertRepo,
		alerts:    alerts,
		generator: generator,
		logger:    log,
	}
}

// Create persists a new driver
func (s *DriverService) Create(ctx context.Context, d *driver.Driver) (string, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create driver")
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"driver_id": d.ID,
		"name":      d.Name,
	}).Info("Driver created")

	return d.ID, nil
}

// GetByID retrieves a driver by ID
func (s *DriverService) GetByID(ctx context.Context, id string) (*driver.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

// Update persists changes to a driver
func (s *DriverService) Update(ctx context.Context, d *driver.Driver) error {
	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update driver")
		return err
	}
	return nil
}

// Delete removes a driver
func (s *DriverService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete driver")
		return err
	}
	return nil
}

// List retrieves all drivers
func (s *DriverService) List(ctx context.Context) ([]*driver.Driver, error) {
	return s.repo.List(ctx)
}

// CheckExpiry runs the license expiration rules against the driver and
// persists the resulting alert, unless an open alert of the same type
// already targets the driver.
func (s *DriverService) CheckExpiry(ctx context.Context, id string) ([]*alert.Alert, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a := s.generator.ForDriver(d)
	if a == nil {
		return nil, nil
	}

	document := ""
	if len(a.AffectedItems) > 0 {
		document = a.AffectedItems[0]
	}

	exists, err := s.alertRepo.ExistsOpen(ctx, "", d.ID, a.Type, document)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	if _, err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}
	metrics.RecordAlertGenerated(string(a.Type), string(a.Priority))

	return []*alert.Alert{a}, nil
}
