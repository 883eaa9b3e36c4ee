package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/logger"
)

// AlertService implements alert.Service
type AlertService struct {
	repo   alert.Repository
	logger *logger.Logger
	now    func() time.Time
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, log *logger.Logger) *AlertService {
	return &AlertService{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// Create persists a new alert. IDs are assigned here and the status
// defaults to pending.
func (s *AlertService) Create(ctx context.Context, a *alert.Alert) (string, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = alert.StatusPending
	}
	if a.DetectedAt.IsZero() {
		a.DetectedAt = s.now()
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create alert")
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":   a.ID,
		"vehicle_id": a.VehicleID,
		"type":       a.Type,
		"priority":   a.Priority,
		"created_by": a.CreatedBy,
	}).Info("Alert created")

	return a.ID, nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves alerts with filters and pagination
func (s *AlertService) List(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.Alert, int64, error) {
	return s.repo.ListWithPagination(ctx, filter, limit, offset)
}

// Transition moves an alert to a new lifecycle status. Resolving stamps
// the resolution timestamp; resetting to pending clears it, which is
// the reopen path. The optional note is appended to the alert's notes.
func (s *AlertService) Transition(ctx context.Context, id string, status alert.Status, note string) error {
	if !alert.ValidStatus(status) {
		return errors.BadRequest("Invalid alert status: " + string(status))
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	a.Status = status
	switch status {
	case alert.StatusResolved:
		now := s.now()
		a.ResolvedAt = &now
	case alert.StatusPending:
		a.ResolvedAt = nil
	}

	if note != "" {
		if a.Notes != "" {
			a.Notes += "\n"
		}
		a.Notes += note
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update alert status")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id": id,
		"status":   status,
	}).Info("Alert status updated")

	return nil
}

// Delete removes an alert
func (s *AlertService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete alert")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id": id,
	}).Info("Alert deleted")

	return nil
}

// Summary counts alerts grouped by status
func (s *AlertService) Summary(ctx context.Context) (map[string]int, error) {
	return s.repo.CountByStatus(ctx)
}
