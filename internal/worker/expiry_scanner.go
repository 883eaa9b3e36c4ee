package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/metrics"
)

// ExpiryScanner periodically sweeps the fleet for expired or expiring
// documents and raises the corresponding alerts.
type ExpiryScanner struct {
	vehicleService vehicle.Service
	driverService  driver.Service
	alertRepo      alert.Repository
	schedule       string
	cron           *cron.Cron
	logger         *logger.Logger
}

// NewExpiryScanner creates a new expiry scanner worker
func NewExpiryScanner(
	vehicleService vehicle.Service,
	driverService driver.Service,
	alertRepo alert.Repository,
	schedule string,
	log *logger.Logger,
) *ExpiryScanner {
	return &ExpiryScanner{
		vehicleService: vehicleService,
		driverService:  driverService,
		alertRepo:      alertRepo,
		schedule:       schedule,
		logger:         log,
	}
}

// Start schedules the scan and runs one sweep immediately. It returns an
// error if the cron expression cannot be parsed.
func (s *ExpiryScanner) Start(ctx context.Context) error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.Scan(ctx)
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"schedule": s.schedule,
	}).Info("Starting expiry scanner worker")

	s.cron.Start()

	// Initial sweep so a restart doesn't wait for the next tick
	go s.Scan(ctx)

	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *ExpiryScanner) Stop() {
	if s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Expiry scanner worker stopped")
}

// Scan sweeps every vehicle and driver once
func (s *ExpiryScanner) Scan(ctx context.Context) {
	s.logger.Info("Starting document expiry scan")

	raised := 0

	vehicles, err := s.vehicleService.List(ctx, vehicle.Filter{State: string(vehicle.StateActive)})
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to list vehicles for expiry scan")
	} else {
		for _, v := range vehicles {
			alerts, err := s.vehicleService.CheckExpiry(ctx, v.ID)
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"vehicle_id": v.ID,
					"plate":      v.Plate,
				}).ErrorWithErr(err, "Failed to check vehicle document expiry")
				continue
			}
			raised += len(alerts)
		}
	}

	drivers, err := s.driverService.List(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to list drivers for expiry scan")
	} else {
		for _, d := range drivers {
			alerts, err := s.driverService.CheckExpiry(ctx, d.ID)
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"driver_id": d.ID,
				}).ErrorWithErr(err, "Failed to check driver license expiry")
				continue
			}
			raised += len(alerts)
		}
	}

	s.updatePendingGauges(ctx)

	s.logger.WithFields(map[string]interface{}{
		"alerts_raised": raised,
	}).Info("Completed document expiry scan")
}

func (s *ExpiryScanner) updatePendingGauges(ctx context.Context) {
	counts, err := s.alertRepo.CountPendingByPriority(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to count pending alerts")
		return
	}

	for _, priority := range []alert.Priority{
		alert.PriorityCritical, alert.PriorityHigh, alert.PriorityMedium, alert.PriorityLow,
	} {
		metrics.SetPendingAlerts(string(priority), float64(counts[string(priority)]))
	}
}
