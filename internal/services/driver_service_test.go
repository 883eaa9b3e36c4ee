package services

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/testutil"
)

func newDriverService(now time.Time) (*DriverService, *testutil.MockDriverRepository, *testutil.MockAlertRepository) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	repo := testutil.NewMockDriverRepository()
	alertRepo := testutil.NewMockAlertRepository()
	alerts := NewAlertService(alertRepo, log)
	generator := engine.NewExpirationAlertGenerator().WithClock(func() time.Time { return now })

	return NewDriverService(repo, alertRepo, alerts, generator, log), repo, alertRepo
}

func TestDriverService_Create(t *testing.T) {
	service, repo, _ := newDriverService(time.Now())
	ctx := context.Background()

	d := &driver.Driver{Name: "Maria Lopez", NationalID: "1020304050", LicenseNumber: "L-998877"}
	id, err := service.Create(ctx, d)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}
	if _, ok := repo.Drivers[id]; !ok {
		t.Error("Create() driver not persisted")
	}
}

func TestDriverService_CheckExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service, repo, alertRepo := newDriverService(now)
	ctx := context.Background()

	repo.Drivers["drv-1"] = &driver.Driver{
		ID:            "drv-1",
		Name:          "Maria Lopez",
		LicenseExpiry: "2026-03-14", // 4 days out
	}

	created, err := service.CheckExpiry(ctx, "drv-1")
	if err != nil {
		t.Fatalf("CheckExpiry() error = %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("CheckExpiry() = %d alerts, want 1", len(created))
	}

	a := created[0]
	if a.Type != alert.TypeExpiringDocument {
		t.Errorf("CheckExpiry() type = %v, want %v", a.Type, alert.TypeExpiringDocument)
	}
	if a.Priority != alert.PriorityHigh {
		t.Errorf("CheckExpiry() priority = %v, want %v", a.Priority, alert.PriorityHigh)
	}
	if a.DriverID != "drv-1" {
		t.Errorf("CheckExpiry() driver_id = %v, want drv-1", a.DriverID)
	}
	if len(alertRepo.Alerts) != 1 {
		t.Errorf("CheckExpiry() persisted %d alerts, want 1", len(alertRepo.Alerts))
	}
}

func TestDriverService_CheckExpiryDeduplicates(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service, repo, alertRepo := newDriverService(now)
	ctx := context.Background()

	repo.Drivers["drv-1"] = &driver.Driver{
		ID:            "drv-1",
		Name:          "Maria Lopez",
		LicenseExpiry: "2026-03-02",
	}

	if _, err := service.CheckExpiry(ctx, "drv-1"); err != nil {
		t.Fatalf("CheckExpiry() error = %v", err)
	}

	second, err := service.CheckExpiry(ctx, "drv-1")
	if err != nil {
		t.Fatalf("CheckExpiry() error = %v", err)
	}
	if len(second) != 0 {
		t.Errorf("CheckExpiry() second run = %d alerts, want 0", len(second))
	}
	if len(alertRepo.Alerts) != 1 {
		t.Errorf("CheckExpiry() persisted %d alerts, want 1", len(alertRepo.Alerts))
	}
}

func TestDriverService_CheckExpiryValidLicense(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service, repo, _ := newDriverService(now)
	ctx := context.Background()

	repo.Drivers["drv-1"] = &driver.Driver{
		ID:            "drv-1",
		Name:          "Maria Lopez",
		LicenseExpiry: "2027-01-01",
	}

	created, err := service.CheckExpiry(ctx, "drv-1")
	if err != nil {
		t.Fatalf("CheckExpiry() error = %v", err)
	}
	if len(created) != 0 {
		t.Errorf("CheckExpiry() = %d alerts, want 0 for valid license", len(created))
	}
}
