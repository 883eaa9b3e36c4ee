package services

import (
	"context"
	"testing"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/testutil"
)

func newTestAlertService(repo *testutil.MockAlertRepository) *AlertService {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewAlertService(repo, log)
}

func TestAlertService_Create(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := newTestAlertService(mockRepo)

	ctx := context.Background()
	a := &alert.Alert{
		VehicleID:   "veh-1",
		Type:        alert.TypeScheduledMaintenance,
		Priority:    alert.PriorityMedium,
		Title:       "Oil change due",
		Description: "Scheduled oil change at 85000 km",
		CreatedBy:   "admin-1",
	}

	id, err := service.Create(ctx, a)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Error("Create() returned empty id")
	}

	stored := mockRepo.Alerts[id]
	if stored == nil {
		t.Fatal("Create() alert not persisted")
	}
	if stored.Status != alert.StatusPending {
		t.Errorf("Create() status = %v, want %v", stored.Status, alert.StatusPending)
	}
	if stored.DetectedAt.IsZero() {
		t.Error("Create() detected_at not stamped")
	}
}

func TestAlertService_Transition(t *testing.T) {
	tests := []struct {
		name           string
		from           alert.Status
		to             alert.Status
		wantErr        bool
		wantResolvedAt bool
	}{
		{
			name: "pending to in_progress",
			from: alert.StatusPending,
			to:   alert.StatusInProgress,
		},
		{
			name:           "in_progress to resolved stamps timestamp",
			from:           alert.StatusInProgress,
			to:             alert.StatusResolved,
			wantResolvedAt: true,
		},
		{
			name: "pending to postponed",
			from: alert.StatusPending,
			to:   alert.StatusPostponed,
		},
		{
			name:    "invalid status rejected",
			from:    alert.StatusPending,
			to:      alert.Status("closed"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := testutil.NewMockAlertRepository()
			service := newTestAlertService(mockRepo)
			ctx := context.Background()

			id, _ := service.Create(ctx, &alert.Alert{
				VehicleID: "veh-1",
				Type:      alert.TypeFailedInspection,
				Priority:  alert.PriorityHigh,
				Title:     "Test Alert",
				Status:    tt.from,
			})

			err := service.Transition(ctx, id, tt.to, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			updated := mockRepo.Alerts[id]
			if updated.Status != tt.to {
				t.Errorf("Transition() status = %v, want %v", updated.Status, tt.to)
			}
			if tt.wantResolvedAt && updated.ResolvedAt == nil {
				t.Error("Transition() resolved_at not stamped")
			}
			if !tt.wantResolvedAt && updated.ResolvedAt != nil {
				t.Errorf("Transition() resolved_at = %v, want nil", updated.ResolvedAt)
			}
		})
	}
}

func TestAlertService_TransitionReopenClearsResolvedAt(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := newTestAlertService(mockRepo)
	ctx := context.Background()

	id, _ := service.Create(ctx, &alert.Alert{
		VehicleID: "veh-1",
		Type:      alert.TypeFailedInspection,
		Priority:  alert.PriorityHigh,
		Title:     "Test Alert",
	})

	if err := service.Transition(ctx, id, alert.StatusResolved, ""); err != nil {
		t.Fatalf("Transition(resolved) error = %v", err)
	}
	if mockRepo.Alerts[id].ResolvedAt == nil {
		t.Fatal("Transition() resolved_at not stamped")
	}

	// Reopening resets the resolution timestamp.
	if err := service.Transition(ctx, id, alert.StatusPending, ""); err != nil {
		t.Fatalf("Transition(pending) error = %v", err)
	}
	if mockRepo.Alerts[id].ResolvedAt != nil {
		t.Errorf("Transition() resolved_at = %v, want nil after reopen", mockRepo.Alerts[id].ResolvedAt)
	}
}

func TestAlertService_TransitionAppendsNotes(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := newTestAlertService(mockRepo)
	ctx := context.Background()

	id, _ := service.Create(ctx, &alert.Alert{
		VehicleID: "veh-1",
		Type:      alert.TypeFailedInspection,
		Priority:  alert.PriorityHigh,
		Title:     "Test Alert",
	})

	if err := service.Transition(ctx, id, alert.StatusInProgress, "Parts ordered"); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if err := service.Transition(ctx, id, alert.StatusResolved, "Brakes replaced"); err != nil {
		t.Fatalf("Transition() error = %v", err)
	}

	want := "Parts ordered\nBrakes replaced"
	if got := mockRepo.Alerts[id].Notes; got != want {
		t.Errorf("Transition() notes = %q, want %q", got, want)
	}
}

func TestAlertService_TransitionMissingAlert(t *testing.T) {
	service := newTestAlertService(testutil.NewMockAlertRepository())

	err := service.Transition(context.Background(), "no-such-id", alert.StatusResolved, "")
	if err == nil {
		t.Error("Transition() error = nil, want not found")
	}
}

func TestAlertService_Summary(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := newTestAlertService(mockRepo)
	ctx := context.Background()

	alerts := []*alert.Alert{
		{VehicleID: "veh-1", Type: alert.TypeFailedInspection, Priority: alert.PriorityCritical, Title: "Alert 1"},
		{VehicleID: "veh-2", Type: alert.TypeExpiringDocument, Priority: alert.PriorityMedium, Title: "Alert 2"},
		{VehicleID: "veh-1", Type: alert.TypeExpiredDocument, Priority: alert.PriorityCritical, Title: "Alert 3", Status: alert.StatusResolved},
	}
	for _, a := range alerts {
		if _, err := service.Create(ctx, a); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	summary, err := service.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary[string(alert.StatusPending)] != 2 {
		t.Errorf("Summary() pending = %v, want 2", summary[string(alert.StatusPending)])
	}
	if summary[string(alert.StatusResolved)] != 1 {
		t.Errorf("Summary() resolved = %v, want 1", summary[string(alert.StatusResolved)])
	}
}

func TestAlertService_Delete(t *testing.T) {
	mockRepo := testutil.NewMockAlertRepository()
	service := newTestAlertService(mockRepo)
	ctx := context.Background()

	id, _ := service.Create(ctx, &alert.Alert{
		VehicleID: "veh-1",
		Type:      alert.TypeHighMileage,
		Priority:  alert.PriorityLow,
		Title:     "To Delete",
	})

	if err := service.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := service.GetByID(ctx, id); err == nil {
		t.Error("Delete() alert still exists after deletion")
	}
}
