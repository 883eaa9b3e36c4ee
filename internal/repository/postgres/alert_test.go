package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/testutil"
)

func seedAlert(id string) *alert.Alert {
	return &alert.Alert{
		ID:            id,
		VehicleID:     "veh-1",
		InspectionID:  "insp-1",
		Type:          alert.TypeFailedInspection,
		Priority:      alert.PriorityCritical,
		Title:         "2 issue(s) detected on ABC-123",
		Description:   "Detected 2 issue(s) during the pre-operational inspection",
		AffectedItems: []string{"Brake System", "Headlights"},
		Status:        alert.StatusPending,
		DetectedAt:    time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		CreatedBy:     alert.SystemActor,
	}
}

func TestAlertRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, seedAlert("alert-1")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "alert-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Type != alert.TypeFailedInspection {
		t.Errorf("GetByID() type = %v, want %v", got.Type, alert.TypeFailedInspection)
	}
	if got.Priority != alert.PriorityCritical {
		t.Errorf("GetByID() priority = %v, want %v", got.Priority, alert.PriorityCritical)
	}
	if len(got.AffectedItems) != 2 || got.AffectedItems[0] != "Brake System" {
		t.Errorf("GetByID() affected items = %v, want [Brake System Headlights]", got.AffectedItems)
	}
	if !got.DetectedAt.Equal(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("GetByID() detected_at = %v", got.DetectedAt)
	}
	if got.ResolvedAt != nil {
		t.Errorf("GetByID() resolved_at = %v, want nil", got.ResolvedAt)
	}
}

func TestAlertRepository_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)

	if _, err := repo.GetByID(context.Background(), "no-such-id"); err == nil {
		t.Error("GetByID() error = nil, want not found")
	}
}

func TestAlertRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := seedAlert("alert-1")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	resolved := time.Date(2026, 3, 11, 16, 30, 0, 0, time.UTC)
	a.Status = alert.StatusResolved
	a.ResolvedAt = &resolved
	a.Notes = "Brakes replaced"

	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "alert-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != alert.StatusResolved {
		t.Errorf("Update() status = %v, want %v", got.Status, alert.StatusResolved)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(resolved) {
		t.Errorf("Update() resolved_at = %v, want %v", got.ResolvedAt, resolved)
	}
	if got.Notes != "Brakes replaced" {
		t.Errorf("Update() notes = %q", got.Notes)
	}

	// Updating a missing alert reports not found.
	a.ID = "no-such-id"
	if err := repo.Update(ctx, a); err == nil {
		t.Error("Update() error = nil, want not found")
	}
}

func TestAlertRepository_ListWithPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	for i, spec := range []struct {
		id       string
		vehicle  string
		priority alert.Priority
		status   alert.Status
	}{
		{"alert-1", "veh-1", alert.PriorityCritical, alert.StatusPending},
		{"alert-2", "veh-1", alert.PriorityMedium, alert.StatusResolved},
		{"alert-3", "veh-2", alert.PriorityHigh, alert.StatusPending},
	} {
		a := seedAlert(spec.id)
		a.VehicleID = spec.vehicle
		a.Priority = spec.priority
		a.Status = spec.status
		a.DetectedAt = base.Add(time.Duration(i) * time.Hour)
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s) error = %v", spec.id, err)
		}
	}

	alerts, total, err := repo.ListWithPagination(ctx, alert.Filter{VehicleID: "veh-1"}, 10, 0)
	if err != nil {
		t.Fatalf("ListWithPagination() error = %v", err)
	}
	if total != 2 {
		t.Errorf("ListWithPagination() total = %v, want 2", total)
	}
	if len(alerts) != 2 {
		t.Fatalf("ListWithPagination() returned %d alerts, want 2", len(alerts))
	}
	// Newest first
	if alerts[0].ID != "alert-2" {
		t.Errorf("ListWithPagination() first = %v, want alert-2", alerts[0].ID)
	}

	alerts, total, err = repo.ListWithPagination(ctx, alert.Filter{Status: string(alert.StatusPending)}, 1, 0)
	if err != nil {
		t.Fatalf("ListWithPagination() error = %v", err)
	}
	if total != 2 {
		t.Errorf("ListWithPagination() total = %v, want 2", total)
	}
	if len(alerts) != 1 {
		t.Errorf("ListWithPagination() returned %d alerts, want 1 with limit", len(alerts))
	}
}

func TestAlertRepository_ExistsOpen(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := seedAlert("alert-1")
	a.Type = alert.TypeExpiredDocument
	a.AffectedItems = []string{"SOAT"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.ExistsOpen(ctx, "veh-1", "", alert.TypeExpiredDocument, "SOAT")
	if err != nil {
		t.Fatalf("ExistsOpen() error = %v", err)
	}
	if !exists {
		t.Error("ExistsOpen() = false, want true for open alert")
	}

	// Different document of the same type does not match.
	exists, err = repo.ExistsOpen(ctx, "veh-1", "", alert.TypeExpiredDocument, "Roadworthiness Certificate")
	if err != nil {
		t.Fatalf("ExistsOpen() error = %v", err)
	}
	if exists {
		t.Error("ExistsOpen() = true for unrelated document")
	}

	// Resolving the alert makes the document eligible again.
	a.Status = alert.StatusResolved
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	exists, err = repo.ExistsOpen(ctx, "veh-1", "", alert.TypeExpiredDocument, "SOAT")
	if err != nil {
		t.Fatalf("ExistsOpen() error = %v", err)
	}
	if exists {
		t.Error("ExistsOpen() = true after resolution")
	}
}

func TestAlertRepository_CountByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	for i, status := range []alert.Status{alert.StatusPending, alert.StatusPending, alert.StatusResolved} {
		a := seedAlert("alert-" + string(rune('1'+i)))
		a.Status = status
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if counts["pending"] != 2 {
		t.Errorf("CountByStatus() pending = %v, want 2", counts["pending"])
	}
	if counts["resolved"] != 1 {
		t.Errorf("CountByStatus() resolved = %v, want 1", counts["resolved"])
	}
}

func TestAlertRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, seedAlert("alert-1")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Delete(ctx, "alert-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, "alert-1"); err == nil {
		t.Error("Delete() alert still exists")
	}
	if err := repo.Delete(ctx, "alert-1"); err == nil {
		t.Error("Delete() error = nil for missing alert, want not found")
	}
}
