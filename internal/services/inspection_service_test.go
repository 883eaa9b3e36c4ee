package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/domain/inspection"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/engine"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/testutil"
)

type inspectionFixture struct {
	service     *InspectionService
	repo        *testutil.MockInspectionRepository
	vehicleRepo *testutil.MockVehicleRepository
	alertRepo   *testutil.MockAlertRepository
}

func newInspectionFixture() *inspectionFixture {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	repo := testutil.NewMockInspectionRepository()
	vehicleRepo := testutil.NewMockVehicleRepository()
	alertRepo := testutil.NewMockAlertRepository()
	alerts := NewAlertService(alertRepo, log)
	generator := engine.NewInspectionAlertGenerator(checklist.NewClassifier())

	vehicleRepo.Vehicles["veh-1"] = &vehicle.Vehicle{ID: "veh-1", Plate: "ABC-123"}

	return &inspectionFixture{
		service:     NewInspectionService(repo, vehicleRepo, alerts, checklist.NewEvaluator(), generator, log),
		repo:        repo,
		vehicleRepo: vehicleRepo,
		alertRepo:   alertRepo,
	}
}

// checklistWith answers every catalog item good, then flips the given
// dotted keys to bad.
func checklistWith(badKeys ...string) checklist.Sections {
	s := make(checklist.Sections)
	for _, spec := range checklist.Catalog {
		answers := make(checklist.Section, len(spec.Items))
		for _, item := range spec.Items {
			answers[item] = checklist.ResponseGood
		}
		s[spec.Key] = answers
	}
	for _, key := range badKeys {
		section, item, _ := strings.Cut(key, ".")
		s[section][item] = checklist.ResponseBad
	}
	return s
}

func newSubmission(sections checklist.Sections) *inspection.Inspection {
	return &inspection.Inspection{
		VehicleID: "veh-1",
		DriverID:  "drv-1",
		Mileage:   84200,
		Health:    inspection.Health{SleepHours: 8, Condition: "good"},
		Sections:  sections,
	}
}

func TestInspectionService_SubmitCleanChecklist(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	result, err := f.service.Submit(ctx, newSubmission(checklistWith()))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if result.Inspection.Verdict != checklist.VerdictApproved {
		t.Errorf("Submit() verdict = %v, want %v", result.Inspection.Verdict, checklist.VerdictApproved)
	}
	if result.AlertGenerated {
		t.Error("Submit() generated alert for clean checklist")
	}
	if len(f.alertRepo.Alerts) != 0 {
		t.Errorf("Submit() persisted %d alerts, want 0", len(f.alertRepo.Alerts))
	}
	if _, ok := f.repo.Inspections[result.Inspection.ID]; !ok {
		t.Error("Submit() inspection not persisted")
	}
}

func TestInspectionService_SubmitGatingFailure(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	result, err := f.service.Submit(ctx, newSubmission(checklistWith("interior.brakes")))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if result.Inspection.Verdict != checklist.VerdictRejected {
		t.Errorf("Submit() verdict = %v, want %v", result.Inspection.Verdict, checklist.VerdictRejected)
	}
	if !result.AlertGenerated {
		t.Fatal("Submit() no alert for failed inspection")
	}

	a := f.alertRepo.Alerts[result.AlertID]
	if a == nil {
		t.Fatal("Submit() alert not persisted")
	}
	if a.Priority != alert.PriorityCritical {
		t.Errorf("Submit() alert priority = %v, want %v", a.Priority, alert.PriorityCritical)
	}
	if !strings.Contains(a.Title, "ABC-123") {
		t.Errorf("Submit() alert title = %q, want plate", a.Title)
	}
	if a.InspectionID != result.Inspection.ID {
		t.Errorf("Submit() alert inspection_id = %v, want %v", a.InspectionID, result.Inspection.ID)
	}
}

func TestInspectionService_SubmitNonGatingFailure(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	// A broken wiper doesn't block the trip but still raises an alert.
	result, err := f.service.Submit(ctx, newSubmission(checklistWith("exterior.wipers")))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if result.Inspection.Verdict != checklist.VerdictApproved {
		t.Errorf("Submit() verdict = %v, want %v", result.Inspection.Verdict, checklist.VerdictApproved)
	}
	if !result.AlertGenerated {
		t.Error("Submit() no alert for failed item on approved inspection")
	}
}

func TestInspectionService_SubmitAlertFailureDoesNotFailSubmission(t *testing.T) {
	f := newInspectionFixture()
	f.alertRepo.CreateError = errors.New("db unavailable")
	ctx := context.Background()

	result, err := f.service.Submit(ctx, newSubmission(checklistWith("interior.brakes")))
	if err != nil {
		t.Fatalf("Submit() error = %v, want nil when only alert write fails", err)
	}

	if result.AlertGenerated {
		t.Error("Submit() reported alert generated despite failure")
	}
	if result.AlertErr == nil {
		t.Error("Submit() alert error not carried in result")
	}
	if _, ok := f.repo.Inspections[result.Inspection.ID]; !ok {
		t.Error("Submit() inspection not persisted")
	}
}

func TestInspectionService_SubmitUnknownVehicleUsesID(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	insp := newSubmission(checklistWith("interior.brakes"))
	insp.VehicleID = "veh-missing"

	result, err := f.service.Submit(ctx, insp)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.AlertGenerated {
		t.Fatal("Submit() no alert generated")
	}

	a := f.alertRepo.Alerts[result.AlertID]
	if !strings.Contains(a.Title, "veh-missing") {
		t.Errorf("Submit() alert title = %q, want vehicle ID fallback", a.Title)
	}
}

func TestInspectionService_SubmitPersistFailure(t *testing.T) {
	f := newInspectionFixture()
	f.repo.CreateError = errors.New("disk full")
	ctx := context.Background()

	if _, err := f.service.Submit(ctx, newSubmission(checklistWith())); err == nil {
		t.Error("Submit() error = nil, want persistence error")
	}
	if len(f.alertRepo.Alerts) != 0 {
		t.Error("Submit() raised alerts despite failed persistence")
	}
}

func TestInspectionService_SubmitDefaultsDateAndTime(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	result, err := f.service.Submit(ctx, newSubmission(checklistWith()))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if result.Inspection.Date == "" {
		t.Error("Submit() date not defaulted")
	}
	if result.Inspection.Time == "" {
		t.Error("Submit() time not defaulted")
	}
	if result.Inspection.ID == "" {
		t.Error("Submit() id not assigned")
	}
}

func TestInspectionService_List(t *testing.T) {
	f := newInspectionFixture()
	ctx := context.Background()

	for _, vehicleID := range []string{"veh-1", "veh-1", "veh-2"} {
		insp := newSubmission(checklistWith())
		insp.VehicleID = vehicleID
		if _, err := f.service.Submit(ctx, insp); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	results, total, err := f.service.List(ctx, inspection.Filter{VehicleID: "veh-1"}, 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Errorf("List() total = %v, want 2", total)
	}
	if len(results) != 2 {
		t.Errorf("List() returned %d inspections, want 2", len(results))
	}
}
