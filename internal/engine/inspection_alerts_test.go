package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/domain/inspection"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

// fullChecklist builds a complete checklist with every catalog item
// answered good, then flips the given dotted keys to bad.
func fullChecklist(badKeys ...string) checklist.Sections {
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

func newTestInspection(sections checklist.Sections) *inspection.Inspection {
	return &inspection.Inspection{
		ID:        "insp-1",
		VehicleID: "veh-1",
		DriverID:  "drv-1",
		Sections:  sections,
	}
}

func TestInspectionAlertGenerator_CleanChecklist(t *testing.T) {
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(fixedClock())

	a := g.Generate(newTestInspection(fullChecklist()), "ABC-123")
	if a != nil {
		t.Errorf("Generate() = %+v, want nil for clean checklist", a)
	}
}

func TestInspectionAlertGenerator_PriorityIsHighestTier(t *testing.T) {
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(fixedClock())

	tests := []struct {
		name    string
		badKeys []string
		want    alert.Priority
	}{
		{
			name:    "medium failure only",
			badKeys: []string{"exterior.wipers"},
			want:    alert.PriorityMedium,
		},
		{
			name:    "high failure outranks medium",
			badKeys: []string{"exterior.wipers", "exterior.headlights"},
			want:    alert.PriorityHigh,
		},
		{
			name:    "critical failure outranks everything",
			badKeys: []string{"exterior.wipers", "exterior.headlights", "interior.brakes"},
			want:    alert.PriorityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := g.Generate(newTestInspection(fullChecklist(tt.badKeys...)), "ABC-123")
			if a == nil {
				t.Fatal("Generate() returned nil")
			}
			if a.Priority != tt.want {
				t.Errorf("Generate() priority = %v, want %v", a.Priority, tt.want)
			}
		})
	}
}

func TestInspectionAlertGenerator_AggregatesAllFailures(t *testing.T) {
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(fixedClock())

	sections := fullChecklist("fluids.coolant", "exterior.headlights", "interior.brakes")
	a := g.Generate(newTestInspection(sections), "ABC-123")
	if a == nil {
		t.Fatal("Generate() returned nil")
	}

	// One alert covers all failures, critical first.
	want := []string{"Brake System", "Headlights", "Coolant"}
	if len(a.AffectedItems) != len(want) {
		t.Fatalf("Generate() affected items = %v, want %v", a.AffectedItems, want)
	}
	for i, name := range want {
		if a.AffectedItems[i] != name {
			t.Errorf("Generate() affected[%d] = %q, want %q", i, a.AffectedItems[i], name)
		}
	}

	if !strings.Contains(a.Description, "CRITICAL (1):") {
		t.Errorf("Generate() description missing critical block:\n%s", a.Description)
	}
	if !strings.Contains(a.Description, "3 issue(s)") {
		t.Errorf("Generate() description missing issue count:\n%s", a.Description)
	}
	if !strings.Contains(a.Title, "ABC-123") {
		t.Errorf("Generate() title = %q, want plate in title", a.Title)
	}
}

func TestInspectionAlertGenerator_AlertFields(t *testing.T) {
	clock := fixedClock()
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(clock)

	a := g.Generate(newTestInspection(fullChecklist("safety.wheelChocks")), "ABC-123")
	if a == nil {
		t.Fatal("Generate() returned nil")
	}

	if a.Type != alert.TypeFailedInspection {
		t.Errorf("Generate() type = %v, want %v", a.Type, alert.TypeFailedInspection)
	}
	if a.Status != alert.StatusPending {
		t.Errorf("Generate() status = %v, want %v", a.Status, alert.StatusPending)
	}
	if a.CreatedBy != alert.SystemActor {
		t.Errorf("Generate() created_by = %v, want %v", a.CreatedBy, alert.SystemActor)
	}
	if a.VehicleID != "veh-1" {
		t.Errorf("Generate() vehicle_id = %v, want veh-1", a.VehicleID)
	}
	if a.InspectionID != "insp-1" {
		t.Errorf("Generate() inspection_id = %v, want insp-1", a.InspectionID)
	}
	if !a.DetectedAt.Equal(clock()) {
		t.Errorf("Generate() detected_at = %v, want %v", a.DetectedAt, clock())
	}
}

func TestInspectionAlertGenerator_OffCatalogItem(t *testing.T) {
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(fixedClock())

	sections := fullChecklist()
	sections["cabin"] = checklist.Section{"radio": checklist.ResponseBad}

	a := g.Generate(newTestInspection(sections), "ABC-123")
	if a == nil {
		t.Fatal("Generate() returned nil for off-catalog failure")
	}

	// Unknown items classify as medium and report under their raw key.
	if a.Priority != alert.PriorityMedium {
		t.Errorf("Generate() priority = %v, want %v", a.Priority, alert.PriorityMedium)
	}
	if len(a.AffectedItems) != 1 || a.AffectedItems[0] != "cabin.radio" {
		t.Errorf("Generate() affected items = %v, want [cabin.radio]", a.AffectedItems)
	}
}

func TestInspectionAlertGenerator_NotApplicableIsNotFailure(t *testing.T) {
	g := NewInspectionAlertGenerator(checklist.NewClassifier()).WithClock(fixedClock())

	sections := fullChecklist()
	sections[checklist.SectionSafety]["wheelChocks"] = checklist.ResponseNotApplicable

	if a := g.Generate(newTestInspection(sections), "ABC-123"); a != nil {
		t.Errorf("Generate() = %+v, want nil when items are not applicable", a)
	}
}
