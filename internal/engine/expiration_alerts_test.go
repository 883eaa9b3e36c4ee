package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/domain/vehicle"
)

// The clock is pinned to 2026-03-10 so expiry dates below map to exact
// day offsets.
func expiryClock() func() time.Time {
	ts := time.Date(2026, 3, 10, 14, 45, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestExpirationAlertGenerator_ForVehicle(t *testing.T) {
	g := NewExpirationAlertGenerator().WithClock(expiryClock())

	tests := []struct {
		name         string
		soatExpiry   string
		wantAlert    bool
		wantType     alert.Type
		wantPriority alert.Priority
	}{
		{
			name:       "no expiry recorded",
			soatExpiry: "",
			wantAlert:  false,
		},
		{
			name:       "unparseable date skipped",
			soatExpiry: "next week",
			wantAlert:  false,
		},
		{
			name:       "expires beyond lookahead",
			soatExpiry: "2026-03-26", // 16 days out
			wantAlert:  false,
		},
		{
			name:         "expires at lookahead boundary",
			soatExpiry:   "2026-03-25", // 15 days out
			wantAlert:    true,
			wantType:     alert.TypeExpiringDocument,
			wantPriority: alert.PriorityMedium,
		},
		{
			name:         "expires in eight days",
			soatExpiry:   "2026-03-18",
			wantAlert:    true,
			wantType:     alert.TypeExpiringDocument,
			wantPriority: alert.PriorityMedium,
		},
		{
			name:         "expires at urgent boundary",
			soatExpiry:   "2026-03-17", // 7 days out
			wantAlert:    true,
			wantType:     alert.TypeExpiringDocument,
			wantPriority: alert.PriorityHigh,
		},
		{
			name:         "expires tomorrow",
			soatExpiry:   "2026-03-11",
			wantAlert:    true,
			wantType:     alert.TypeExpiringDocument,
			wantPriority: alert.PriorityHigh,
		},
		{
			name:         "expires today",
			soatExpiry:   "2026-03-10",
			wantAlert:    true,
			wantType:     alert.TypeExpiredDocument,
			wantPriority: alert.PriorityCritical,
		},
		{
			name:         "already expired",
			soatExpiry:   "2026-03-01",
			wantAlert:    true,
			wantType:     alert.TypeExpiredDocument,
			wantPriority: alert.PriorityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &vehicle.Vehicle{ID: "veh-1", Plate: "ABC-123", SOATExpiry: tt.soatExpiry}
			alerts := g.ForVehicle(v)

			if !tt.wantAlert {
				if len(alerts) != 0 {
					t.Errorf("ForVehicle() = %d alerts, want 0", len(alerts))
				}
				return
			}

			if len(alerts) != 1 {
				t.Fatalf("ForVehicle() = %d alerts, want 1", len(alerts))
			}
			a := alerts[0]
			if a.Type != tt.wantType {
				t.Errorf("ForVehicle() type = %v, want %v", a.Type, tt.wantType)
			}
			if a.Priority != tt.wantPriority {
				t.Errorf("ForVehicle() priority = %v, want %v", a.Priority, tt.wantPriority)
			}
			if a.VehicleID != "veh-1" {
				t.Errorf("ForVehicle() vehicle_id = %v, want veh-1", a.VehicleID)
			}
			if a.CreatedBy != alert.SystemActor {
				t.Errorf("ForVehicle() created_by = %v, want %v", a.CreatedBy, alert.SystemActor)
			}
		})
	}
}

func TestExpirationAlertGenerator_BothDocumentsExpiring(t *testing.T) {
	g := NewExpirationAlertGenerator().WithClock(expiryClock())

	v := &vehicle.Vehicle{
		ID:                   "veh-1",
		Plate:                "ABC-123",
		SOATExpiry:           "2026-03-05",
		RoadworthinessExpiry: "2026-03-20",
	}

	alerts := g.ForVehicle(v)
	if len(alerts) != 2 {
		t.Fatalf("ForVehicle() = %d alerts, want 2", len(alerts))
	}

	// Each document gets its own alert; no aggregation across types.
	if alerts[0].Type != alert.TypeExpiredDocument {
		t.Errorf("ForVehicle() first type = %v, want %v", alerts[0].Type, alert.TypeExpiredDocument)
	}
	if alerts[1].Type != alert.TypeExpiringDocument {
		t.Errorf("ForVehicle() second type = %v, want %v", alerts[1].Type, alert.TypeExpiringDocument)
	}
	if alerts[0].AffectedItems[0] != "SOAT" {
		t.Errorf("ForVehicle() first document = %v, want SOAT", alerts[0].AffectedItems)
	}
	if alerts[1].AffectedItems[0] != "Roadworthiness Certificate" {
		t.Errorf("ForVehicle() second document = %v, want Roadworthiness Certificate", alerts[1].AffectedItems)
	}
}

func TestExpirationAlertGenerator_ForDriver(t *testing.T) {
	g := NewExpirationAlertGenerator().WithClock(expiryClock())

	d := &driver.Driver{ID: "drv-1", Name: "Maria Lopez", LicenseExpiry: "2026-03-08"}

	a := g.ForDriver(d)
	if a == nil {
		t.Fatal("ForDriver() returned nil")
	}
	if a.Type != alert.TypeExpiredDocument {
		t.Errorf("ForDriver() type = %v, want %v", a.Type, alert.TypeExpiredDocument)
	}
	if a.DriverID != "drv-1" {
		t.Errorf("ForDriver() driver_id = %v, want drv-1", a.DriverID)
	}
	if a.VehicleID != "" {
		t.Errorf("ForDriver() vehicle_id = %v, want empty", a.VehicleID)
	}
	if !strings.Contains(a.Description, "2 day(s) ago") {
		t.Errorf("ForDriver() description = %q, want overdue day count", a.Description)
	}

	// Valid license well beyond the lookahead stays silent.
	d.LicenseExpiry = "2026-12-31"
	if a := g.ForDriver(d); a != nil {
		t.Errorf("ForDriver() = %+v, want nil for distant expiry", a)
	}
}
