package engine

import (
	"fmt"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/domain/vehicle"
)

// Expiry lookahead thresholds, in calendar days. Within lookaheadDays
// of expiry an alert is raised; within urgentDays it is high priority.
const (
	lookaheadDays = 15
	urgentDays    = 7
)

// dateLayout is the storage format of document expiration dates.
const dateLayout = "2006-01-02"

// ExpirationAlertGenerator derives alerts from document expiration
// dates. Each qualifying document yields its own alert: every document
// has a distinct renewal action and deadline, so there is no
// aggregation across document types.
type ExpirationAlertGenerator struct {
	now func() time.Time
}

// NewExpirationAlertGenerator creates a generator using the wall clock.
func NewExpirationAlertGenerator() *ExpirationAlertGenerator {
	return &ExpirationAlertGenerator{now: time.Now}
}

// WithClock overrides the generator's clock. Intended for tests.
func (g *ExpirationAlertGenerator) WithClock(now func() time.Time) *ExpirationAlertGenerator {
	g.now = now
	return g
}

// ForVehicle checks the vehicle's SOAT and roadworthiness certificate
// and returns zero, one, or two alerts. Documents without a recorded
// expiry date are skipped: absence is not failure.
func (g *ExpirationAlertGenerator) ForVehicle(v *vehicle.Vehicle) []*alert.Alert {
	var alerts []*alert.Alert

	if a := g.check("SOAT", v.SOATExpiry, target{vehicleID: v.ID, label: v.Plate}); a != nil {
		alerts = append(alerts, a)
	}
	if a := g.check("Roadworthiness Certificate", v.RoadworthinessExpiry, target{vehicleID: v.ID, label: v.Plate}); a != nil {
		alerts = append(alerts, a)
	}

	return alerts
}

// ForDriver checks the driver's license expiry. Returns nil when no
// date is recorded or the license is valid beyond the lookahead window.
func (g *ExpirationAlertGenerator) ForDriver(d *driver.Driver) *alert.Alert {
	return g.check("Driver License", d.LicenseExpiry, target{driverID: d.ID, label: d.Name})
}

type target struct {
	vehicleID string
	driverID  string
	label     string
}

// check applies the urgency curve to one document: overdue is always
// critical; 1-7 days is high; 8-15 days is medium; 16+ days is silent.
func (g *ExpirationAlertGenerator) check(document, expiry string, t target) *alert.Alert {
	if expiry == "" {
		return nil
	}

	expiryDate, err := time.ParseInLocation(dateLayout, expiry, time.UTC)
	if err != nil {
		// An unparseable date is treated like an unknown one.
		return nil
	}

	days := daysUntil(g.now(), expiryDate)
	if days > lookaheadDays {
		return nil
	}

	a := &alert.Alert{
		VehicleID:     t.vehicleID,
		DriverID:      t.driverID,
		AffectedItems: []string{document},
		Status:        alert.StatusPending,
		DetectedAt:    g.now(),
		CreatedBy:     alert.SystemActor,
	}

	if days <= 0 {
		a.Type = alert.TypeExpiredDocument
		a.Priority = alert.PriorityCritical
		a.Title = fmt.Sprintf("%s EXPIRED - %s", document, t.label)
		a.Description = fmt.Sprintf(
			"The %s for %s expired %d day(s) ago. Renew it immediately to stay compliant.",
			document, t.label, -days,
		)
		return a
	}

	a.Type = alert.TypeExpiringDocument
	if days <= urgentDays {
		a.Priority = alert.PriorityHigh
	} else {
		a.Priority = alert.PriorityMedium
	}
	a.Title = fmt.Sprintf("%s expiring soon - %s", document, t.label)
	a.Description = fmt.Sprintf(
		"The %s for %s expires in %d day(s). Schedule its renewal.",
		document, t.label, days,
	)
	return a
}

// daysUntil computes whole calendar days between now and the expiry
// date. Both sides are normalized to midnight so time of day never
// shifts the urgency bucket.
func daysUntil(now, expiry time.Time) int {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today) / (24 * time.Hour))
}
