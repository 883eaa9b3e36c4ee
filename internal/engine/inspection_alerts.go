package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/domain/inspection"
)

// failedItem is a checklist item that was answered bad, carrying its
// display name and classified tier.
type failedItem struct {
	key  string
	name string
	tier checklist.Tier
}

// InspectionAlertGenerator derives a single aggregated maintenance
// alert from the failed items of an evaluated inspection.
type InspectionAlertGenerator struct {
	classifier *checklist.Classifier
	now        func() time.Time
}

// NewInspectionAlertGenerator creates a generator backed by the given
// classifier.
func NewInspectionAlertGenerator(classifier *checklist.Classifier) *InspectionAlertGenerator {
	return &InspectionAlertGenerator{
		classifier: classifier,
		now:        time.Now,
	}
}

// WithClock overrides the generator's clock. Intended for tests.
func (g *InspectionAlertGenerator) WithClock(now func() time.Time) *InspectionAlertGenerator {
	g.now = now
	return g
}

// Generate scans every checklist item of the inspection and returns one
// aggregated alert covering all failed items, or nil when the checklist
// is clean. The alert's priority is the highest tier among the
// failures; items are reported in tier order, critical first.
func (g *InspectionAlertGenerator) Generate(insp *inspection.Inspection, plate string) *alert.Alert {
	failed := g.collectFailed(insp.Sections)
	if len(failed) == 0 {
		return nil
	}

	var critical, high, medium []failedItem
	for _, f := range failed {
		switch f.tier {
		case checklist.TierCritical:
			critical = append(critical, f)
		case checklist.TierHigh:
			high = append(high, f)
		case checklist.TierMedium:
			medium = append(medium, f)
		}
	}

	priority := alert.PriorityMedium
	if len(high) > 0 {
		priority = alert.PriorityHigh
	}
	if len(critical) > 0 {
		priority = alert.PriorityCritical
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Detected %d issue(s) during the pre-operational inspection of vehicle %s:\n", len(failed), plate)
	writeTierBlock(&b, "CRITICAL", critical)
	writeTierBlock(&b, "HIGH PRIORITY", high)
	writeTierBlock(&b, "MEDIUM PRIORITY", medium)

	affected := make([]string, 0, len(failed))
	for _, group := range [][]failedItem{critical, high, medium} {
		for _, f := range group {
			affected = append(affected, f.name)
		}
	}

	return &alert.Alert{
		VehicleID:     insp.VehicleID,
		InspectionID:  insp.ID,
		Type:          alert.TypeFailedInspection,
		Priority:      priority,
		Title:         fmt.Sprintf("%d issue(s) detected on %s", len(failed), plate),
		Description:   strings.TrimSpace(b.String()),
		AffectedItems: affected,
		Status:        alert.StatusPending,
		DetectedAt:    g.now(),
		CreatedBy:     alert.SystemActor,
	}
}

// collectFailed walks the checklist in catalog order and returns every
// item answered bad. Items present in the submission but absent from
// the catalog are still collected (classified medium, raw key as name)
// so new checklist items never go unreported.
func (g *InspectionAlertGenerator) collectFailed(sections checklist.Sections) []failedItem {
	var failed []failedItem
	seen := make(map[string]struct{})

	for _, spec := range checklist.Catalog {
		answers, ok := sections[spec.Key]
		if !ok {
			continue
		}
		for _, item := range spec.Items {
			key := checklist.ItemKey(spec.Key, item)
			seen[key] = struct{}{}
			if answers[item] == checklist.ResponseBad {
				failed = append(failed, failedItem{
					key:  key,
					name: checklist.DisplayName(key),
					tier: g.classifier.Classify(key),
				})
			}
		}
	}

	// Off-catalog items, in deterministic order
	var extra []string
	for sectionKey, answers := range sections {
		for item, r := range answers {
			key := checklist.ItemKey(sectionKey, item)
			if _, ok := seen[key]; ok {
				continue
			}
			if r == checklist.ResponseBad {
				extra = append(extra, key)
			}
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		failed = append(failed, failedItem{
			key:  key,
			name: checklist.DisplayName(key),
			tier: g.classifier.Classify(key),
		})
	}

	return failed
}

func writeTierBlock(b *strings.Builder, header string, items []failedItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d):\n", header, len(items))
	for _, f := range items {
		fmt.Fprintf(b, "  - %s\n", f.name)
	}
}
