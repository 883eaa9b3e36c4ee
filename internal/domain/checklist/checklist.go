package checklist

import "strings"

// Response is the answer recorded for a single checklist item.
type Response string

// Checklist responses
const (
	ResponseGood          Response = "good"
	ResponseBad           Response = "bad"
	ResponseNotApplicable Response = "not-applicable"
)

// Valid reports whether r is one of the three known responses.
func (r Response) Valid() bool {
	switch r {
	case ResponseGood, ResponseBad, ResponseNotApplicable:
		return true
	}
	return false
}

// Verdict is the binary outcome of a checklist evaluation.
type Verdict string

// Evaluation verdicts
const (
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
)

// Section holds the answers for one named group of checklist items,
// keyed by short item name (e.g. "brakeLights").
type Section map[string]Response

// Sections holds a full checklist, keyed by section name
// (e.g. "exterior").
type Sections map[string]Section

// Response returns the answer for a dotted item key
// (e.g. "exterior.brakeLights"). The second return value is false when
// the section or item is absent from the checklist.
func (s Sections) Response(itemKey string) (Response, bool) {
	section, item, ok := strings.Cut(itemKey, ".")
	if !ok {
		return "", false
	}
	answers, ok := s[section]
	if !ok {
		return "", false
	}
	r, ok := answers[item]
	return r, ok
}

// SectionSpec names a checklist section and its items in display order.
type SectionSpec struct {
	Key   string
	Items []string
}

// Catalog is the fixed pre-operational checklist: five sections in the
// order they appear on the form. Generators iterate it so output
// ordering is deterministic.
var Catalog = []SectionSpec{
	{
		Key: SectionDocumentation,
		Items: []string{
			"soat",
			"roadworthiness",
			"registrationCard",
			"insurancePolicy",
			"driverLicense",
		},
	},
	{
		Key: SectionExterior,
		Items: []string{
			"bodywork",
			"mirrors",
			"headlights",
			"taillights",
			"turnSignals",
			"brakeLights",
			"tireCondition",
			"tirePressure",
			"wipers",
			"windows",
		},
	},
	{
		Key: SectionInterior,
		Items: []string{
			"seatbelts",
			"seats",
			"dashboard",
			"brakes",
			"steering",
			"horn",
			"reverseAlarm",
		},
	},
	{
		Key: SectionSafety,
		Items: []string{
			"firstAidKit",
			"fireExtinguisher",
			"roadsideKit",
			"reflectiveVest",
			"wheelChocks",
		},
	},
	{
		Key: SectionFluids,
		Items: []string{
			"engineOil",
			"brakeFluid",
			"coolant",
			"wiperFluid",
		},
	},
}

// Section keys
const (
	SectionDocumentation = "documentation"
	SectionExterior      = "exterior"
	SectionInterior      = "interior"
	SectionSafety        = "safety"
	SectionFluids        = "fluids"
)

// ItemKey builds a dotted item key from section and item names.
func ItemKey(section, item string) string {
	return section + "." + item
}
