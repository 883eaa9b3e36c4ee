package checklist

// Tier is the static severity classification of a checklist item,
// independent of whether the item gates approval.
type Tier string

// Criticality tiers, most severe first
const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
)

// criticalItems are the items whose failure endangers safe operation
// or legal compliance outright.
var criticalItems = []string{
	"documentation.soat",
	"documentation.roadworthiness",
	"documentation.driverLicense",
	"exterior.brakeLights",
	"interior.brakes",
	"interior.steering",
	"safety.firstAidKit",
	"safety.fireExtinguisher",
	"fluids.brakeFluid",
}

// highItems degrade safety but do not ground the vehicle on their own.
var highItems = []string{
	"documentation.insurancePolicy",
	"documentation.registrationCard",
	"exterior.headlights",
	"exterior.taillights",
	"exterior.turnSignals",
	"exterior.tireCondition",
	"exterior.tirePressure",
	"interior.seatbelts",
	"safety.roadsideKit",
	"safety.reflectiveVest",
	"fluids.engineOil",
}

// Classifier maps checklist item keys to criticality tiers. Items not
// listed in either table classify as medium, so new checklist items are
// accepted without code changes.
type Classifier struct {
	critical map[string]struct{}
	high     map[string]struct{}
}

// NewClassifier creates a classifier with the standard tier tables.
func NewClassifier() *Classifier {
	return NewClassifierWithTables(criticalItems, highItems)
}

// NewClassifierWithTables creates a classifier with explicit tier
// tables. Intended for tests that need alternate classifications.
func NewClassifierWithTables(critical, high []string) *Classifier {
	c := &Classifier{
		critical: make(map[string]struct{}, len(critical)),
		high:     make(map[string]struct{}, len(high)),
	}
	for _, k := range critical {
		c.critical[k] = struct{}{}
	}
	for _, k := range high {
		c.high[k] = struct{}{}
	}
	return c
}

// Classify returns the tier for a dotted item key. Unknown keys are
// never an error; they default to medium.
func (c *Classifier) Classify(itemKey string) Tier {
	if _, ok := c.critical[itemKey]; ok {
		return TierCritical
	}
	if _, ok := c.high[itemKey]; ok {
		return TierHigh
	}
	return TierMedium
}

// displayNames maps item keys to the labels shown to administrators.
var displayNames = map[string]string{
	// Documentation
	"documentation.soat":             "SOAT",
	"documentation.roadworthiness":   "Roadworthiness Certificate",
	"documentation.registrationCard": "Registration Card",
	"documentation.insurancePolicy":  "Insurance Policy",
	"documentation.driverLicense":    "Driver License",

	// Exterior
	"exterior.bodywork":      "Bodywork",
	"exterior.mirrors":       "Mirrors",
	"exterior.headlights":    "Headlights",
	"exterior.taillights":    "Taillights",
	"exterior.turnSignals":   "Turn Signals",
	"exterior.brakeLights":   "Brake Lights",
	"exterior.tireCondition": "Tire Condition",
	"exterior.tirePressure":  "Tire Pressure",
	"exterior.wipers":        "Windshield Wipers",
	"exterior.windows":       "Windows",

	// Interior
	"interior.seatbelts":    "Seatbelts",
	"interior.seats":        "Seats",
	"interior.dashboard":    "Dashboard Instruments",
	"interior.brakes":       "Brake System",
	"interior.steering":     "Steering System",
	"interior.horn":         "Horn",
	"interior.reverseAlarm": "Reverse Alarm",

	// Safety equipment
	"safety.firstAidKit":      "First Aid Kit",
	"safety.fireExtinguisher": "Fire Extinguisher",
	"safety.roadsideKit":      "Roadside Kit",
	"safety.reflectiveVest":   "Reflective Vest",
	"safety.wheelChocks":      "Wheel Chocks",

	// Fluid levels
	"fluids.engineOil":  "Engine Oil",
	"fluids.brakeFluid": "Brake Fluid",
	"fluids.coolant":    "Coolant",
	"fluids.wiperFluid": "Wiper Fluid",
}

// DisplayName returns the human-readable label for an item key. Keys
// without a label fall back to the raw key so one unmapped item never
// suppresses an alert.
func DisplayName(itemKey string) string {
	if name, ok := displayNames[itemKey]; ok {
		return name
	}
	return itemKey
}
