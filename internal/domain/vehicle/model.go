package vehicle

import "time"

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID      string `json:"id"`
	Plate   string `json:"plate"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Kind    string `json:"kind"` // truck, van, pickup, ...
	Color   string `json:"color,omitempty"`
	Mileage int    `json:"mileage"`
	State   State  `json:"state"`
	// Document expiration dates, YYYY-MM-DD; empty when unknown
	SOATExpiry           string    `json:"soat_expiry,omitempty"`
	RoadworthinessExpiry string    `json:"roadworthiness_expiry,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// State is the operational state of a vehicle.
type State string

// Vehicle states
const (
	StateActive      State = "active"
	StateInactive    State = "inactive"
	StateMaintenance State = "maintenance"
)

// Filter contains vehicle filtering options
type Filter struct {
	State string
	Kind  string
}
