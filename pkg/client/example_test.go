package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/fleetops/preflight/pkg/client"
)

// Example demonstrates basic usage of the Preflight client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})
	c.SetToken("your-jwt-token")

	ctx := context.Background()

	// List pending critical alerts
	page, err := c.Alerts().List(ctx, &client.AlertListOptions{
		Priority: "critical",
		Status:   "pending",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d critical alerts\n", len(page.Data))
}

// ExampleInspectionService_Submit demonstrates submitting a completed
// pre-operational checklist
func ExampleInspectionService_Submit() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})
	c.SetToken("your-jwt-token")

	result, err := c.Inspections().Submit(context.Background(), &client.SubmitInspectionRequest{
		VehicleID: "0b2a6e7e-5f55-4f3a-9f1a-3a2d4a6a8c10",
		DriverID:  "7cfa1d3e-92b4-4f07-8e32-6f1b2c9d5e44",
		Mileage:   84200,
		Health:    client.Health{SleepHours: 8, Condition: "good"},
		Sections: map[string]map[string]string{
			"documentation": {"soat": "good", "roadworthiness": "good", "registrationCard": "good", "insurancePolicy": "good", "driverLicense": "good"},
			"exterior":      {"bodywork": "good", "mirrors": "good", "headlights": "good", "taillights": "good", "turnSignals": "good", "brakeLights": "bad", "tireCondition": "good", "tirePressure": "good", "wipers": "good", "windows": "good"},
			"interior":      {"seatbelts": "good", "seats": "good", "dashboard": "good", "brakes": "good", "steering": "good", "horn": "good", "reverseAlarm": "good"},
			"safety":        {"firstAidKit": "good", "fireExtinguisher": "good", "roadsideKit": "good", "reflectiveVest": "good", "wheelChocks": "good"},
			"fluids":        {"engineOil": "good", "brakeFluid": "good", "coolant": "good", "wiperFluid": "good"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Verdict: %s\n", result.Verdict)
	if result.AlertGenerated {
		fmt.Printf("Alert raised: %s\n", result.AlertID)
	}
}

// ExampleAlertService_UpdateStatus demonstrates resolving an alert
func ExampleAlertService_UpdateStatus() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})
	c.SetToken("your-jwt-token")

	err := c.Alerts().UpdateStatus(context.Background(),
		"alert-id", "resolved", "Brake lights replaced")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Alert resolved")
}

// ExampleVehicleService_CheckExpiry demonstrates an on-demand document
// expiry check
func ExampleVehicleService_CheckExpiry() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})
	c.SetToken("your-jwt-token")

	alerts, err := c.Vehicles().CheckExpiry(context.Background(), "vehicle-id")
	if err != nil {
		log.Fatal(err)
	}

	for _, a := range alerts {
		fmt.Printf("%s: %s\n", a.Priority, a.Title)
	}
}

// ExampleClient_Health demonstrates checking API health
func ExampleClient_Health() {
	c := client.NewClient(client.Config{
		BaseURL: "http://localhost:8080",
	})

	if err := c.Health(context.Background()); err != nil {
		log.Fatal(err)
	}

	fmt.Println("API is up")
}
