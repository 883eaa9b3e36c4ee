package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage fleet vehicles",
	}

	cmd.AddCommand(newVehicleListCmd())
	cmd.AddCommand(newVehicleGetCmd())
	cmd.AddCommand(newVehicleCheckExpiryCmd())

	return cmd
}

func newVehicleListCmd() *cobra.Command {
	var state, kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			vehicles, err := apiClient.Vehicles().List(ctx, state, kind)
			if err != nil {
				return fmt.Errorf("failed to list vehicles: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(vehicles)
			}

			t := NewTable("ID", "PLATE", "MAKE", "MODEL", "YEAR", "STATE", "SOAT EXPIRY")
			for _, v := range vehicles {
				t.AddRow(
					truncate(v.ID, 8),
					v.Plate,
					v.Make,
					v.Model,
					strconv.Itoa(v.Year),
					formatStatus(v.State),
					v.SOATExpiry,
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (active, inactive, maintenance)")
	cmd.Flags().StringVar(&kind, "kind", "", "filter by vehicle kind")

	return cmd
}

func newVehicleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get vehicle details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			v, err := apiClient.Vehicles().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get vehicle: %w", err)
			}

			return printOutput(v)
		},
	}
}

func newVehicleCheckExpiryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-expiry <id>",
		Short: "Check vehicle document expirations and raise alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alerts, err := apiClient.Vehicles().CheckExpiry(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to check expiry: %w", err)
			}

			if len(alerts) == 0 {
				fmt.Println("No new expiry alerts")
				return nil
			}

			for _, a := range alerts {
				fmt.Printf("%s %s: %s\n", formatPriority(a.Priority), a.Type, a.Title)
			}
			return nil
		},
	}
}
