package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newDriverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Manage drivers",
	}

	cmd.AddCommand(newDriverListCmd())
	cmd.AddCommand(newDriverGetCmd())
	cmd.AddCommand(newDriverCheckExpiryCmd())

	return cmd
}

func newDriverListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			drivers, err := apiClient.Drivers().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list drivers: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(drivers)
			}

			t := NewTable("ID", "NAME", "LICENSE", "CATEGORY", "LICENSE EXPIRY")
			for _, d := range drivers {
				t.AddRow(
					truncate(d.ID, 8),
					d.Name,
					d.LicenseNumber,
					d.LicenseCategory,
					d.LicenseExpiry,
				)
			}
			t.Render()
			return nil
		},
	}
}

func newDriverGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get driver details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			d, err := apiClient.Drivers().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get driver: %w", err)
			}

			return printOutput(d)
		},
	}
}

func newDriverCheckExpiryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-expiry <id>",
		Short: "Check driver license expiration and raise alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			alerts, err := apiClient.Drivers().CheckExpiry(ctx, args[0])
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
