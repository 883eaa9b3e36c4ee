package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetops/preflight/pkg/client"
)

func newInspectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspection",
		Short: "Manage pre-operational inspections",
	}

	cmd.AddCommand(newInspectionListCmd())
	cmd.AddCommand(newInspectionGetCmd())
	cmd.AddCommand(newInspectionSubmitCmd())

	return cmd
}

func newInspectionListCmd() *cobra.Command {
	var vehicleID, driverID, verdict string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inspections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			page, err := apiClient.Inspections().List(ctx, &client.InspectionListOptions{
				VehicleID: vehicleID,
				DriverID:  driverID,
				Verdict:   verdict,
			})
			if err != nil {
				return fmt.Errorf("failed to list inspections: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "VEHICLE", "DRIVER", "DATE", "VERDICT")
			for _, insp := range page.Data {
				t.AddRow(
					truncate(insp.ID, 8),
					truncate(insp.VehicleID, 8),
					truncate(insp.DriverID, 8),
					insp.Date,
					formatStatus(insp.Verdict),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "filter by vehicle ID")
	cmd.Flags().StringVar(&driverID, "driver", "", "filter by driver ID")
	cmd.Flags().StringVar(&verdict, "verdict", "", "filter by verdict (approved, rejected)")

	return cmd
}

func newInspectionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get inspection details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			insp, err := apiClient.Inspections().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get inspection: %w", err)
			}

			return printOutput(insp)
		},
	}
}

func newInspectionSubmitCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "submit -f <file>",
		Short: "Submit an inspection from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read inspection file: %w", err)
			}

			var req client.SubmitInspectionRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("invalid inspection file: %w", err)
			}

			ctx := context.Background()
			result, err := apiClient.Inspections().Submit(ctx, &req)
			if err != nil {
				return fmt.Errorf("failed to submit inspection: %w", err)
			}

			fmt.Printf("Inspection %s recorded: %s\n", result.ID, result.Verdict)
			if result.AlertGenerated {
				fmt.Printf("Maintenance alert raised: %s\n", result.AlertID)
			}
			if result.AlertError != "" {
				fmt.Printf("Warning: alert generation failed: %s\n", result.AlertError)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the inspection payload")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
