package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetops/preflight/pkg/client"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Manage maintenance alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())
	cmd.AddCommand(newAlertSummaryCmd())
	cmd.AddCommand(newAlertStatusCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var priority, status, alertType, vehicleID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts := &client.AlertListOptions{
				Type:      alertType,
				Priority:  priority,
				Status:    status,
				VehicleID: vehicleID,
			}

			page, err := apiClient.Alerts().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "TYPE", "PRIORITY", "STATUS", "TITLE")
			for _, a := range page.Data {
				t.AddRow(
					truncate(a.ID, 8),
					a.Type,
					formatPriority(a.Priority),
					formatStatus(a.Status),
					truncate(a.Title, 50),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&alertType, "type", "", "filter by type")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "filter by vehicle ID")

	return cmd
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := apiClient.Alerts().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(a)
			}

			fmt.Printf("ID:          %s\n", a.ID)
			fmt.Printf("Type:        %s\n", a.Type)
			fmt.Printf("Priority:    %s\n", formatPriority(a.Priority))
			fmt.Printf("Status:      %s\n", a.Status)
			fmt.Printf("Title:       %s\n", a.Title)
			fmt.Printf("Description: %s\n", a.Description)
			fmt.Printf("Detected:    %s\n", a.DetectedAt.Format("2006-01-02 15:04:05"))
			if a.ResolvedAt != nil {
				fmt.Printf("Resolved:    %s\n", a.ResolvedAt.Format("2006-01-02 15:04:05"))
			}
			if a.Notes != "" {
				fmt.Printf("Notes:       %s\n", a.Notes)
			}
			return nil
		},
	}
}

func newAlertSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show alert counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := apiClient.Alerts().Summary(ctx)
			if err != nil {
				return fmt.Errorf("failed to get alert summary: %w", err)
			}

			return printOutput(summary)
		},
	}
}

func newAlertStatusCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move an alert to a new lifecycle status",
		Long:  "Valid statuses: pending, in_progress, resolved, postponed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := apiClient.Alerts().UpdateStatus(ctx, args[0], args[1], note); err != nil {
				return fmt.Errorf("failed to update alert status: %w", err)
			}

			fmt.Printf("Alert %s moved to %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "note to append to the alert")

	return cmd
}
