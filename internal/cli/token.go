package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetops/preflight/internal/auth"
)

// newTokenCmd mints an access token for API access. The service has no
// user store, so tokens are issued out of band by whoever holds the
// signing secret.
func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a JWT for API access",
		Long: `Mint a signed access token for the API. The signing secret is read
from the PREFLIGHT_JWT_SECRET environment variable and must match the
server's JWT_SECRET.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("PREFLIGHT_JWT_SECRET")
			if secret == "" {
				return fmt.Errorf("PREFLIGHT_JWT_SECRET is not set")
			}
			if role != auth.RoleAdmin && role != auth.RoleDriver {
				return fmt.Errorf("invalid role %q: must be %s or %s", role, auth.RoleAdmin, auth.RoleDriver)
			}

			pair, err := auth.MintTokens(userID, email, role, secret, ttl, 30*24*time.Hour)
			if err != nil {
				return fmt.Errorf("failed to mint token: %w", err)
			}

			fmt.Println(pair.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "subject user ID")
	cmd.Flags().StringVar(&email, "email", "", "subject email")
	cmd.Flags().StringVar(&role, "role", auth.RoleDriver, "role to grant (admin or driver)")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "access token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
