package auth

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// LogoutCmd clears the stored session.
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if err := cfg.Sessions.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		cfg.Navigator.ForceLogin()

		pterm.Success.Println("Logged out successfully")
		return nil
	},
}
