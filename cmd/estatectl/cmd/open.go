package cmd

import (
	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a route and show its view",
	Long: `Navigates to a route path such as /properties or /admin, applying the
same checks as every other command, and renders the view where navigation ends.`,
	Example: "  estatectl open /\n  estatectl open /sales",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		route, err := cfg.Navigator.Navigate(args[0])
		if err != nil {
			return err
		}
		return view.Land(cmd, route)
	},
}
