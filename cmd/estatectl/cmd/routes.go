package cmd

import (
	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Show the route table and what the current session may open",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session := cfg.Sessions.Session()
		guard := cfg.Navigator.Guard()

		pterm.DefaultSection.Println("Routes")
		rows := [][]string{}
		for _, r := range cfg.Navigator.Routes().Routes() {
			requires := "-"
			if r.MinRole != sdk.RoleNone {
				requires = r.MinRole.String()
			}
			rows = append(rows, []string{r.Path, r.Name, requires, access(guard, r, session)})
		}
		return view.Table([]string{"PATH", "NAME", "REQUIRES", "ACCESS"}, rows)
	},
}

func access(guard nav.Guard, r nav.Route, s sdk.Session) string {
	if r.Redirect != "" {
		return "redirects to " + r.Redirect
	}
	outcome := guard.Evaluate(r, nav.Route{}, s)
	switch outcome.Kind {
	case nav.Allowed:
		return "allowed"
	case nav.Redirected:
		return "login required"
	default:
		return "insufficient role"
	}
}
