package auth

import (
	"errors"
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// LoginCmd signs in and stores the session.
var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the estate API",
	Long: `Logs in with email and password and stores the returned token and role
in the local session file. Missing credentials are prompted for unless
--non-interactive is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathLogin, func() error {
			return LoginView(cmd)
		})
	},
}

func init() {
	LoginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	LoginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}

// LoginView is the landing view of the login route.
func LoginView(cmd *cobra.Command) error {
	cfg := config.MustFromContext(cmd.Context())

	email, password := loginEmail, loginPassword
	ok, err := fill(cfg,
		&field{label: "Email", value: &email},
		&field{label: "Password", value: &password, secret: true},
	)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("not logged in; run `estatectl login --email <email> --password <password>`")
	}

	client, err := view.SDKClient(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := view.Timeout(cmd)
	defer cancel()

	if _, err := client.LoginAndStore(ctx, cfg.Sessions, sdk.LoginRequest{Email: email, Password: password}); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	pterm.Success.Printf("Logged in as %s (%s)\n", email, cfg.Sessions.Session().Role)

	_, err = cfg.Navigator.Navigate(nav.PathProperties)
	return err
}
