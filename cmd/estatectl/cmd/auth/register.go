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
	registerUsername string
	registerEmail    string
	registerPassword string
)

// RegisterCmd creates a new account.
var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Registers a new account. New accounts get the user role; an admin can
promote them with 'estatectl admin set-role'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathRegister, func() error {
			return RegisterView(cmd)
		})
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerUsername, "username", "", "Display name")
	RegisterCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	RegisterCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
}

// RegisterView is the landing view of the register route.
func RegisterView(cmd *cobra.Command) error {
	cfg := config.MustFromContext(cmd.Context())

	input := sdk.RegisterRequest{
		Username: registerUsername,
		Email:    registerEmail,
		Password: registerPassword,
	}
	ok, err := fill(cfg,
		&field{label: "Username", value: &input.Username},
		&field{label: "Email", value: &input.Email},
		&field{label: "Password", value: &input.Password, secret: true},
	)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("--username, --email and --password are required in non-interactive mode")
	}

	client, err := view.SDKClient(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := view.Timeout(cmd)
	defer cancel()

	resp, err := client.Register(ctx, input)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	message := "Account created"
	if resp != nil && resp.Message != "" {
		message = resp.Message
	}
	pterm.Success.Println(message)
	pterm.Info.Println("Log in with 'estatectl login'.")

	_, err = cfg.Navigator.Navigate(nav.PathLogin)
	return err
}
