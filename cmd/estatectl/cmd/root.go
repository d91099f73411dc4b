package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/estatedesk/estate/cmd/estatectl/cmd/admin"
	"github.com/estatedesk/estate/cmd/estatectl/cmd/auth"
	"github.com/estatedesk/estate/cmd/estatectl/cmd/property"
	"github.com/estatedesk/estate/cmd/estatectl/cmd/purchase"
	"github.com/estatedesk/estate/cmd/estatectl/cmd/sale"
	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/logger"
	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "estatectl",
	Short: "estatectl - real estate management client",
	Long: `estatectl is the command-line client for the estate API. Log in, browse
properties, and (with the agent or admin role) record purchases and sales or
administer accounts.

Every command opens a route. Routes other than login and register need a
session; purchases and sales need the agent role and admin needs the admin
role. When a route is refused, estatectl says why and shows the property list
instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.NewViper()
		if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return fmt.Errorf("failed to bind flags: %w", err)
		}
		settings, err := config.Load(v, configFile)
		if err != nil {
			return err
		}

		log, err := logger.New(settings.LogLevel)
		if err != nil {
			return err
		}

		cfg := config.Assemble(*settings, log, view.Notifier())
		registerLandings(cfg)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(config.InjectConfig(ctx, cfg))
		return nil
	},
}

// registerLandings binds each route to the view shown when navigation ends there.
func registerLandings(cfg *config.GlobalConfig) {
	cfg.Landing[nav.PathLogin] = auth.LoginView
	cfg.Landing[nav.PathRegister] = auth.RegisterView
	cfg.Landing[nav.PathProperties] = property.ListView
	cfg.Landing[nav.PathPurchases] = purchase.ListView
	cfg.Landing[nav.PathSales] = sale.ListView
	cfg.Landing[nav.PathAdmin] = admin.UsersView
}

// Execute runs the root command
func Execute() {
	executed, err := rootCmd.ExecuteContextC(context.Background())
	syncLogger(executed)
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// syncLogger flushes the diagnostic logger of the command that ran, whether or
// not it failed.
func syncLogger(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	cfg, ok := config.FromContext(cmd.Context())
	if !ok {
		return false
	}
	_ = cfg.Logger.Sync()
	return true
}

func reportError(err error) {
	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized && apiErr.Path != "/login" {
		pterm.Warning.Println("Session rejected by the server; log in again with 'estatectl login'.")
	}
	fmt.Fprintln(os.Stderr, err)
}

func init() {
	rootCmd.PersistentFlags().String(config.KeyServer, config.DefaultServerURL, "estate API server URL (also ESTATE_SERVER)")
	rootCmd.PersistentFlags().Bool(config.KeyNonInteractive, false, "Disable interactive prompts (also set via ESTATE_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().String(config.KeySessionFile, "", "Session file (default ~/.estate/session.json)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel, "Diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.estate/config.yaml)")

	rootCmd.AddCommand(auth.LoginCmd)
	rootCmd.AddCommand(auth.RegisterCmd)
	rootCmd.AddCommand(auth.LogoutCmd)
	rootCmd.AddCommand(auth.StatusCmd)
	rootCmd.AddCommand(property.PropertiesCmd)
	rootCmd.AddCommand(purchase.PurchasesCmd)
	rootCmd.AddCommand(sale.SalesCmd)
	rootCmd.AddCommand(admin.AdminCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(openCmd)
}
