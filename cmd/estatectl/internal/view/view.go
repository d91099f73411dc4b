// Package view holds the pieces shared by estatectl's routed commands: entering
// a route through the navigator and rendering wherever navigation ends up.
package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/estatedesk/estate/cmd/estatectl/internal/client"
	"github.com/estatedesk/estate/cmd/estatectl/internal/config"
	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// RequestTimeout bounds each command's API calls.
const RequestTimeout = 10 * time.Second

// Routed navigates to path and calls run if the navigation reaches it.
// When the guard sends the user elsewhere, the landing view of the final route
// runs instead.
func Routed(cmd *cobra.Command, path string, run func() error) error {
	cfg := config.MustFromContext(cmd.Context())

	route, err := cfg.Navigator.Navigate(path)
	if err != nil {
		return err
	}
	if route.Path != path {
		return Land(cmd, route)
	}
	return run()
}

// Land renders the view registered for route.
func Land(cmd *cobra.Command, route nav.Route) error {
	cfg := config.MustFromContext(cmd.Context())
	if landing, ok := cfg.Landing[route.Path]; ok {
		return landing(cmd)
	}
	pterm.Info.Printf("Now at %s.\n", route.Path)
	return nil
}

// Notifier prints navigation notices as warnings.
func Notifier() nav.Notifier {
	return nav.NotifierFunc(func(message string) {
		pterm.Warning.Println(message)
	})
}

// SDKClient returns the shared API client.
func SDKClient(cmd *cobra.Command) (*sdk.Client, error) {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.ClientProvider.SDKClient()
}

// Timeout derives the per-command request context.
func Timeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return client.EnsureTimeout(cmd.Context(), RequestTimeout)
}

// ParseID parses a positive record id argument.
func ParseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", what, raw)
	}
	return id, nil
}

// Table renders rows under header.
func Table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Empty prints a notice for an empty listing.
func Empty(what string) {
	pterm.Info.Printf("No %s found.\n", what)
}

// Money formats an amount with two decimals.
func Money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Date formats a record date, or "-" when unset.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// Itoa renders an id column.
func Itoa(id int) string {
	return strconv.Itoa(id)
}

// ListFilter combines a raw bexpr expression with key=value conditions,
// printing a warning for each repeated key.
func ListFilter(expr string, where []string) (string, error) {
	conditions, warnings, err := sdk.ParseConditions(where)
	if err != nil {
		return "", err
	}
	for _, warning := range warnings {
		pterm.Warning.Println(warning)
	}
	return sdk.CombineFilters(expr, sdk.BuildBexprFilter(conditions)), nil
}

// Confirm asks before a destructive action. Non-interactive runs must pass
// assumeYes.
func Confirm(cmd *cobra.Command, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	cfg := config.MustFromContext(cmd.Context())
	if cfg.NonInteractive {
		return false, fmt.Errorf("%s: pass --yes to confirm in non-interactive mode", question)
	}
	return pterm.DefaultInteractiveConfirm.Show(question)
}
