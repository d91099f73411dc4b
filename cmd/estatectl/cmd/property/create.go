package property

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	propAddress string
	propType    string
	propPrice   float64
	propStatus  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "List a new property",
	Long:  `Creates a property owned by the logged-in account.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathProperties, func() error {
			property := sdk.Property{
				Address: strings.TrimSpace(propAddress),
				Type:    strings.TrimSpace(propType),
				Price:   propPrice,
				Status:  propStatus,
			}
			if err := validateProperty(property); err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			if err := client.CreateProperty(ctx, property); err != nil {
				return fmt.Errorf("failed to create property: %w", err)
			}
			pterm.Success.Printf("Created property at %s\n", property.Address)
			return nil
		})
	},
}

func init() {
	addPropertyFlags(createCmd)
}

func addPropertyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&propAddress, "address", "", "Street address")
	cmd.Flags().StringVar(&propType, "type", "", "Property type (e.g. house, flat)")
	cmd.Flags().Float64Var(&propPrice, "price", 0, "Asking price")
	cmd.Flags().StringVar(&propStatus, "status", sdk.StatusAvailable, "Status: "+strings.Join(statuses, ", "))
}

func validateProperty(p sdk.Property) error {
	var errs []error
	if p.Address == "" {
		errs = append(errs, errors.New("--address is required"))
	}
	if p.Type == "" {
		errs = append(errs, errors.New("--type is required"))
	}
	if p.Price < 0 {
		errs = append(errs, errors.New("--price cannot be negative"))
	}
	if !slices.Contains(statuses, p.Status) {
		errs = append(errs, fmt.Errorf("--status must be one of %s", strings.Join(statuses, ", ")))
	}
	return errors.Join(errs...)
}
