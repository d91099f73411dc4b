package property

import (
	"fmt"
	"strings"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a property",
	Long:  `Updates the given fields of a property; fields not passed keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathProperties, func() error {
			id, err := view.ParseID(args[0], "property")
			if err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			current, err := client.GetProperty(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get property %d: %w", id, err)
			}
			updated := mergeProperty(*current, cmd.Flags())
			if err := validateProperty(updated); err != nil {
				return err
			}

			if err := client.UpdateProperty(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update property %d: %w", id, err)
			}
			pterm.Success.Printf("Updated property %d\n", id)
			return nil
		})
	},
}

func init() {
	addPropertyFlags(updateCmd)
}

// mergeProperty overlays the flags that were set on current.
func mergeProperty(current sdk.Property, flags *pflag.FlagSet) sdk.Property {
	if flags.Changed("address") {
		current.Address = strings.TrimSpace(propAddress)
	}
	if flags.Changed("type") {
		current.Type = strings.TrimSpace(propType)
	}
	if flags.Changed("price") {
		current.Price = propPrice
	}
	if flags.Changed("status") {
		current.Status = propStatus
	}
	return current
}
