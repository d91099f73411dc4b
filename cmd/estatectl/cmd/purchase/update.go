package purchase

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Correct a purchase record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathPurchases, func() error {
			id, err := view.ParseID(args[0], "purchase")
			if err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			current, err := client.GetPurchase(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get purchase %d: %w", id, err)
			}
			updated := mergePurchase(*current, cmd.Flags())
			if err := validatePurchase(updated); err != nil {
				return err
			}

			if err := client.UpdatePurchase(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update purchase %d: %w", id, err)
			}
			pterm.Success.Printf("Updated purchase %d\n", id)
			return nil
		})
	},
}

func init() {
	addPurchaseFlags(updateCmd)
}
