package sale

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Correct a sale record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathSales, func() error {
			id, err := view.ParseID(args[0], "sale")
			if err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			current, err := client.GetSale(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sale %d: %w", id, err)
			}
			updated := mergeSale(*current, cmd.Flags())
			if err := validateSale(updated); err != nil {
				return err
			}

			if err := client.UpdateSale(ctx, id, updated); err != nil {
				return fmt.Errorf("failed to update sale %d: %w", id, err)
			}
			pterm.Success.Printf("Updated sale %d\n", id)
			return nil
		})
	},
}

func init() {
	addSaleFlags(updateCmd)
}
