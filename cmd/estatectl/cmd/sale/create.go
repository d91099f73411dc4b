package sale

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a sale",
	Long:  `Records the sale of a property to a buyer. The server stamps the date.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathSales, func() error {
			sale := sdk.Sale{PropertyID: saleProperty, BuyerID: saleBuyer, FinalPrice: salePrice}
			if err := validateSale(sale); err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			if err := client.CreateSale(ctx, sale); err != nil {
				return fmt.Errorf("failed to record sale: %w", err)
			}
			pterm.Success.Printf("Recorded sale of property %d\n", sale.PropertyID)
			return nil
		})
	},
}

func init() {
	addSaleFlags(createCmd)
}
