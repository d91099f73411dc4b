package purchase

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
	Short: "Record a purchase",
	Long:  `Records the purchase of a property from a seller. The server stamps the date.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathPurchases, func() error {
			purchase := sdk.Purchase{PropertyID: purchaseProperty, SellerID: purchaseSeller, InitialPrice: purchasePrice}
			if err := validatePurchase(purchase); err != nil {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			if err := client.CreatePurchase(ctx, purchase); err != nil {
				return fmt.Errorf("failed to record purchase: %w", err)
			}
			pterm.Success.Printf("Recorded purchase of property %d\n", purchase.PropertyID)
			return nil
		})
	},
}

func init() {
	addPurchaseFlags(createCmd)
}
