package purchase

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a purchase",
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

			p, err := client.GetPurchase(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get purchase %d: %w", id, err)
			}

			return view.Table([]string{"FIELD", "VALUE"}, [][]string{
				{"ID", view.Itoa(p.ID)},
				{"Property", view.Itoa(p.PropertyID)},
				{"Seller", view.Itoa(p.SellerID)},
				{"Date", view.Date(p.PurchaseDate)},
				{"Initial price", view.Money(p.InitialPrice)},
				{"Owner", view.Itoa(p.OwnerID)},
			})
		})
	},
}
