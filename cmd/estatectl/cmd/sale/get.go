package sale

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a sale",
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

			s, err := client.GetSale(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sale %d: %w", id, err)
			}

			return view.Table([]string{"FIELD", "VALUE"}, [][]string{
				{"ID", view.Itoa(s.ID)},
				{"Property", view.Itoa(s.PropertyID)},
				{"Buyer", view.Itoa(s.BuyerID)},
				{"Date", view.Date(s.SaleDate)},
				{"Final price", view.Money(s.FinalPrice)},
				{"Owner", view.Itoa(s.OwnerID)},
			})
		})
	},
}
