package purchase

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	listMine   bool
	listFilter string
	listWhere  []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List purchases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathPurchases, func() error {
			return ListView(cmd)
		})
	},
}

func init() {
	listCmd.Flags().BoolVar(&listMine, "mine", false, "Only list purchases you own")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. seller_id == 4)")
	listCmd.Flags().StringArrayVar(&listWhere, "where", nil, "Filter by field equality (key=value). Repeatable")
}

// ListView is the landing view of the purchases route.
func ListView(cmd *cobra.Command) error {
	filter, err := view.ListFilter(listFilter, listWhere)
	if err != nil {
		return err
	}

	client, err := view.SDKClient(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := view.Timeout(cmd)
	defer cancel()

	purchases, err := client.ListPurchases(ctx, sdk.ListOptions{Mine: listMine, Filter: filter})
	if err != nil {
		return fmt.Errorf("failed to list purchases: %w", err)
	}
	if len(purchases) == 0 {
		view.Empty("purchases")
		return nil
	}

	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []string{
			view.Itoa(p.ID), view.Itoa(p.PropertyID), view.Itoa(p.SellerID),
			view.Date(p.PurchaseDate), view.Money(p.InitialPrice), view.Itoa(p.OwnerID),
		})
	}
	return view.Table([]string{"ID", "PROPERTY", "SELLER", "DATE", "PRICE", "OWNER"}, rows)
}
