package sale

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
	Short: "List sales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathSales, func() error {
			return ListView(cmd)
		})
	},
}

func init() {
	listCmd.Flags().BoolVar(&listMine, "mine", false, "Only list sales you own")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. buyer_id == 4)")
	listCmd.Flags().StringArrayVar(&listWhere, "where", nil, "Filter by field equality (key=value). Repeatable")
}

// ListView is the landing view of the sales route.
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

	sales, err := client.ListSales(ctx, sdk.ListOptions{Mine: listMine, Filter: filter})
	if err != nil {
		return fmt.Errorf("failed to list sales: %w", err)
	}
	if len(sales) == 0 {
		view.Empty("sales")
		return nil
	}

	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			view.Itoa(s.ID), view.Itoa(s.PropertyID), view.Itoa(s.BuyerID),
			view.Date(s.SaleDate), view.Money(s.FinalPrice), view.Itoa(s.OwnerID),
		})
	}
	return view.Table([]string{"ID", "PROPERTY", "BUYER", "DATE", "PRICE", "OWNER"}, rows)
}
