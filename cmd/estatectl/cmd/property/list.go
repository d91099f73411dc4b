package property

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
	Short: "List properties",
	Long: `Lists properties. --mine restricts the listing to properties you own.
--filter takes a bexpr expression over the JSON field names
(e.g. status == "available" and type == "house"); --where adds key=value
equality conditions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathProperties, func() error {
			return ListView(cmd)
		})
	},
}

func init() {
	listCmd.Flags().BoolVar(&listMine, "mine", false, "Only list properties you own")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. status == \"available\")")
	listCmd.Flags().StringArrayVar(&listWhere, "where", nil, "Filter by field equality (key=value). Repeatable")
}

// ListView is the landing view of the properties route.
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

	properties, err := client.ListProperties(ctx, sdk.ListOptions{Mine: listMine, Filter: filter})
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}
	if len(properties) == 0 {
		view.Empty("properties")
		return nil
	}

	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []string{view.Itoa(p.ID), p.Address, p.Type, view.Money(p.Price), p.Status, view.Itoa(p.OwnerID)})
	}
	return view.Table([]string{"ID", "ADDRESS", "TYPE", "PRICE", "STATUS", "OWNER"}, rows)
}
