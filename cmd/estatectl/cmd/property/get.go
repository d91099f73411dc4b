package property

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a property",
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

			p, err := client.GetProperty(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get property %d: %w", id, err)
			}

			return view.Table([]string{"FIELD", "VALUE"}, [][]string{
				{"ID", view.Itoa(p.ID)},
				{"Address", p.Address},
				{"Type", p.Type},
				{"Price", view.Money(p.Price)},
				{"Status", p.Status},
				{"Owner", view.Itoa(p.OwnerID)},
			})
		})
	},
}
