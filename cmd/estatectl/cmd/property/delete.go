package property

import (
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a property",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view.Routed(cmd, nav.PathProperties, func() error {
			id, err := view.ParseID(args[0], "property")
			if err != nil {
				return err
			}
			ok, err := view.Confirm(cmd, fmt.Sprintf("Delete property %d?", id), deleteYes)
			if err != nil || !ok {
				return err
			}

			client, err := view.SDKClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := view.Timeout(cmd)
			defer cancel()

			if err := client.DeleteProperty(ctx, id); err != nil {
				return fmt.Errorf("failed to delete property %d: %w", id, err)
			}
			pterm.Success.Printf("Deleted property %d\n", id)
			return nil
		})
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
