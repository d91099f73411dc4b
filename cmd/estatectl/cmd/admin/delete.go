package admin

import (
	"context"
	"fmt"

	"github.com/estatedesk/estate/cmd/estatectl/internal/nav"
	"github.com/estatedesk/estate/cmd/estatectl/internal/view"
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteUserCmd = &cobra.Command{
	Use:   "delete-user <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRecord(cmd, args[0], "user", (*sdk.Client).DeleteUser)
	},
}

var deletePurchaseCmd = &cobra.Command{
	Use:   "delete-purchase <id>",
	Short: "Delete a purchase record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRecord(cmd, args[0], "purchase", (*sdk.Client).DeletePurchase)
	},
}

var deleteSaleCmd = &cobra.Command{
	Use:   "delete-sale <id>",
	Short: "Delete a sale record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRecord(cmd, args[0], "sale", (*sdk.Client).DeleteSale)
	},
}

func deleteRecord(cmd *cobra.Command, rawID, kind string, del func(*sdk.Client, context.Context, int) error) error {
	return view.Routed(cmd, nav.PathAdmin, func() error {
		id, err := view.ParseID(rawID, kind)
		if err != nil {
			return err
		}
		ok, err := view.Confirm(cmd, fmt.Sprintf("Delete %s %d?", kind, id), assumeYes)
		if err != nil || !ok {
			return err
		}

		client, err := view.SDKClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := view.Timeout(cmd)
		defer cancel()

		if err := del(client, ctx, id); err != nil {
			return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
		}
		pterm.Success.Printf("Deleted %s %d\n", kind, id)
		return nil
	})
}
