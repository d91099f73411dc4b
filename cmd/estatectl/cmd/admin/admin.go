package admin

import (
	"github.com/spf13/cobra"
)

// AdminCmd is the parent command for administration. Admins only.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer accounts and records",
	Long:  `Commands for managing user accounts and removing purchase and sale records. Requires the admin role.`,
}

var assumeYes bool

func init() {
	AdminCmd.AddCommand(usersCmd)
	AdminCmd.AddCommand(setRoleCmd)
	AdminCmd.AddCommand(deleteUserCmd)
	AdminCmd.AddCommand(deletePurchaseCmd)
	AdminCmd.AddCommand(deleteSaleCmd)

	for _, cmd := range []*cobra.Command{deleteUserCmd, deletePurchaseCmd, deleteSaleCmd} {
		cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	}
}
