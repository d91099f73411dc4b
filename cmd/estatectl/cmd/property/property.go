package property

import (
	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/spf13/cobra"
)

// PropertiesCmd is the parent command for property operations
var PropertiesCmd = &cobra.Command{
	Use:     "properties",
	Aliases: []string{"property"},
	Short:   "Browse and manage properties",
	Long:    `Commands for listing, inspecting, creating, updating and deleting properties.`,
}

func init() {
	PropertiesCmd.AddCommand(listCmd)
	PropertiesCmd.AddCommand(getCmd)
	PropertiesCmd.AddCommand(createCmd)
	PropertiesCmd.AddCommand(updateCmd)
	PropertiesCmd.AddCommand(deleteCmd)
}

var statuses = []string{sdk.StatusAvailable, sdk.StatusSold, sdk.StatusPurchased}
