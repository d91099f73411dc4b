package purchase

import (
	"errors"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PurchasesCmd is the parent command for purchase records. Agents and admins only.
var PurchasesCmd = &cobra.Command{
	Use:     "purchases",
	Aliases: []string{"purchase"},
	Short:   "Browse and record property purchases",
	Long:    `Commands for listing, inspecting, recording and correcting purchases. Requires the agent role or higher.`,
}

var (
	purchaseProperty int
	purchaseSeller   int
	purchasePrice    float64
)

func init() {
	PurchasesCmd.AddCommand(listCmd)
	PurchasesCmd.AddCommand(getCmd)
	PurchasesCmd.AddCommand(createCmd)
	PurchasesCmd.AddCommand(updateCmd)
}

func addPurchaseFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&purchaseProperty, "property", 0, "Purchased property id")
	cmd.Flags().IntVar(&purchaseSeller, "seller", 0, "Seller account id")
	cmd.Flags().Float64Var(&purchasePrice, "price", 0, "Initial price")
}

// mergePurchase overlays the flags that were set on current.
func mergePurchase(current sdk.Purchase, flags *pflag.FlagSet) sdk.Purchase {
	if flags.Changed("property") {
		current.PropertyID = purchaseProperty
	}
	if flags.Changed("seller") {
		current.SellerID = purchaseSeller
	}
	if flags.Changed("price") {
		current.InitialPrice = purchasePrice
	}
	return current
}

func validatePurchase(p sdk.Purchase) error {
	var errs []error
	if p.PropertyID <= 0 {
		errs = append(errs, errors.New("--property is required"))
	}
	if p.SellerID <= 0 {
		errs = append(errs, errors.New("--seller is required"))
	}
	if p.InitialPrice < 0 {
		errs = append(errs, errors.New("--price cannot be negative"))
	}
	return errors.Join(errs...)
}
