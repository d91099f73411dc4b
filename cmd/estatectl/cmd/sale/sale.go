package sale

import (
	"errors"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SalesCmd is the parent command for sale records. Agents and admins only.
var SalesCmd = &cobra.Command{
	Use:     "sales",
	Aliases: []string{"sale"},
	Short:   "Browse and record property sales",
	Long:    `Commands for listing, inspecting, recording and correcting sales. Requires the agent role or higher.`,
}

var (
	saleProperty int
	saleBuyer    int
	salePrice    float64
)

func init() {
	SalesCmd.AddCommand(listCmd)
	SalesCmd.AddCommand(getCmd)
	SalesCmd.AddCommand(createCmd)
	SalesCmd.AddCommand(updateCmd)
}

func addSaleFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&saleProperty, "property", 0, "Sold property id")
	cmd.Flags().IntVar(&saleBuyer, "buyer", 0, "Buyer account id")
	cmd.Flags().Float64Var(&salePrice, "price", 0, "Final price")
}

// mergeSale overlays the flags that were set on current.
func mergeSale(current sdk.Sale, flags *pflag.FlagSet) sdk.Sale {
	if flags.Changed("property") {
		current.PropertyID = saleProperty
	}
	if flags.Changed("buyer") {
		current.BuyerID = saleBuyer
	}
	if flags.Changed("price") {
		current.FinalPrice = salePrice
	}
	return current
}

func validateSale(s sdk.Sale) error {
	var errs []error
	if s.PropertyID <= 0 {
		errs = append(errs, errors.New("--property is required"))
	}
	if s.BuyerID <= 0 {
		errs = append(errs, errors.New("--buyer is required"))
	}
	if s.FinalPrice < 0 {
		errs = append(errs, errors.New("--price cannot be negative"))
	}
	return errors.Join(errs...)
}
