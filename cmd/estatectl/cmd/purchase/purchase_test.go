package purchase

import (
	"testing"

	"github.com/estatedesk/estate/pkg/sdk"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePurchase(t *testing.T) {
	assert.NoError(t, validatePurchase(sdk.Purchase{PropertyID: 1, SellerID: 2, InitialPrice: 10}))

	err := validatePurchase(sdk.Purchase{InitialPrice: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--property")
	assert.Contains(t, err.Error(), "--seller")
	assert.Contains(t, err.Error(), "--price")
}

func TestMergePurchase(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	addPurchaseFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--seller", "9"}))

	got := mergePurchase(sdk.Purchase{ID: 1, PropertyID: 4, SellerID: 2, InitialPrice: 99}, cmd.Flags())
	assert.Equal(t, sdk.Purchase{ID: 1, PropertyID: 4, SellerID: 9, InitialPrice: 99}, got)
}
