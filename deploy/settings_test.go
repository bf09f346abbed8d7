package deploy

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTokenSettingsValidate(t *testing.T) {
	require.NoError(t, TokenSettings{}.Validate())
	require.NoError(t, TokenSettings{
		TransferTaxRate:       ptr(1000),
		BurnRate:              ptr(0),
		MaxTransferAmountRate: ptr(10000),
		MinAmountToLiquify:    ptr(0),
		SwapRouter:            &util.Uint160{1},
		Operator:              &util.Uint160{2},
	}.Validate())

	for name, s := range map[string]TokenSettings{
		"tax rate too big":        {TransferTaxRate: ptr(1001)},
		"negative tax rate":       {TransferTaxRate: ptr(-1)},
		"burn rate too big":       {BurnRate: ptr(101)},
		"cap rate too small":      {MaxTransferAmountRate: ptr(49)},
		"cap rate too big":        {MaxTransferAmountRate: ptr(10001)},
		"negative min to liquify": {MinAmountToLiquify: ptr(-1)},
		"zero router":             {SwapRouter: &util.Uint160{}},
		"zero operator":           {Operator: &util.Uint160{}},
	} {
		require.Error(t, s.Validate(), name)
	}
}

func TestPlanTokenUpdates(t *testing.T) {
	cur := tokenState{
		transferTaxRate:       500,
		burnRate:              20,
		maxTransferAmountRate: 50,
		minAmountToLiquify:    500_0000_0000,
		operator:              util.Uint160{1},
		excluded:              map[util.Uint160]bool{{3}: true},
	}

	t.Run("nothing to do", func(t *testing.T) {
		require.Empty(t, planTokenUpdates(cur, TokenSettings{}))
		require.Empty(t, planTokenUpdates(cur, TokenSettings{
			TransferTaxRate:       ptr(500),
			BurnRate:              ptr(20),
			MaxTransferAmountRate: ptr(50),
			MinAmountToLiquify:    ptr(500_0000_0000),
			SwapAndLiquifyEnabled: ptr(false),
			ExcludedFromAntiWhale: []util.Uint160{{3}},
			Operator:              &util.Uint160{1},
		}))
	})

	t.Run("everything", func(t *testing.T) {
		calls := planTokenUpdates(cur, TokenSettings{
			TransferTaxRate:       ptr(300),
			BurnRate:              ptr(50),
			MaxTransferAmountRate: ptr(100),
			MinAmountToLiquify:    ptr(1000),
			SwapAndLiquifyEnabled: ptr(true),
			SwapRouter:            &util.Uint160{5},
			ExcludedFromAntiWhale: []util.Uint160{{3}, {4}},
			Operator:              &util.Uint160{2},
		})
		require.Equal(t, []contractCall{
			{"updateTransferTaxRate", []any{300}},
			{"updateBurnRate", []any{50}},
			{"updateMaxTransferAmountRate", []any{100}},
			{"updateMinAmountToLiquify", []any{1000}},
			{"updateSwapRouter", []any{util.Uint160{5}}},
			{"updateSwapAndLiquifyEnabled", []any{true}},
			{"setExcludedFromAntiWhale", []any{util.Uint160{4}, true}},
			{"transferOperator", []any{util.Uint160{2}}},
		}, calls)
	})

	t.Run("router unchanged", func(t *testing.T) {
		cur := cur
		cur.swapRouter = util.Uint160{5}
		require.Empty(t, planTokenUpdates(cur, TokenSettings{SwapRouter: &util.Uint160{5}}))
	})
}
