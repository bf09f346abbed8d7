package deploy

import (
	"errors"
	"fmt"

	"github.com/bullyswap/bully-contract/contracts/token/tokenpolicy"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// TokenSettings groups BULLY token parameters set by the operator after
// deployment. Nil fields are left as they are on the chain.
type TokenSettings struct {
	TransferTaxRate       *int
	BurnRate              *int
	MaxTransferAmountRate *int
	MinAmountToLiquify    *int
	SwapAndLiquifyEnabled *bool
	SwapRouter            *util.Uint160

	// Accounts to be excluded from the anti-whale cap.
	ExcludedFromAntiWhale []util.Uint160

	// Operator role is handed over at the very end, after that the local
	// account can no longer change the settings.
	Operator *util.Uint160
}

// Validate checks that the settings would be accepted by the token contract.
func (x TokenSettings) Validate() error {
	if x.TransferTaxRate != nil && !tokenpolicy.ValidTaxRate(*x.TransferTaxRate) {
		return fmt.Errorf("invalid transfer tax rate %d", *x.TransferTaxRate)
	}

	if x.BurnRate != nil && !tokenpolicy.ValidBurnRate(*x.BurnRate) {
		return fmt.Errorf("invalid burn rate %d", *x.BurnRate)
	}

	if x.MaxTransferAmountRate != nil && !tokenpolicy.ValidMaxTransferAmountRate(*x.MaxTransferAmountRate) {
		return fmt.Errorf("invalid max transfer amount rate %d", *x.MaxTransferAmountRate)
	}

	if x.MinAmountToLiquify != nil && *x.MinAmountToLiquify < 0 {
		return fmt.Errorf("negative min amount to liquify %d", *x.MinAmountToLiquify)
	}

	if x.SwapRouter != nil && x.SwapRouter.Equals(util.Uint160{}) {
		return errors.New("zero swap router")
	}

	if x.Operator != nil && x.Operator.Equals(util.Uint160{}) {
		return errors.New("zero operator")
	}

	return nil
}

// tokenState is a snapshot of the token settings read from the chain.
type tokenState struct {
	transferTaxRate       int
	burnRate              int
	maxTransferAmountRate int
	minAmountToLiquify    int
	swapAndLiquifyEnabled bool
	swapRouter            util.Uint160 // zero if not set
	operator              util.Uint160
	excluded              map[util.Uint160]bool
}

type contractCall struct {
	method string
	args   []any
}

// planTokenUpdates returns calls bringing the token from cur to the desired
// settings. Operator transfer, if any, goes last.
func planTokenUpdates(cur tokenState, s TokenSettings) []contractCall {
	var calls []contractCall

	if s.TransferTaxRate != nil && *s.TransferTaxRate != cur.transferTaxRate {
		calls = append(calls, contractCall{"updateTransferTaxRate", []any{*s.TransferTaxRate}})
	}

	if s.BurnRate != nil && *s.BurnRate != cur.burnRate {
		calls = append(calls, contractCall{"updateBurnRate", []any{*s.BurnRate}})
	}

	if s.MaxTransferAmountRate != nil && *s.MaxTransferAmountRate != cur.maxTransferAmountRate {
		calls = append(calls, contractCall{"updateMaxTransferAmountRate", []any{*s.MaxTransferAmountRate}})
	}

	if s.MinAmountToLiquify != nil && *s.MinAmountToLiquify != cur.minAmountToLiquify {
		calls = append(calls, contractCall{"updateMinAmountToLiquify", []any{*s.MinAmountToLiquify}})
	}

	if s.SwapRouter != nil && !s.SwapRouter.Equals(cur.swapRouter) {
		calls = append(calls, contractCall{"updateSwapRouter", []any{*s.SwapRouter}})
	}

	if s.SwapAndLiquifyEnabled != nil && *s.SwapAndLiquifyEnabled != cur.swapAndLiquifyEnabled {
		calls = append(calls, contractCall{"updateSwapAndLiquifyEnabled", []any{*s.SwapAndLiquifyEnabled}})
	}

	for _, acc := range s.ExcludedFromAntiWhale {
		if !cur.excluded[acc] {
			calls = append(calls, contractCall{"setExcludedFromAntiWhale", []any{acc, true}})
		}
	}

	if s.Operator != nil && !s.Operator.Equals(cur.operator) {
		calls = append(calls, contractCall{"transferOperator", []any{*s.Operator}})
	}

	return calls
}
