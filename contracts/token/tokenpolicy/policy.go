// Package tokenpolicy implements the fee and anti-whale arithmetic of the
// BULLY token. Functions are pure and are compiled into the contract as well
// as used off-chain. On-chain int is a VM big integer, so the products below
// can not overflow silently there; off-chain callers should keep
// amount*rate within int range.
//
// All divisions truncate, small amounts may pay no tax at all.
package tokenpolicy

import "github.com/bullyswap/bully-contract/contracts/token/tokenconst"

// Denominators of the configured rates.
const (
	// TaxRateBase is the denominator of the transfer tax rate (basis points).
	TaxRateBase = 10000
	// BurnRateBase is the denominator of the burn rate (percents of the tax).
	BurnRateBase = 100
	// CapRateBase is the denominator of the max transfer amount rate (basis
	// points of the total supply).
	CapRateBase = 10000
)

// TransferSplit describes how a taxed transfer is distributed between the
// recipient, the burn sink and the token reserve.
type TransferSplit struct {
	// Tax is the total fee withheld from the amount.
	Tax int
	// Burn is the part of the tax credited to the burn sink.
	Burn int
	// Liquidity is the part of the tax credited to the token reserve.
	Liquidity int
	// Net is the amount credited to the recipient.
	Net int
}

// Split computes the distribution of the transferred amount for the given tax
// rate (basis points) and burn rate (percents of the tax).
func Split(amount, taxRate, burnRate int) TransferSplit {
	tax := amount * taxRate / TaxRateBase
	burn := tax * burnRate / BurnRateBase

	return TransferSplit{
		Tax:       tax,
		Burn:      burn,
		Liquidity: tax - burn,
		Net:       amount - tax,
	}
}

// MaxTransferAmount returns the anti-whale cap for the total supply and the
// cap rate (basis points).
func MaxTransferAmount(supply, rate int) int {
	return supply * rate / CapRateBase
}

// WithinCap checks whether a non-exempt transfer of amount is allowed.
func WithinCap(amount, supply, rate int) bool {
	return amount <= MaxTransferAmount(supply, rate)
}

// ValidTaxRate checks transfer tax rate bounds.
func ValidTaxRate(rate int) bool {
	return rate >= 0 && rate <= tokenconst.MaxTransferTaxRate
}

// ValidBurnRate checks burn rate bounds.
func ValidBurnRate(rate int) bool {
	return rate >= 0 && rate <= tokenconst.MaxBurnRate
}

// ValidMaxTransferAmountRate checks anti-whale cap rate bounds.
func ValidMaxTransferAmountRate(rate int) bool {
	return rate >= tokenconst.MinMaxTransferAmountRate && rate <= tokenconst.MaxMaxTransferAmountRate
}
