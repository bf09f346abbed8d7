// Package tokenconst contains constants shared by the BULLY token contract
// and its off-chain users.
package tokenconst

const (
	// Symbol is the NEP-17 symbol of the token.
	Symbol = "BULLY"
	// Decimals is the NEP-17 precision of the token.
	Decimals = 8

	// BurnAddress is the script hash (big-endian bytes) of the burn sink.
	// Tokens credited to it can never be spent but stay in the total supply.
	BurnAddress = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xde\xad"
)

// Fee and cap bounds.
const (
	// MaxTransferTaxRate is the ceiling of the transfer tax rate in basis
	// points (10%).
	MaxTransferTaxRate = 1000
	// MaxBurnRate is the ceiling of the burned share of the tax in percents.
	MaxBurnRate = 100
	// MinMaxTransferAmountRate and MaxMaxTransferAmountRate bound the
	// anti-whale cap rate in basis points of the total supply.
	MinMaxTransferAmountRate = 50
	MaxMaxTransferAmountRate = 10000
)

// Values set at contract deployment.
const (
	DefaultTransferTaxRate       = 500
	DefaultBurnRate              = 20
	DefaultMaxTransferAmountRate = 50
	// DefaultMinAmountToLiquify is 500 tokens.
	DefaultMinAmountToLiquify = 500_0000_0000
)

// Exception messages thrown by the token contract.
const (
	ErrNegativeAmount               = "negative amount"
	ErrInvalidAccount               = "invalid account"
	ErrInsufficientBalance          = "insufficient balance"
	ErrCapExceeded                  = "transfer amount exceeds the maxTransferAmount"
	ErrInvalidTaxRate               = "transfer tax rate must not exceed the maximum rate"
	ErrInvalidBurnRate              = "burn rate must not exceed the maximum rate"
	ErrInvalidMaxTransferAmountRate = "max transfer amount rate is out of range"
	ErrRouterNotContract            = "swap router is not a deployed contract"
	ErrSwapInProgress               = "swap and liquify is in progress"
)
