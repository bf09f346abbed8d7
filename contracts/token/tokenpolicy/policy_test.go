package tokenpolicy

import (
	"testing"

	"github.com/bullyswap/bully-contract/contracts/token/tokenconst"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name     string
		amount   int
		tax      int
		burn     int
		expected TransferSplit
	}{
		{"default rates", 12345, 500, 20, TransferSplit{Tax: 617, Burn: 123, Liquidity: 494, Net: 11728}},
		{"second transfer", 22345, 500, 20, TransferSplit{Tax: 1117, Burn: 223, Liquidity: 894, Net: 21228}},
		{"too small to tax", 19, 500, 20, TransferSplit{Net: 19}},
		{"zero tax rate", 10000, 0, 20, TransferSplit{Net: 10000}},
		{"zero burn rate", 1234, 500, 0, TransferSplit{Tax: 61, Liquidity: 61, Net: 1173}},
		{"full burn", 1234, 500, 100, TransferSplit{Tax: 61, Burn: 61, Net: 1173}},
		{"zero amount", 0, 500, 20, TransferSplit{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Split(tc.amount, tc.tax, tc.burn)
			require.Equal(t, tc.expected, s)
			require.Equal(t, tc.amount, s.Net+s.Burn+s.Liquidity)
		})
	}
}

func TestSplitConservation(t *testing.T) {
	for amount := 0; amount < 3000; amount += 7 {
		for _, taxRate := range []int{0, 1, 250, 500, tokenconst.MaxTransferTaxRate} {
			for _, burnRate := range []int{0, 1, 20, 99, tokenconst.MaxBurnRate} {
				s := Split(amount, taxRate, burnRate)
				require.Equal(t, amount, s.Net+s.Tax)
				require.Equal(t, s.Tax, s.Burn+s.Liquidity)
				require.True(t, s.Burn >= 0 && s.Liquidity >= 0)
			}
		}
	}
}

func TestMaxTransferAmount(t *testing.T) {
	require.Equal(t, 0, MaxTransferAmount(0, tokenconst.DefaultMaxTransferAmountRate))
	require.Equal(t, 5000, MaxTransferAmount(1_000_000, 50))
	require.Equal(t, 5005, MaxTransferAmount(1_001_000, 50))
	require.Equal(t, 10010, MaxTransferAmount(1_001_000, 100))
	require.Equal(t, 250, MaxTransferAmount(50_000, 50))

	require.True(t, WithinCap(250, 50_000, 50))
	require.False(t, WithinCap(251, 50_000, 50))
	require.True(t, WithinCap(0, 0, 50))
}

func TestRateBounds(t *testing.T) {
	require.True(t, ValidTaxRate(0))
	require.True(t, ValidTaxRate(tokenconst.MaxTransferTaxRate))
	require.False(t, ValidTaxRate(tokenconst.MaxTransferTaxRate+1))
	require.False(t, ValidTaxRate(-1))

	require.True(t, ValidBurnRate(0))
	require.True(t, ValidBurnRate(100))
	require.False(t, ValidBurnRate(101))

	require.False(t, ValidMaxTransferAmountRate(49))
	require.True(t, ValidMaxTransferAmountRate(50))
	require.True(t, ValidMaxTransferAmountRate(10000))
	require.False(t, ValidMaxTransferAmountRate(10001))
}
