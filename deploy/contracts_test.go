package deploy

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testTokenInvoker answers token view calls from the map.
type testTokenInvoker map[string]stackitem.Item

func (x testTokenInvoker) Call(_ util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	item, ok := x[operation]
	if !ok {
		return nil, errors.New("unexpected call " + operation)
	}

	if operation == "isExcludedFromAntiWhale" {
		acc := params[0].(util.Uint160)
		item = stackitem.Make(acc.Equals(util.Uint160{3}))
	}

	return &result.Invoke{State: "HALT", Stack: []stackitem.Item{item}}, nil
}

func newTestTokenInvoker() testTokenInvoker {
	return testTokenInvoker{
		"transferTaxRate":         stackitem.Make(500),
		"burnRate":                stackitem.Make(20),
		"maxTransferAmountRate":   stackitem.Make(50),
		"minAmountToLiquify":      stackitem.Make(500_0000_0000),
		"swapAndLiquifyEnabled":   stackitem.Make(true),
		"operator":                stackitem.Make(util.Uint160{1}.BytesBE()),
		"swapRouter":              stackitem.Null{},
		"isExcludedFromAntiWhale": stackitem.Make(false),
	}
}

func TestReadTokenState(t *testing.T) {
	inv := newTestTokenInvoker()

	st, err := readTokenState(inv, util.Uint160{9}, []util.Uint160{{3}, {4}})
	require.NoError(t, err)
	require.Equal(t, tokenState{
		transferTaxRate:       500,
		burnRate:              20,
		maxTransferAmountRate: 50,
		minAmountToLiquify:    500_0000_0000,
		swapAndLiquifyEnabled: true,
		operator:              util.Uint160{1},
		excluded:              map[util.Uint160]bool{{3}: true, {4}: false},
	}, st)

	inv["swapRouter"] = stackitem.Make(util.Uint160{5}.BytesBE())
	st, err = readTokenState(inv, util.Uint160{9}, nil)
	require.NoError(t, err)
	require.Equal(t, util.Uint160{5}, st.swapRouter)

	inv["swapRouter"] = stackitem.Make([]byte{1, 2, 3})
	_, err = readTokenState(inv, util.Uint160{9}, nil)
	require.Error(t, err)

	inv = newTestTokenInvoker()
	delete(inv, "burnRate")
	_, err = readTokenState(inv, util.Uint160{9}, nil)
	require.ErrorContains(t, err, "burn rate")
}

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Unknown contract: bad hash")))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))
}

func TestCompileSuite(t *testing.T) {
	tok, ref, locker, err := CompileSuite(filepath.Join("..", "contracts"))
	require.NoError(t, err)
	require.Equal(t, "BULLY", tok.Manifest.Name)
	require.Equal(t, "BULLY Referral", ref.Manifest.Name)
	require.Equal(t, "BULLY Locker", locker.Manifest.Name)
	require.Contains(t, tok.Manifest.SupportedStandards, "NEP-17")
	require.NotNil(t, tok.Manifest.ABI.GetMethod("transfer", 4))

	_, err = CompileContract(t.TempDir())
	require.Error(t, err)
}

func TestDeployWithoutAccount(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{Logger: zaptest.NewLogger(t)})
	require.ErrorContains(t, err, "missing local account")
}
