package token

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestReaderTransferSplit(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.TransferSplit(big.NewInt(12345))
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(617), stackitem.Make(123), stackitem.Make(494), stackitem.Make(11728),
	}))
	s, err := r.TransferSplit(big.NewInt(12345))
	require.NoError(t, err)
	require.Equal(t, "transferSplit", ti.method)
	require.Equal(t, []any{big.NewInt(12345)}, ti.params)
	require.Equal(t, &TokenpolicyTransferSplit{
		Tax:       big.NewInt(617),
		Burn:      big.NewInt(123),
		Liquidity: big.NewInt(494),
		Net:       big.NewInt(11728),
	}, s)

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{stackitem.Make(617)}))
	_, err = r.TransferSplit(big.NewInt(12345))
	require.Error(t, err)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "negative amount"}
	_, err = r.TransferSplit(big.NewInt(-1))
	require.Error(t, err)
}

func TestReaderViews(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.Make(500))
	rate, err := r.TransferTaxRate()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(500), rate)
	require.Equal(t, "transferTaxRate", ti.method)

	ti.res = halt(stackitem.Make(true))
	ok, err := r.IsExcludedFromAntiWhale(util.Uint160{4})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []any{util.Uint160{4}}, ti.params)

	h := util.Uint160{9, 8, 7}
	ti.res = halt(stackitem.NewByteArray(h.BytesBE()))
	router, err := r.SwapRouter()
	require.NoError(t, err)
	require.Equal(t, h, router)

	ti.res = halt(stackitem.Null{})
	_, err = r.SwapRouter()
	require.Error(t, err)
}

func TestEventsFromApplicationLog(t *testing.T) {
	router := util.Uint160{1}
	operator := util.Uint160{2}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Transfer", Item: stackitem.NewArray([]stackitem.Item{stackitem.Null{}, stackitem.Null{}, stackitem.Make(1)})},
				{Name: "TransferTaxRateUpdated", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(operator.BytesBE()), stackitem.Make(500), stackitem.Make(300),
				})},
				{Name: "SwapAndLiquifyFailed", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(router.BytesBE()), stackitem.Make(400),
				})},
			},
		}},
	}

	rates, err := TransferTaxRateUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*TransferTaxRateUpdatedEvent{{
		Operator:     operator,
		PreviousRate: big.NewInt(500),
		NewRate:      big.NewInt(300),
	}}, rates)

	failed, err := SwapAndLiquifyFailedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*SwapAndLiquifyFailedEvent{{Router: router, Amount: big.NewInt(400)}}, failed)

	swaps, err := SwapAndLiquifyEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, swaps)

	_, err = SwapAndLiquifyEventsFromApplicationLog(nil)
	require.Error(t, err)

	log.Executions[0].Events[2].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(400)})
	_, err = SwapAndLiquifyFailedEventsFromApplicationLog(log)
	require.Error(t, err)
}
