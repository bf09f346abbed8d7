package locker

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
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func TestReaderOwner(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.Owner()
	require.Error(t, err)

	owner := util.Uint160{5, 5}
	ti.err = nil
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewByteArray(owner.BytesBE())}}
	res, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, owner, res)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewByteArray([]byte{1, 2})}}
	_, err = r.Owner()
	require.Error(t, err)
}

func TestUnlockedEventsFromApplicationLog(t *testing.T) {
	token, to := util.Uint160{1}, util.Uint160{2}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Transfer", Item: stackitem.NewArray([]stackitem.Item{})},
				{Name: "Unlocked", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(token.BytesBE()), stackitem.NewByteArray(to.BytesBE()), stackitem.Make(1900),
				})},
			},
		}},
	}

	events, err := UnlockedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*UnlockedEvent{{Token: token, To: to, Amount: big.NewInt(1900)}}, events)
}
