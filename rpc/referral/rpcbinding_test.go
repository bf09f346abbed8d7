package referral

import (
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method   string
	maxItems int
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method = operation
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.maxItems = operation, i
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	referrer := util.Uint160{7}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewByteArray(referrer.BytesBE())}}
	res, err := r.GetReferrer(util.Uint160{1})
	require.NoError(t, err)
	require.Equal(t, referrer, res)
	require.Equal(t, "getReferrer", ti.method)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(2)}}
	count, err := r.ReferralsCount(referrer)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), count)

	users := []stackitem.Item{
		stackitem.NewByteArray(util.Uint160{1}.BytesBE()),
		stackitem.NewByteArray(util.Uint160{2}.BytesBE()),
	}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.NewArray(users)}}
	items, err := r.IterateReferralsExpanded(referrer, 10)
	require.NoError(t, err)
	require.Equal(t, users, items)
	require.Equal(t, "iterateReferrals", ti.method)
	require.Equal(t, 10, ti.maxItems)
}

func TestEventsFromApplicationLog(t *testing.T) {
	user, referrer := util.Uint160{1}, util.Uint160{2}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "ReferralRecorded", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(user.BytesBE()), stackitem.NewByteArray(referrer.BytesBE()),
				})},
				{Name: "ReferralCommissionRecorded", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(referrer.BytesBE()), stackitem.Make(111),
				})},
				{Name: "OperatorUpdated", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(user.BytesBE()), stackitem.NewBool(true),
				})},
			},
		}},
	}

	recorded, err := ReferralRecordedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ReferralRecordedEvent{{User: user, Referrer: referrer}}, recorded)

	commissions, err := ReferralCommissionRecordedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ReferralCommissionRecordedEvent{{Referrer: referrer, Commission: big.NewInt(111)}}, commissions)

	operators, err := OperatorUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*OperatorUpdatedEvent{{Operator: user, Status: true}}, operators)
}
