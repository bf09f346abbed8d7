package tests

import (
	"path"
	"testing"

	"github.com/bullyswap/bully-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const referralPath = "../contracts/referral"

func newReferralInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, referralPath, path.Join(referralPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return e.CommitteeInvoker(ctr.Hash)
}

func TestReferralOperators(t *testing.T) {
	c := newReferralInvoker(t)

	alice, carol, referrer := c.NewAccount(t), c.NewAccount(t), c.NewAccount(t)
	operator := c.NewAccount(t)
	cOperator, cCarol := c.WithSigners(operator), c.WithSigners(carol)

	c.Invoke(t, stackitem.NewBuffer(c.CommitteeHash.BytesBE()), "owner")
	c.Invoke(t, false, "isOperator", operator.ScriptHash())
	cOperator.InvokeFail(t, common.ErrOperatorWitnessFailed, "recordReferral",
		operator.ScriptHash(), alice.ScriptHash(), referrer.ScriptHash())

	cCarol.InvokeFail(t, common.ErrOwnerWitnessFailed, "updateOperator", operator.ScriptHash(), true)

	h := c.Invoke(t, stackitem.Null{}, "updateOperator", operator.ScriptHash(), true)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "OperatorUpdated", aer.Events[0].Name)
	c.Invoke(t, true, "isOperator", operator.ScriptHash())

	// Being an operator is not enough, the call must be witnessed by it.
	cCarol.InvokeFail(t, common.ErrOperatorWitnessFailed, "recordReferral",
		operator.ScriptHash(), alice.ScriptHash(), referrer.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "updateOperator", operator.ScriptHash(), false)
	c.Invoke(t, false, "isOperator", operator.ScriptHash())
	cOperator.InvokeFail(t, common.ErrOperatorWitnessFailed, "recordReferral",
		operator.ScriptHash(), alice.ScriptHash(), referrer.ScriptHash())
}

func TestReferralRecord(t *testing.T) {
	c := newReferralInvoker(t)

	alice, bob, carol, referrer := c.NewAccount(t), c.NewAccount(t), c.NewAccount(t), c.NewAccount(t)
	operator := c.NewAccount(t)
	cOperator := c.WithSigners(operator)
	op := operator.ScriptHash()

	c.Invoke(t, stackitem.Null{}, "updateOperator", op, true)

	for _, args := range [][2]util.Uint160{
		{{}, referrer.ScriptHash()},
		{alice.ScriptHash(), {}},
		{{}, {}},
		{alice.ScriptHash(), alice.ScriptHash()},
	} {
		h := cOperator.Invoke(t, stackitem.Null{}, "recordReferral", op, args[0], args[1])
		require.Equal(t, 0, len(c.CheckHalt(t, h).Events))
	}
	c.Invoke(t, stackitem.Null{}, "getReferrer", alice.ScriptHash())
	c.Invoke(t, 0, "referralsCount", referrer.ScriptHash())

	h := cOperator.Invoke(t, stackitem.Null{}, "recordReferral", op, alice.ScriptHash(), referrer.ScriptHash())
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "ReferralRecorded", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(alice.ScriptHash().BytesBE()),
		stackitem.NewByteArray(referrer.ScriptHash().BytesBE()),
	}), aer.Events[0].Item)

	c.Invoke(t, stackitem.NewBuffer(referrer.ScriptHash().BytesBE()), "getReferrer", alice.ScriptHash())
	c.Invoke(t, 1, "referralsCount", referrer.ScriptHash())

	c.Invoke(t, 0, "referralsCount", bob.ScriptHash())
	cOperator.Invoke(t, stackitem.Null{}, "recordReferral", op, alice.ScriptHash(), bob.ScriptHash())
	c.Invoke(t, 0, "referralsCount", bob.ScriptHash())
	c.Invoke(t, stackitem.NewBuffer(referrer.ScriptHash().BytesBE()), "getReferrer", alice.ScriptHash())

	cOperator.Invoke(t, stackitem.Null{}, "recordReferral", op, carol.ScriptHash(), referrer.ScriptHash())
	c.Invoke(t, stackitem.NewBuffer(referrer.ScriptHash().BytesBE()), "getReferrer", carol.ScriptHash())
	c.Invoke(t, 2, "referralsCount", referrer.ScriptHash())

	s, err := c.TestInvoke(t, "iterateReferrals", referrer.ScriptHash())
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	users := iteratorToArray(iter)
	require.ElementsMatch(t, []stackitem.Item{
		stackitem.NewByteArray(alice.ScriptHash().BytesBE()),
		stackitem.NewByteArray(carol.ScriptHash().BytesBE()),
	}, users)
}

func TestReferralCommission(t *testing.T) {
	c := newReferralInvoker(t)

	referrer := c.NewAccount(t)
	operator := c.NewAccount(t)
	cOperator := c.WithSigners(operator)
	op := operator.ScriptHash()

	c.Invoke(t, 0, "totalReferralCommissions", referrer.ScriptHash())
	cOperator.InvokeFail(t, common.ErrOperatorWitnessFailed, "recordReferralCommission", op, referrer.ScriptHash(), 1)

	c.Invoke(t, stackitem.Null{}, "updateOperator", op, true)

	cOperator.Invoke(t, stackitem.Null{}, "recordReferralCommission", op, referrer.ScriptHash(), 1)
	c.Invoke(t, 1, "totalReferralCommissions", referrer.ScriptHash())

	cOperator.Invoke(t, stackitem.Null{}, "recordReferralCommission", op, referrer.ScriptHash(), 0)
	c.Invoke(t, 1, "totalReferralCommissions", referrer.ScriptHash())

	cOperator.Invoke(t, stackitem.Null{}, "recordReferralCommission", op, referrer.ScriptHash(), 111)
	c.Invoke(t, 112, "totalReferralCommissions", referrer.ScriptHash())

	cOperator.Invoke(t, stackitem.Null{}, "recordReferralCommission", op, util.Uint160{}, 100)
	c.Invoke(t, 0, "totalReferralCommissions", util.Uint160{})

	cOperator.InvokeFail(t, "negative commission", "recordReferralCommission", op, referrer.ScriptHash(), -1)
}

func TestReferralTransferOwnership(t *testing.T) {
	c := newReferralInvoker(t)

	owner := c.NewAccount(t)
	cOwner := c.WithSigners(owner)

	c.InvokeFail(t, common.ErrNullAccount, "transferOwnership", util.Uint160{})
	cOwner.InvokeFail(t, common.ErrOwnerWitnessFailed, "transferOwnership", owner.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "transferOwnership", owner.ScriptHash())

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "updateOperator", owner.ScriptHash(), true)
	cOwner.Invoke(t, stackitem.Null{}, "updateOperator", owner.ScriptHash(), true)
}
