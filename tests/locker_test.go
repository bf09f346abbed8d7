package tests

import (
	"path"
	"testing"

	"github.com/bullyswap/bully-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const lockerPath = "../contracts/locker"

func deployLockerContract(t *testing.T, e *neotest.Executor, owner util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, lockerPath, path.Join(lockerPath, "config.yml"))
	e.DeployContract(t, c, []any{owner})
	return c.Hash
}

func TestLockerUnlock(t *testing.T) {
	token := newTokenInvoker(t)
	owner, bob, carol := token.NewAccount(t), token.NewAccount(t), token.NewAccount(t)

	locker := token.CommitteeInvoker(deployLockerContract(t, token.Executor, owner.ScriptHash()))
	cOwner, cBob := locker.WithSigners(owner), locker.WithSigners(bob)

	locker.Invoke(t, stackitem.NewBuffer(owner.ScriptHash().BytesBE()), "owner")

	token.Invoke(t, stackitem.Null{}, "mint", owner.ScriptHash(), 1_000_000)
	token.WithSigners(owner).Invoke(t, true, "transfer", owner.ScriptHash(), locker.Hash, 2000, nil)
	// Locker is an ordinary holder, transfers to it are taxed.
	checkBalance(t, token, locker.Hash, 1900)

	cBob.InvokeFail(t, common.ErrOwnerWitnessFailed, "unlock", token.Hash, bob.ScriptHash())

	h := cOwner.Invoke(t, stackitem.Null{}, "unlock", token.Hash, carol.ScriptHash())
	aer := locker.CheckHalt(t, h)
	last := aer.Events[len(aer.Events)-1]
	require.Equal(t, "Unlocked", last.Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(token.Hash.BytesBE()),
		stackitem.NewByteArray(carol.ScriptHash().BytesBE()),
		stackitem.Make(1900),
	}), last.Item)

	checkBalance(t, token, locker.Hash, 0)
	checkBalance(t, token, carol.ScriptHash(), 1805)
}

func TestLockerUnlockGAS(t *testing.T) {
	e := newExecutor(t)
	owner := e.NewAccount(t)

	locker := e.CommitteeInvoker(deployLockerContract(t, e, owner.ScriptHash()))
	gas := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	carol, err := util.Uint160DecodeBytesBE(randomBytes(util.Uint160Size))
	require.NoError(t, err)

	gas.Invoke(t, true, "transfer", e.CommitteeHash, locker.Hash, 2000, nil)
	gas.Invoke(t, 2000, "balanceOf", locker.Hash)

	locker.WithSigners(owner).Invoke(t, stackitem.Null{}, "unlock", gas.Hash, carol)
	gas.Invoke(t, 0, "balanceOf", locker.Hash)
	gas.Invoke(t, 2000, "balanceOf", carol)
}

func TestLockerTransferOwnership(t *testing.T) {
	e := newExecutor(t)
	owner := e.NewAccount(t)

	c := e.CommitteeInvoker(deployLockerContract(t, e, e.CommitteeHash))
	c.Invoke(t, common.Version, "version")
	c.InvokeFail(t, common.ErrNullAccount, "transferOwnership", util.Uint160{})
	c.WithSigners(owner).InvokeFail(t, common.ErrOwnerWitnessFailed, "transferOwnership", owner.ScriptHash())

	c.Invoke(t, stackitem.Null{}, "transferOwnership", owner.ScriptHash())
	c.Invoke(t, stackitem.NewBuffer(owner.ScriptHash().BytesBE()), "owner")
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "unlock", c.Hash, owner.ScriptHash())
}
