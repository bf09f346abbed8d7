package locker

import (
	"github.com/bullyswap/bully-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const ownerKey = "o"

var ownerRole common.Role

func init() {
	ownerRole = common.Role{Key: ownerKey, Err: common.ErrOwnerWitnessFailed}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	owner := runtime.GetScriptContainer().Sender
	if data != nil {
		args := data.([]any)
		if len(args) > 0 && args[0] != nil {
			owner = args[0].(interop.Hash160)
		}
	}

	common.InitRole(ctx, ownerRole, owner)

	runtime.Log("locker contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 tokens. The locker accepts any of
// them.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	runtime.Log("tokens locked")
}

// Owner returns the current owner of the contract.
func Owner() interop.Hash160 {
	return common.RoleHolder(storage.GetReadOnlyContext(), ownerRole)
}

// TransferOwnership passes the owner role to the new account. It can be
// invoked only by the current owner.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()

	prev := common.TransferRole(ctx, ownerRole, newOwner)
	runtime.Notify("OwnershipTransferred", prev, newOwner)
}

// Unlock transfers the whole locker balance of the NEP-17 token to the
// specified account. It can be invoked only by the owner.
//
// It produces Unlocked notification.
func Unlock(token, to interop.Hash160) {
	ctx := storage.GetReadOnlyContext()

	common.CheckRoleWitness(ctx, ownerRole)
	common.CheckAccount(token)
	common.CheckAccount(to)

	self := runtime.GetExecutingScriptHash()
	amount := contract.Call(token, "balanceOf", contract.ReadStates, self).(int)

	ok := contract.Call(token, "transfer", contract.All, self, to, amount, nil).(bool)
	if !ok {
		panic("can't transfer locked tokens")
	}

	runtime.Notify("Unlocked", token, to, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
