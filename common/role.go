package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Role is a privilege held by exactly one account at a time. The holder is
// kept in contract storage under Key; Err is the panic message thrown when
// the holder's witness is missing.
type Role struct {
	Key string
	Err string
}

// InitRole sets the initial holder of the role. It panics if the holder is
// the null account.
func InitRole(ctx storage.Context, r Role, holder interop.Hash160) {
	CheckAccount(holder)
	storage.Put(ctx, r.Key, holder)
}

// RoleHolder returns the current holder of the role.
func RoleHolder(ctx storage.Context, r Role) interop.Hash160 {
	return storage.Get(ctx, r.Key).(interop.Hash160)
}

// IsRoleHolder checks whether the account holds the role.
func IsRoleHolder(ctx storage.Context, r Role, account interop.Hash160) bool {
	holder := storage.Get(ctx, r.Key).(interop.Hash160)
	return holder.Equals(account)
}

// CheckRoleWitness panics with the role error unless the current holder has
// witnessed the invocation.
func CheckRoleWitness(ctx storage.Context, r Role) {
	holder := storage.Get(ctx, r.Key).(interop.Hash160)
	checkWitnessWithPanic(holder, r.Err)
}

// TransferRole replaces the holder of the role with the new one. It can be
// invoked only on behalf of the current holder and never accepts the null
// account. The previous holder is returned.
func TransferRole(ctx storage.Context, r Role, newHolder interop.Hash160) interop.Hash160 {
	prev := storage.Get(ctx, r.Key).(interop.Hash160)
	checkWitnessWithPanic(prev, r.Err)
	CheckAccount(newHolder)

	storage.Put(ctx, r.Key, newHolder)

	return prev
}
