package referral

import (
	"github.com/bullyswap/bully-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	ownerKey = "o"

	operatorPrefix   = 'p'
	referrerPrefix   = 'r'
	referralsPrefix  = 'f'
	countPrefix      = 'c'
	commissionPrefix = 'm'
)

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

	runtime.Log("referral contract initialized")
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

// UpdateOperator adds the account to or removes it from the list of
// operators allowed to record referrals. It can be invoked only by the owner.
func UpdateOperator(operator interop.Hash160, status bool) {
	ctx := storage.GetContext()

	common.CheckRoleWitness(ctx, ownerRole)
	common.CheckAccount(operator)

	key := append([]byte{operatorPrefix}, operator...)
	if status {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}

	runtime.Notify("OperatorUpdated", operator, status)
}

// IsOperator checks whether the account is allowed to record referrals.
func IsOperator(account interop.Hash160) bool {
	return isOperator(storage.GetReadOnlyContext(), account)
}

// RecordReferral saves the referrer of the user. It does nothing if either
// account is null, the user already has a referrer or refers itself. It can
// be invoked only on behalf of one of the operators.
func RecordReferral(operator, user, referrer interop.Hash160) {
	ctx := storage.GetContext()
	checkOperator(ctx, operator)

	if common.IsNullAccount(user) || common.IsNullAccount(referrer) || user.Equals(referrer) {
		return
	}

	key := append([]byte{referrerPrefix}, user...)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, referrer)
	storage.Put(ctx, append(append([]byte{referralsPrefix}, referrer...), user...), true)

	countKey := append([]byte{countPrefix}, referrer...)
	storage.Put(ctx, countKey, getInt(ctx, countKey)+1)

	runtime.Notify("ReferralRecorded", user, referrer)
}

// RecordReferralCommission adds the commission to the referrer's total. It
// does nothing for the null referrer and zero commission. It can be invoked
// only on behalf of one of the operators.
func RecordReferralCommission(operator, referrer interop.Hash160, commission int) {
	ctx := storage.GetContext()
	checkOperator(ctx, operator)

	if commission < 0 {
		panic("negative commission")
	}

	if common.IsNullAccount(referrer) || commission == 0 {
		return
	}

	key := append([]byte{commissionPrefix}, referrer...)
	storage.Put(ctx, key, getInt(ctx, key)+commission)

	runtime.Notify("ReferralCommissionRecorded", referrer, commission)
}

// GetReferrer returns the referrer of the user or nil if there is none.
func GetReferrer(user interop.Hash160) interop.Hash160 {
	r := storage.Get(storage.GetReadOnlyContext(), append([]byte{referrerPrefix}, user...))
	if r == nil {
		return nil
	}
	return r.(interop.Hash160)
}

// ReferralsCount returns the number of users referred by the referrer.
func ReferralsCount(referrer interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), append([]byte{countPrefix}, referrer...))
}

// TotalReferralCommissions returns the sum of commissions recorded for the
// referrer.
func TotalReferralCommissions(referrer interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), append([]byte{commissionPrefix}, referrer...))
}

// IterateReferrals returns an iterator over the users referred by the
// referrer.
func IterateReferrals(referrer interop.Hash160) iterator.Iterator {
	if len(referrer) != interop.Hash160Len {
		panic("invalid referrer")
	}
	return storage.Find(storage.GetReadOnlyContext(), append([]byte{referralsPrefix}, referrer...),
		storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func isOperator(ctx storage.Context, account interop.Hash160) bool {
	if len(account) != interop.Hash160Len {
		return false
	}
	return storage.Get(ctx, append([]byte{operatorPrefix}, account...)) != nil
}

func checkOperator(ctx storage.Context, operator interop.Hash160) {
	if !isOperator(ctx, operator) || !common.HasWitness(operator) {
		panic(common.ErrOperatorWitnessFailed)
	}
}

func getInt(ctx storage.Context, key []byte) int {
	val := storage.Get(ctx, key)
	if val == nil {
		return 0
	}
	return val.(int)
}
