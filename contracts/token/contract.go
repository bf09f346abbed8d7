package token

import (
	"github.com/bullyswap/bully-contract/common"
	"github.com/bullyswap/bully-contract/contracts/token/tokenconst"
	"github.com/bullyswap/bully-contract/contracts/token/tokenpolicy"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	accountPrefix   = 'a'
	allowancePrefix = 'l'
	exemptPrefix    = 'e'

	ownerKey              = "o"
	operatorKey           = "p"
	supplyKey             = "s"
	taxRateKey            = "t"
	burnRateKey           = "b"
	maxTransferRateKey    = "m"
	minAmountToLiquifyKey = "q"
	swapEnabledKey        = "w"
	routerKey             = "r"
	inSwapKey             = "g"
)

var (
	ownerRole    common.Role
	operatorRole common.Role
)

func init() {
	ownerRole = common.Role{Key: ownerKey, Err: common.ErrOwnerWitnessFailed}
	operatorRole = common.Role{Key: operatorKey, Err: common.ErrOperatorWitnessFailed}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	owner := runtime.GetScriptContainer().Sender
	operator := owner
	if data != nil {
		args := data.([]any)
		if len(args) > 0 && args[0] != nil {
			owner = args[0].(interop.Hash160)
		}
		if len(args) > 1 && args[1] != nil {
			operator = args[1].(interop.Hash160)
		}
	}

	common.InitRole(ctx, ownerRole, owner)
	common.InitRole(ctx, operatorRole, operator)

	storage.Put(ctx, taxRateKey, tokenconst.DefaultTransferTaxRate)
	storage.Put(ctx, burnRateKey, tokenconst.DefaultBurnRate)
	storage.Put(ctx, maxTransferRateKey, tokenconst.DefaultMaxTransferAmountRate)
	storage.Put(ctx, minAmountToLiquifyKey, tokenconst.DefaultMinAmountToLiquify)

	runtime.Log("token contract initialized")
}

// Symbol is a NEP-17 standard method that returns BULLY token symbol.
func Symbol() string {
	return tokenconst.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of BULLY
// balances.
func Decimals() int {
	return tokenconst.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of minted
// tokens. Burned tokens stay in the supply on the burn sink balance.
func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns the balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidAccount)
	}
	return balanceOf(storage.GetReadOnlyContext(), account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only on behalf of the sender.
//
// A transfer that is not exempt from the anti-whale cap and exceeds
// MaxTransferAmount fails. Unless the tax is skipped, the recipient gets
// the net amount, the burned part of the tax goes to the burn sink and the
// rest stays on the contract balance. Every non-zero credit produces a
// Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if !common.HasWitness(from) {
		runtime.Log("sender witness check failed")
		return false
	}

	return transfer(ctx, from, to, amount, data)
}

// TransferFrom transfers tokens from one account to another on behalf of the
// spender previously approved by the sender. The allowance is decreased by
// the full amount regardless of the tax. It returns false if the spender
// has not witnessed the call, or the allowance or the sender balance is not
// enough.
func TransferFrom(spender, from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if !common.HasWitness(spender) {
		runtime.Log("spender witness check failed")
		return false
	}

	checkAmount(amount)
	checkAddress(from)

	if balanceOf(ctx, from) < amount {
		runtime.Log("not enough assets")
		return false
	}

	allowed := allowanceOf(ctx, from, spender)
	if allowed < amount {
		runtime.Log("not enough allowance")
		return false
	}
	setAllowance(ctx, from, spender, allowed-amount)

	return transfer(ctx, from, to, amount, data)
}

// Approve sets the amount of tokens the spender can transfer from the owner
// account with TransferFrom. It can be invoked only on behalf of the owner.
//
// It produces Approval notification.
func Approve(owner, spender interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkAmount(amount)
	checkAddress(spender)
	common.CheckWitness(owner)

	setAllowance(ctx, owner, spender, amount)
	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount of tokens the spender can still transfer from
// the owner account.
func Allowance(owner, spender interop.Hash160) int {
	return allowanceOf(storage.GetReadOnlyContext(), owner, spender)
}

// Mint issues new tokens to the specified account increasing the total
// supply. It can be invoked only by the owner.
//
// It produces Transfer notification with null sender.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	common.CheckRoleWitness(ctx, ownerRole)
	checkAmount(amount)
	checkAddress(to)

	storage.Put(ctx, supplyKey, getInt(ctx, supplyKey)+amount)
	addBalance(ctx, to, amount)

	runtime.Log("tokens were minted")
	postTransfer(nil, to, amount, nil)
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

// Operator returns the current operator of the contract.
func Operator() interop.Hash160 {
	return common.RoleHolder(storage.GetReadOnlyContext(), operatorRole)
}

// TransferOperator passes the operator role to the new account. It can be
// invoked only by the current operator, the owner can not replace it.
func TransferOperator(newOperator interop.Hash160) {
	ctx := storage.GetContext()

	prev := common.TransferRole(ctx, operatorRole, newOperator)
	runtime.Notify("OperatorTransferred", prev, newOperator)
}

// TransferTaxRate returns the transfer tax rate in basis points.
func TransferTaxRate() int {
	return getInt(storage.GetReadOnlyContext(), taxRateKey)
}

// UpdateTransferTaxRate sets the transfer tax rate in basis points. The rate
// must not exceed tokenconst.MaxTransferTaxRate. It can be invoked only by
// the operator.
func UpdateTransferTaxRate(rate int) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)

	if !tokenpolicy.ValidTaxRate(rate) {
		panic(tokenconst.ErrInvalidTaxRate)
	}

	prev := getInt(ctx, taxRateKey)
	storage.Put(ctx, taxRateKey, rate)
	runtime.Notify("TransferTaxRateUpdated", operator, prev, rate)
}

// BurnRate returns the burned share of the transfer tax in percents.
func BurnRate() int {
	return getInt(storage.GetReadOnlyContext(), burnRateKey)
}

// UpdateBurnRate sets the burned share of the transfer tax in percents. The
// rate must not exceed tokenconst.MaxBurnRate. It can be invoked only by the
// operator.
func UpdateBurnRate(rate int) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)

	if !tokenpolicy.ValidBurnRate(rate) {
		panic(tokenconst.ErrInvalidBurnRate)
	}

	prev := getInt(ctx, burnRateKey)
	storage.Put(ctx, burnRateKey, rate)
	runtime.Notify("BurnRateUpdated", operator, prev, rate)
}

// MaxTransferAmountRate returns the anti-whale cap rate in basis points of
// the total supply.
func MaxTransferAmountRate() int {
	return getInt(storage.GetReadOnlyContext(), maxTransferRateKey)
}

// UpdateMaxTransferAmountRate sets the anti-whale cap rate in basis points
// of the total supply. The rate must be within
// [tokenconst.MinMaxTransferAmountRate, tokenconst.MaxMaxTransferAmountRate].
// It can be invoked only by the operator.
func UpdateMaxTransferAmountRate(rate int) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)

	if !tokenpolicy.ValidMaxTransferAmountRate(rate) {
		panic(tokenconst.ErrInvalidMaxTransferAmountRate)
	}

	prev := getInt(ctx, maxTransferRateKey)
	storage.Put(ctx, maxTransferRateKey, rate)
	runtime.Notify("MaxTransferAmountRateUpdated", operator, prev, rate)
}

// MaxTransferAmount returns the largest amount a non-exempt transfer can
// move. It is derived from the current total supply.
func MaxTransferAmount() int {
	ctx := storage.GetReadOnlyContext()
	return tokenpolicy.MaxTransferAmount(getInt(ctx, supplyKey), getInt(ctx, maxTransferRateKey))
}

// IsExcludedFromAntiWhale checks whether transfers from or to the account
// bypass the anti-whale cap. Besides the accounts excluded explicitly, the
// owner, the operator, the token contract, the burn sink and the null account
// are always excluded.
func IsExcludedFromAntiWhale(account interop.Hash160) bool {
	return isExempt(storage.GetReadOnlyContext(), account)
}

// SetExcludedFromAntiWhale adds the account to or removes it from the
// explicit anti-whale exclusion list. It can be invoked only by the
// operator.
func SetExcludedFromAntiWhale(account interop.Hash160, excluded bool) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)
	checkAddress(account)

	key := append([]byte{exemptPrefix}, account...)
	if excluded {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}

	runtime.Notify("ExcludedFromAntiWhaleUpdated", operator, account, excluded)
}

// MinAmountToLiquify returns the contract balance that triggers swap and
// liquify.
func MinAmountToLiquify() int {
	return getInt(storage.GetReadOnlyContext(), minAmountToLiquifyKey)
}

// UpdateMinAmountToLiquify sets the contract balance that triggers swap and
// liquify. It can be invoked only by the operator.
func UpdateMinAmountToLiquify(amount int) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)
	checkAmount(amount)

	prev := getInt(ctx, minAmountToLiquifyKey)
	storage.Put(ctx, minAmountToLiquifyKey, amount)
	runtime.Notify("MinAmountToLiquifyUpdated", operator, prev, amount)
}

// SwapAndLiquifyEnabled returns true if the contract converts its balance
// once it reaches MinAmountToLiquify.
func SwapAndLiquifyEnabled() bool {
	return storage.Get(storage.GetReadOnlyContext(), swapEnabledKey) != nil
}

// UpdateSwapAndLiquifyEnabled switches swap and liquify on or off. It can be
// invoked only by the operator.
func UpdateSwapAndLiquifyEnabled(enabled bool) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)

	if enabled {
		storage.Put(ctx, swapEnabledKey, true)
	} else {
		storage.Delete(ctx, swapEnabledKey)
	}

	runtime.Notify("SwapAndLiquifyEnabledUpdated", operator, enabled)
}

// SwapRouter returns the router used for swap and liquify or nil if it is
// not set.
func SwapRouter() interop.Hash160 {
	r := storage.Get(storage.GetReadOnlyContext(), routerKey)
	if r == nil {
		return nil
	}
	return r.(interop.Hash160)
}

// UpdateSwapRouter sets the router used for swap and liquify. The router
// must be a deployed contract with swapAndLiquify(amount) method. It can be
// invoked only by the operator and not during the router call.
func UpdateSwapRouter(router interop.Hash160) {
	ctx := storage.GetContext()
	operator := checkOperator(ctx)
	common.CheckAccount(router)

	if management.GetContract(router) == nil {
		panic(tokenconst.ErrRouterNotContract)
	}
	if storage.Get(ctx, inSwapKey) != nil {
		panic(tokenconst.ErrSwapInProgress)
	}

	storage.Put(ctx, routerKey, router)
	runtime.Notify("SwapRouterUpdated", operator, router)
}

// InSwapAndLiquify returns true while the router call is in progress.
func InSwapAndLiquify() bool {
	return storage.Get(storage.GetReadOnlyContext(), inSwapKey) != nil
}

// Reserve returns the contract's own balance collected from transfer taxes.
func Reserve() int {
	return balanceOf(storage.GetReadOnlyContext(), runtime.GetExecutingScriptHash())
}

// Burned returns the balance of the burn sink.
func Burned() int {
	return balanceOf(storage.GetReadOnlyContext(), interop.Hash160(tokenconst.BurnAddress))
}

// TransferSplit returns the distribution of a taxed transfer of the amount
// under the current rates: tax, burned part, liquidity part and net amount.
func TransferSplit(amount int) tokenpolicy.TransferSplit {
	ctx := storage.GetReadOnlyContext()
	checkAmount(amount)
	return tokenpolicy.Split(amount, getInt(ctx, taxRateKey), getInt(ctx, burnRateKey))
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	checkAmount(amount)
	checkAddress(from)
	checkAddress(to)

	fromBalance := balanceOf(ctx, from)
	if fromBalance < amount {
		runtime.Log("not enough assets")
		return false
	}

	if !isExempt(ctx, from) && !isExempt(ctx, to) {
		supply := getInt(ctx, supplyKey)
		if !tokenpolicy.WithinCap(amount, supply, getInt(ctx, maxTransferRateKey)) {
			panic(tokenconst.ErrCapExceeded)
		}
	}

	self := runtime.GetExecutingScriptHash()
	burnSink := interop.Hash160(tokenconst.BurnAddress)

	split := tokenpolicy.TransferSplit{Net: amount}
	taxRate := getInt(ctx, taxRateKey)
	if taxRate != 0 && !to.Equals(burnSink) && storage.Get(ctx, inSwapKey) == nil {
		split = tokenpolicy.Split(amount, taxRate, getInt(ctx, burnRateKey))
	}

	addBalance(ctx, from, -amount)
	addBalance(ctx, to, split.Net)
	addBalance(ctx, burnSink, split.Burn)
	addBalance(ctx, self, split.Liquidity)

	postTransfer(from, to, split.Net, data)
	if split.Burn > 0 {
		notifyTransfer(from, burnSink, split.Burn)
	}
	if split.Liquidity > 0 {
		notifyTransfer(from, self, split.Liquidity)
	}

	if !from.Equals(self) {
		maybeSwapAndLiquify(ctx, self)
	}

	return true
}

// postTransfer emits Transfer notification and calls onNEP17Payment of the
// recipient if it is a contract other than the token itself.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	notifyTransfer(from, to, amount)

	if to.Equals(runtime.GetExecutingScriptHash()) {
		return
	}
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func notifyTransfer(from, to interop.Hash160, amount int) {
	runtime.Notify("Transfer", from, to, amount)
}

func maybeSwapAndLiquify(ctx storage.Context, self interop.Hash160) {
	if storage.Get(ctx, swapEnabledKey) == nil || storage.Get(ctx, inSwapKey) != nil {
		return
	}

	r := storage.Get(ctx, routerKey)
	if r == nil {
		return
	}

	reserve := balanceOf(ctx, self)
	if reserve == 0 || reserve < getInt(ctx, minAmountToLiquifyKey) {
		return
	}

	swapAndLiquify(ctx, self, r.(interop.Hash160), reserve)
}

// swapAndLiquify hands the whole reserve over to the router. The router pulls
// the tokens with TransferFrom within the allowance set here. Router failure
// is reported with SwapAndLiquifyFailed notification and does not fail the
// transfer. The guard and the allowance are always reset.
func swapAndLiquify(ctx storage.Context, self, router interop.Hash160, amount int) {
	storage.Put(ctx, inSwapKey, amount)
	setAllowance(ctx, self, router, amount)

	defer finishSwapAndLiquify()

	contract.Call(router, "swapAndLiquify", contract.All, amount)
}

// finishSwapAndLiquify is deferred by swapAndLiquify. Deferred code can't
// access the arguments of the enclosing function, so the router and the
// swapped amount are read from the storage.
func finishSwapAndLiquify() {
	r := recover()

	ctx := storage.GetContext()
	router := storage.Get(ctx, routerKey).(interop.Hash160)
	amount := getInt(ctx, inSwapKey)

	setAllowance(ctx, runtime.GetExecutingScriptHash(), router, 0)
	storage.Delete(ctx, inSwapKey)

	if r != nil {
		runtime.Log("swap and liquify failed")
		runtime.Notify("SwapAndLiquifyFailed", router, amount)
		return
	}
	runtime.Notify("SwapAndLiquify", router, amount)
}

func isExempt(ctx storage.Context, account interop.Hash160) bool {
	if common.IsNullAccount(account) ||
		account.Equals(interop.Hash160(tokenconst.BurnAddress)) ||
		account.Equals(runtime.GetExecutingScriptHash()) {
		return true
	}

	if common.IsRoleHolder(ctx, ownerRole, account) || common.IsRoleHolder(ctx, operatorRole, account) {
		return true
	}

	return storage.Get(ctx, append([]byte{exemptPrefix}, account...)) != nil
}

// checkOperator panics unless the operator has witnessed the call and
// returns the operator.
func checkOperator(ctx storage.Context) interop.Hash160 {
	common.CheckRoleWitness(ctx, operatorRole)
	return common.RoleHolder(ctx, operatorRole)
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	return getInt(ctx, append([]byte{accountPrefix}, account...))
}

// addBalance changes the account balance by delta. Zero balances are
// removed from the storage.
func addBalance(ctx storage.Context, account interop.Hash160, delta int) {
	if delta == 0 {
		return
	}

	key := append([]byte{accountPrefix}, account...)
	balance := getInt(ctx, key) + delta
	if balance < 0 {
		panic(tokenconst.ErrInsufficientBalance)
	}

	if balance == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance)
	}
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	return append(append([]byte{allowancePrefix}, owner...), spender...)
}

func allowanceOf(ctx storage.Context, owner, spender interop.Hash160) int {
	return getInt(ctx, allowanceKey(owner, spender))
}

func setAllowance(ctx storage.Context, owner, spender interop.Hash160, amount int) {
	key := allowanceKey(owner, spender)
	if amount == 0 {
		storage.Delete(ctx, key)
		return
	}
	storage.Put(ctx, key, amount)
}

func getInt(ctx storage.Context, key any) int {
	val := storage.Get(ctx, key)
	if val == nil {
		return 0
	}
	return val.(int)
}

func checkAmount(amount int) {
	if amount < 0 {
		panic(tokenconst.ErrNegativeAmount)
	}
}

// checkAddress panics on malformed and null accounts.
func checkAddress(addr interop.Hash160) {
	if common.IsNullAccount(addr) {
		panic(tokenconst.ErrInvalidAccount)
	}
}
