// Package router implements a swap router stub used in token tests. It pulls
// the offered tokens and can be configured to fail or to send a part of them
// back to the token contract.
package router

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	failKey     = "f"
	giveBackKey = "b"
	callsKey    = "c"
	lastKey     = "l"
)

type Call struct {
	Token  interop.Hash160
	Amount int
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {}

func SetFail(fail bool) {
	ctx := storage.GetContext()
	if fail {
		storage.Put(ctx, failKey, true)
	} else {
		storage.Delete(ctx, failKey)
	}
}

func SetGiveBack(amount int) {
	storage.Put(storage.GetContext(), giveBackKey, amount)
}

func SwapAndLiquify(amount int) {
	ctx := storage.GetContext()
	if storage.Get(ctx, failKey) != nil {
		panic("router failure")
	}

	token := runtime.GetCallingScriptHash()
	self := runtime.GetExecutingScriptHash()

	storage.Put(ctx, callsKey, Calls()+1)
	storage.Put(ctx, lastKey, std.Serialize(Call{Token: token, Amount: amount}))

	ok := contract.Call(token, "transferFrom", contract.All, self, token, self, amount, nil).(bool)
	if !ok {
		panic("can't pull tokens")
	}

	back := storage.Get(ctx, giveBackKey)
	if back != nil && back.(int) > 0 {
		contract.Call(token, "transfer", contract.All, self, token, back.(int), nil)
	}
}

func Calls() int {
	val := storage.Get(storage.GetReadOnlyContext(), callsKey)
	if val == nil {
		return 0
	}
	return val.(int)
}

func Last() Call {
	val := storage.Get(storage.GetReadOnlyContext(), lastKey)
	if val == nil {
		return Call{}
	}
	return std.Deserialize(val.([]byte)).(Call)
}
