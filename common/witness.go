package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by the contract owner but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrOperatorWitnessFailed appears when the method must be called
	// by the contract operator but was not.
	ErrOperatorWitnessFailed = "operator witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// on behalf of a certain account but was not.
	ErrWitnessFailed = "witness check failed"
)

// HasWitness checks whether the account has witnessed the current invocation.
// Contract accounts are considered witnessed when they call the method
// directly.
func HasWitness(account interop.Hash160) bool {
	if len(account) != interop.Hash160Len {
		return false
	}

	if runtime.CheckWitness(account) {
		return true
	}

	return runtime.GetCallingScriptHash().Equals(account)
}

// CheckWitness checks witness of the passed account.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(account interop.Hash160) {
	checkWitnessWithPanic(account, ErrWitnessFailed)
}

func checkWitnessWithPanic(account interop.Hash160, panicMsg string) {
	if !HasWitness(account) {
		panic(panicMsg)
	}
}
