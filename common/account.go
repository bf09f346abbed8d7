package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// ErrNullAccount is thrown when an operation receives the null account where
// a real one is expected.
const ErrNullAccount = "null account"

// nullAccount is an all-zero script hash.
const nullAccount = "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"

// IsNullAccount returns true if the address is either malformed or the
// all-zero script hash.
func IsNullAccount(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return true
	}

	return addr.Equals(interop.Hash160(nullAccount))
}

// CheckAccount panics with ErrNullAccount if the address is the null account.
func CheckAccount(addr interop.Hash160) {
	if IsNullAccount(addr) {
		panic(ErrNullAccount)
	}
}
