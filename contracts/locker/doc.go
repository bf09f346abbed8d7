/*
Package locker implements a vault contract for NEP-17 tokens.

Anyone can transfer tokens to the locker, only its owner can take them out.
Unlock releases the whole balance of a token at once.

# Contract notifications

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	Unlocked:
	  - name: token
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package locker
