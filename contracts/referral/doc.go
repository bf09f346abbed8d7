/*
Package referral implements the referral ledger of BULLY farms.

The contract remembers one referrer per user, counts referred users of every
referrer and accumulates commissions paid to referrers. Records are made by
operators, the list of operators is managed by the owner of the contract.

# Contract notifications

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	OperatorUpdated:
	  - name: operator
	    type: Hash160
	  - name: status
	    type: Boolean
	ReferralRecorded:
	  - name: user
	    type: Hash160
	  - name: referrer
	    type: Hash160
	ReferralCommissionRecorded:
	  - name: referrer
	    type: Hash160
	  - name: commission
	    type: Integer
*/
package referral
