/*
Package token implements BULLY token contract, a NEP-17 token with a transfer
tax and an anti-whale cap.

Every transfer is taxed with TransferTaxRate basis points of the amount. The
BurnRate percents of the tax are credited to the burn sink
(tokenconst.BurnAddress), the rest is collected on the contract's own balance
(the reserve). Transfers to the burn sink and transfers made while the reserve
is being converted are not taxed. A single transfer can not move more than
MaxTransferAmount unless the sender or the recipient is excluded from the
anti-whale cap.

Once the reserve reaches MinAmountToLiquify and swap and liquify is enabled,
the next transfer hands the reserve over to the swap router. The router is
approved to spend the reserve and is called with swapAndLiquify(amount) under
a guard that prevents nested conversions. A failed router call does not fail
the transfer.

The owner mints tokens and transfers ownership. The operator configures the
rates, the exclusion list and the swap and liquify parameters, only the
operator can pass its role to another account.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. A taxed
transfer produces up to three of them: to the recipient, to the burn sink and
to the token contract.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It is produced when the owner sets the allowance of the
spender.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

OwnershipTransferred and OperatorTransferred notifications are produced on
role transfers.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	OperatorTransferred:
	  - name: previousOperator
	    type: Hash160
	  - name: newOperator
	    type: Hash160

Configuration notifications are produced by the operator setters. Rate and
threshold updates carry previous and new values.

	TransferTaxRateUpdated:
	  - name: operator
	    type: Hash160
	  - name: previousRate
	    type: Integer
	  - name: newRate
	    type: Integer
	BurnRateUpdated:
	  - name: operator
	    type: Hash160
	  - name: previousRate
	    type: Integer
	  - name: newRate
	    type: Integer
	MaxTransferAmountRateUpdated:
	  - name: operator
	    type: Hash160
	  - name: previousRate
	    type: Integer
	  - name: newRate
	    type: Integer
	ExcludedFromAntiWhaleUpdated:
	  - name: operator
	    type: Hash160
	  - name: account
	    type: Hash160
	  - name: excluded
	    type: Boolean
	MinAmountToLiquifyUpdated:
	  - name: operator
	    type: Hash160
	  - name: previousAmount
	    type: Integer
	  - name: newAmount
	    type: Integer
	SwapAndLiquifyEnabledUpdated:
	  - name: operator
	    type: Hash160
	  - name: enabled
	    type: Boolean
	SwapRouterUpdated:
	  - name: operator
	    type: Hash160
	  - name: router
	    type: Hash160

SwapAndLiquify notification is produced when the router has processed the
reserve, SwapAndLiquifyFailed when the router call has thrown an exception.

	SwapAndLiquify:
	  - name: router
	    type: Hash160
	  - name: amount
	    type: Integer
	SwapAndLiquifyFailed:
	  - name: router
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
