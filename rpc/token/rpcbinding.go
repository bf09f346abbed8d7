// Package token contains RPC wrappers for BULLY token contract.
package token

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// TokenpolicyTransferSplit is a contract-specific tokenpolicy.TransferSplit type used by its methods.
type TokenpolicyTransferSplit struct {
	Tax *big.Int
	Burn *big.Int
	Liquidity *big.Int
	Net *big.Int
}

// ApprovalEvent represents "Approval" event emitted by the contract.
type ApprovalEvent struct {
	Owner util.Uint160
	Spender util.Uint160
	Amount *big.Int
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	PreviousOwner util.Uint160
	NewOwner util.Uint160
}

// OperatorTransferredEvent represents "OperatorTransferred" event emitted by the contract.
type OperatorTransferredEvent struct {
	PreviousOperator util.Uint160
	NewOperator util.Uint160
}

// TransferTaxRateUpdatedEvent represents "TransferTaxRateUpdated" event emitted by the contract.
type TransferTaxRateUpdatedEvent struct {
	Operator util.Uint160
	PreviousRate *big.Int
	NewRate *big.Int
}

// BurnRateUpdatedEvent represents "BurnRateUpdated" event emitted by the contract.
type BurnRateUpdatedEvent struct {
	Operator util.Uint160
	PreviousRate *big.Int
	NewRate *big.Int
}

// MaxTransferAmountRateUpdatedEvent represents "MaxTransferAmountRateUpdated" event emitted by the contract.
type MaxTransferAmountRateUpdatedEvent struct {
	Operator util.Uint160
	PreviousRate *big.Int
	NewRate *big.Int
}

// ExcludedFromAntiWhaleUpdatedEvent represents "ExcludedFromAntiWhaleUpdated" event emitted by the contract.
type ExcludedFromAntiWhaleUpdatedEvent struct {
	Operator util.Uint160
	Account util.Uint160
	Excluded bool
}

// MinAmountToLiquifyUpdatedEvent represents "MinAmountToLiquifyUpdated" event emitted by the contract.
type MinAmountToLiquifyUpdatedEvent struct {
	Operator util.Uint160
	PreviousAmount *big.Int
	NewAmount *big.Int
}

// SwapAndLiquifyEnabledUpdatedEvent represents "SwapAndLiquifyEnabledUpdated" event emitted by the contract.
type SwapAndLiquifyEnabledUpdatedEvent struct {
	Operator util.Uint160
	Enabled bool
}

// SwapRouterUpdatedEvent represents "SwapRouterUpdated" event emitted by the contract.
type SwapRouterUpdatedEvent struct {
	Operator util.Uint160
	Router util.Uint160
}

// SwapAndLiquifyEvent represents "SwapAndLiquify" event emitted by the contract.
type SwapAndLiquifyEvent struct {
	Router util.Uint160
	Amount *big.Int
}

// SwapAndLiquifyFailedEvent represents "SwapAndLiquifyFailed" event emitted by the contract.
type SwapAndLiquifyFailedEvent struct {
	Router util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// Allowance invokes `allowance` method of contract.
func (c *ContractReader) Allowance(owner util.Uint160, spender util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "allowance", owner, spender))
}

// BurnRate invokes `burnRate` method of contract.
func (c *ContractReader) BurnRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "burnRate"))
}

// Burned invokes `burned` method of contract.
func (c *ContractReader) Burned() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "burned"))
}

// InSwapAndLiquify invokes `inSwapAndLiquify` method of contract.
func (c *ContractReader) InSwapAndLiquify() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "inSwapAndLiquify"))
}

// IsExcludedFromAntiWhale invokes `isExcludedFromAntiWhale` method of contract.
func (c *ContractReader) IsExcludedFromAntiWhale(account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isExcludedFromAntiWhale", account))
}

// MaxTransferAmount invokes `maxTransferAmount` method of contract.
func (c *ContractReader) MaxTransferAmount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxTransferAmount"))
}

// MaxTransferAmountRate invokes `maxTransferAmountRate` method of contract.
func (c *ContractReader) MaxTransferAmountRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "maxTransferAmountRate"))
}

// MinAmountToLiquify invokes `minAmountToLiquify` method of contract.
func (c *ContractReader) MinAmountToLiquify() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minAmountToLiquify"))
}

// Operator invokes `operator` method of contract.
func (c *ContractReader) Operator() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "operator"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Reserve invokes `reserve` method of contract.
func (c *ContractReader) Reserve() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reserve"))
}

// SwapAndLiquifyEnabled invokes `swapAndLiquifyEnabled` method of contract.
func (c *ContractReader) SwapAndLiquifyEnabled() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "swapAndLiquifyEnabled"))
}

// SwapRouter invokes `swapRouter` method of contract.
func (c *ContractReader) SwapRouter() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "swapRouter"))
}

// TransferSplit invokes `transferSplit` method of contract.
func (c *ContractReader) TransferSplit(amount *big.Int) (*TokenpolicyTransferSplit, error) {
	return itemToTokenpolicyTransferSplit(unwrap.Item(c.invoker.Call(c.hash, "transferSplit", amount)))
}

// TransferTaxRate invokes `transferTaxRate` method of contract.
func (c *ContractReader) TransferTaxRate() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "transferTaxRate"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Approve creates a transaction invoking `approve` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Approve(owner util.Uint160, spender util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approve", owner, spender, amount)
}

// ApproveTransaction creates a transaction invoking `approve` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveTransaction(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approve", owner, spender, amount)
}

// ApproveUnsigned creates a transaction invoking `approve` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveUnsigned(owner util.Uint160, spender util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approve", nil, owner, spender, amount)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", to, amount)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", to, amount)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, to, amount)
}

// SetExcludedFromAntiWhale creates a transaction invoking `setExcludedFromAntiWhale` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetExcludedFromAntiWhale(account util.Uint160, excluded bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setExcludedFromAntiWhale", account, excluded)
}

// SetExcludedFromAntiWhaleTransaction creates a transaction invoking `setExcludedFromAntiWhale` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetExcludedFromAntiWhaleTransaction(account util.Uint160, excluded bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setExcludedFromAntiWhale", account, excluded)
}

// SetExcludedFromAntiWhaleUnsigned creates a transaction invoking `setExcludedFromAntiWhale` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetExcludedFromAntiWhaleUnsigned(account util.Uint160, excluded bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setExcludedFromAntiWhale", nil, account, excluded)
}

// TransferFrom creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferFrom(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromTransaction creates a transaction invoking `transferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferFromTransaction(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferFrom", spender, from, to, amount, data)
}

// TransferFromUnsigned creates a transaction invoking `transferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferFromUnsigned(spender util.Uint160, from util.Uint160, to util.Uint160, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferFrom", nil, spender, from, to, amount, data)
}

// TransferOperator creates a transaction invoking `transferOperator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOperator(newOperator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOperator", newOperator)
}

// TransferOperatorTransaction creates a transaction invoking `transferOperator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOperatorTransaction(newOperator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOperator", newOperator)
}

// TransferOperatorUnsigned creates a transaction invoking `transferOperator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOperatorUnsigned(newOperator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOperator", nil, newOperator)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// UpdateBurnRate creates a transaction invoking `updateBurnRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateBurnRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateBurnRate", rate)
}

// UpdateBurnRateTransaction creates a transaction invoking `updateBurnRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateBurnRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateBurnRate", rate)
}

// UpdateBurnRateUnsigned creates a transaction invoking `updateBurnRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateBurnRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateBurnRate", nil, rate)
}

// UpdateMaxTransferAmountRate creates a transaction invoking `updateMaxTransferAmountRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateMaxTransferAmountRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateMaxTransferAmountRate", rate)
}

// UpdateMaxTransferAmountRateTransaction creates a transaction invoking `updateMaxTransferAmountRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateMaxTransferAmountRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateMaxTransferAmountRate", rate)
}

// UpdateMaxTransferAmountRateUnsigned creates a transaction invoking `updateMaxTransferAmountRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateMaxTransferAmountRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateMaxTransferAmountRate", nil, rate)
}

// UpdateMinAmountToLiquify creates a transaction invoking `updateMinAmountToLiquify` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateMinAmountToLiquify(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateMinAmountToLiquify", amount)
}

// UpdateMinAmountToLiquifyTransaction creates a transaction invoking `updateMinAmountToLiquify` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateMinAmountToLiquifyTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateMinAmountToLiquify", amount)
}

// UpdateMinAmountToLiquifyUnsigned creates a transaction invoking `updateMinAmountToLiquify` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateMinAmountToLiquifyUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateMinAmountToLiquify", nil, amount)
}

// UpdateSwapAndLiquifyEnabled creates a transaction invoking `updateSwapAndLiquifyEnabled` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateSwapAndLiquifyEnabled(enabled bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateSwapAndLiquifyEnabled", enabled)
}

// UpdateSwapAndLiquifyEnabledTransaction creates a transaction invoking `updateSwapAndLiquifyEnabled` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateSwapAndLiquifyEnabledTransaction(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateSwapAndLiquifyEnabled", enabled)
}

// UpdateSwapAndLiquifyEnabledUnsigned creates a transaction invoking `updateSwapAndLiquifyEnabled` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateSwapAndLiquifyEnabledUnsigned(enabled bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateSwapAndLiquifyEnabled", nil, enabled)
}

// UpdateSwapRouter creates a transaction invoking `updateSwapRouter` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateSwapRouter(router util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateSwapRouter", router)
}

// UpdateSwapRouterTransaction creates a transaction invoking `updateSwapRouter` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateSwapRouterTransaction(router util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateSwapRouter", router)
}

// UpdateSwapRouterUnsigned creates a transaction invoking `updateSwapRouter` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateSwapRouterUnsigned(router util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateSwapRouter", nil, router)
}

// UpdateTransferTaxRate creates a transaction invoking `updateTransferTaxRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateTransferTaxRate(rate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateTransferTaxRate", rate)
}

// UpdateTransferTaxRateTransaction creates a transaction invoking `updateTransferTaxRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransferTaxRateTransaction(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateTransferTaxRate", rate)
}

// UpdateTransferTaxRateUnsigned creates a transaction invoking `updateTransferTaxRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateTransferTaxRateUnsigned(rate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateTransferTaxRate", nil, rate)
}

// itemToTokenpolicyTransferSplit converts stack item into *TokenpolicyTransferSplit.
func itemToTokenpolicyTransferSplit(item stackitem.Item, err error) (*TokenpolicyTransferSplit, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenpolicyTransferSplit)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenpolicyTransferSplit from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenpolicyTransferSplit) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Tax, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tax: %w", err)
	}

	index++
	res.Burn, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Burn: %w", err)
	}

	index++
	res.Liquidity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Liquidity: %w", err)
	}

	index++
	res.Net, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Net: %w", err)
	}

	return nil
}

// ApprovalEventsFromApplicationLog retrieves a set of all emitted events
// with "Approval" name from the provided [result.ApplicationLog].
func ApprovalEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Approval" {
				continue
			}
			event := new(ApprovalEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Spender, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Spender: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PreviousOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOwner: %w", err)
	}

	index++
	e.NewOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}

// OperatorTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OperatorTransferred" name from the provided [result.ApplicationLog].
func OperatorTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OperatorTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OperatorTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OperatorTransferred" {
				continue
			}
			event := new(OperatorTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OperatorTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OperatorTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OperatorTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.PreviousOperator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PreviousOperator: %w", err)
	}

	index++
	e.NewOperator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOperator: %w", err)
	}

	return nil
}

// TransferTaxRateUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferTaxRateUpdated" name from the provided [result.ApplicationLog].
func TransferTaxRateUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferTaxRateUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferTaxRateUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferTaxRateUpdated" {
				continue
			}
			event := new(TransferTaxRateUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferTaxRateUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferTaxRateUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *TransferTaxRateUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.PreviousRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PreviousRate: %w", err)
	}

	index++
	e.NewRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewRate: %w", err)
	}

	return nil
}

// BurnRateUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "BurnRateUpdated" name from the provided [result.ApplicationLog].
func BurnRateUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnRateUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnRateUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BurnRateUpdated" {
				continue
			}
			event := new(BurnRateUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnRateUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnRateUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *BurnRateUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.PreviousRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PreviousRate: %w", err)
	}

	index++
	e.NewRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewRate: %w", err)
	}

	return nil
}

// MaxTransferAmountRateUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "MaxTransferAmountRateUpdated" name from the provided [result.ApplicationLog].
func MaxTransferAmountRateUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MaxTransferAmountRateUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MaxTransferAmountRateUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MaxTransferAmountRateUpdated" {
				continue
			}
			event := new(MaxTransferAmountRateUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MaxTransferAmountRateUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MaxTransferAmountRateUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *MaxTransferAmountRateUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.PreviousRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PreviousRate: %w", err)
	}

	index++
	e.NewRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewRate: %w", err)
	}

	return nil
}

// ExcludedFromAntiWhaleUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ExcludedFromAntiWhaleUpdated" name from the provided [result.ApplicationLog].
func ExcludedFromAntiWhaleUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ExcludedFromAntiWhaleUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ExcludedFromAntiWhaleUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ExcludedFromAntiWhaleUpdated" {
				continue
			}
			event := new(ExcludedFromAntiWhaleUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ExcludedFromAntiWhaleUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ExcludedFromAntiWhaleUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ExcludedFromAntiWhaleUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Excluded, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Excluded: %w", err)
	}

	return nil
}

// MinAmountToLiquifyUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "MinAmountToLiquifyUpdated" name from the provided [result.ApplicationLog].
func MinAmountToLiquifyUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MinAmountToLiquifyUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MinAmountToLiquifyUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MinAmountToLiquifyUpdated" {
				continue
			}
			event := new(MinAmountToLiquifyUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MinAmountToLiquifyUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MinAmountToLiquifyUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *MinAmountToLiquifyUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.PreviousAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PreviousAmount: %w", err)
	}

	index++
	e.NewAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewAmount: %w", err)
	}

	return nil
}

// SwapAndLiquifyEnabledUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SwapAndLiquifyEnabledUpdated" name from the provided [result.ApplicationLog].
func SwapAndLiquifyEnabledUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SwapAndLiquifyEnabledUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SwapAndLiquifyEnabledUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SwapAndLiquifyEnabledUpdated" {
				continue
			}
			event := new(SwapAndLiquifyEnabledUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SwapAndLiquifyEnabledUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SwapAndLiquifyEnabledUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *SwapAndLiquifyEnabledUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Enabled, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Enabled: %w", err)
	}

	return nil
}

// SwapRouterUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SwapRouterUpdated" name from the provided [result.ApplicationLog].
func SwapRouterUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SwapRouterUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SwapRouterUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SwapRouterUpdated" {
				continue
			}
			event := new(SwapRouterUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SwapRouterUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SwapRouterUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *SwapRouterUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Operator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Router, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Router: %w", err)
	}

	return nil
}

// SwapAndLiquifyEventsFromApplicationLog retrieves a set of all emitted events
// with "SwapAndLiquify" name from the provided [result.ApplicationLog].
func SwapAndLiquifyEventsFromApplicationLog(log *result.ApplicationLog) ([]*SwapAndLiquifyEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SwapAndLiquifyEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SwapAndLiquify" {
				continue
			}
			event := new(SwapAndLiquifyEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SwapAndLiquifyEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SwapAndLiquifyEvent or
// returns an error if it's not possible to do to so.
func (e *SwapAndLiquifyEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Router, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Router: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// SwapAndLiquifyFailedEventsFromApplicationLog retrieves a set of all emitted events
// with "SwapAndLiquifyFailed" name from the provided [result.ApplicationLog].
func SwapAndLiquifyFailedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SwapAndLiquifyFailedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SwapAndLiquifyFailedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SwapAndLiquifyFailed" {
				continue
			}
			event := new(SwapAndLiquifyFailedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SwapAndLiquifyFailedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SwapAndLiquifyFailedEvent or
// returns an error if it's not possible to do to so.
func (e *SwapAndLiquifyFailedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Router, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Router: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
