package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/bullyswap/bully-contract/rpc/referral"
	"github.com/bullyswap/bully-contract/rpc/token"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// deployer sends deployment transactions on behalf of the local account.
type deployer struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	sender     util.Uint160
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

// deployContract deploys the contract unless it is already present at the
// address derived from the local account and returns this address.
func (d deployer) deployContract(ctx context.Context, name string, prm CommonDeployPrm) (util.Uint160, error) {
	addr := state.CreateContractHash(d.sender, prm.NEF.Checksum, prm.Manifest.Name)
	l := d.logger.With(zap.String("contract", name), zap.Stringer("address", addr))

	_, err := d.blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return addr, nil
	} else if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get state of the contract by address: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return addr, err
	}

	l.Info("contract is missing on the chain, sending deploy transaction...")

	txHash, vub, err := management.New(d.actor).Deploy(&prm.NEF, &prm.Manifest, nil)
	if err != nil {
		return addr, fmt.Errorf("send deploy transaction: %w", err)
	}

	err = d.await(txHash, vub)
	if err != nil {
		return addr, fmt.Errorf("deploy transaction %s: %w", txHash.StringLE(), err)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", txHash))

	return addr, nil
}

// await waits for the transaction to be accepted and checks its execution
// result.
func (d deployer) await(txHash util.Uint256, vub uint32) error {
	res, err := d.actor.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("await transaction: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction failed with state %s: %s", res.VMState, res.FaultException)
	}

	return nil
}

func (d deployer) syncTokenSettings(ctx context.Context, addr util.Uint160, s TokenSettings) error {
	err := s.Validate()
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	cur, err := readTokenState(d.actor, addr, s.ExcludedFromAntiWhale)
	if err != nil {
		return fmt.Errorf("read current token settings: %w", err)
	}

	calls := planTokenUpdates(cur, s)
	if len(calls) == 0 {
		d.logger.Info("token settings are up-to-date")
		return nil
	}

	for i := range calls {
		if err = ctx.Err(); err != nil {
			return err
		}

		d.logger.Info("updating token setting...",
			zap.String("method", calls[i].method), zap.Any("args", calls[i].args))

		txHash, vub, err := d.actor.SendCall(addr, calls[i].method, calls[i].args...)
		if err != nil {
			return fmt.Errorf("send '%s' transaction: %w", calls[i].method, err)
		}

		err = d.await(txHash, vub)
		if err != nil {
			return fmt.Errorf("'%s' transaction %s: %w", calls[i].method, txHash.StringLE(), err)
		}
	}

	d.logger.Info("token settings successfully updated", zap.Int("calls", len(calls)))

	return nil
}

func readTokenState(inv token.Invoker, addr util.Uint160, accounts []util.Uint160) (tokenState, error) {
	var (
		res    tokenState
		err    error
		reader = token.NewReader(inv, addr)
	)

	for _, v := range []struct {
		name string
		get  func() (*big.Int, error)
		dst  *int
	}{
		{"transfer tax rate", reader.TransferTaxRate, &res.transferTaxRate},
		{"burn rate", reader.BurnRate, &res.burnRate},
		{"max transfer amount rate", reader.MaxTransferAmountRate, &res.maxTransferAmountRate},
		{"min amount to liquify", reader.MinAmountToLiquify, &res.minAmountToLiquify},
	} {
		n, err := v.get()
		if err != nil {
			return res, fmt.Errorf("get %s: %w", v.name, err)
		}

		if !n.IsInt64() {
			return res, fmt.Errorf("%s is out of range: %s", v.name, n)
		}

		*v.dst = int(n.Int64())
	}

	res.swapAndLiquifyEnabled, err = reader.SwapAndLiquifyEnabled()
	if err != nil {
		return res, fmt.Errorf("get swap and liquify flag: %w", err)
	}

	res.operator, err = reader.Operator()
	if err != nil {
		return res, fmt.Errorf("get operator: %w", err)
	}

	// swapRouter returns Null until the router is set, it can't be unwrapped
	// as Hash160 by the reader
	item, err := unwrap.Item(inv.Call(addr, "swapRouter"))
	if err != nil {
		return res, fmt.Errorf("get swap router: %w", err)
	}

	if _, ok := item.(stackitem.Null); !ok {
		b, err := item.TryBytes()
		if err != nil {
			return res, fmt.Errorf("invalid swap router item: %w", err)
		}

		res.swapRouter, err = util.Uint160DecodeBytesBE(b)
		if err != nil {
			return res, fmt.Errorf("invalid swap router: %w", err)
		}
	}

	res.excluded = make(map[util.Uint160]bool, len(accounts))
	for i := range accounts {
		res.excluded[accounts[i]], err = reader.IsExcludedFromAntiWhale(accounts[i])
		if err != nil {
			return res, fmt.Errorf("check anti-whale exclusion of %s: %w", accounts[i].StringLE(), err)
		}
	}

	return res, nil
}

func (d deployer) syncReferralOperators(ctx context.Context, addr util.Uint160, operators []util.Uint160) error {
	ref := referral.New(d.actor, addr)

	for i := range operators {
		if operators[i].Equals(util.Uint160{}) {
			return errors.New("zero referral operator")
		}

		l := d.logger.With(zap.Stringer("operator", operators[i]))

		ok, err := ref.IsOperator(operators[i])
		if err != nil {
			return fmt.Errorf("check operator %s: %w", operators[i].StringLE(), err)
		} else if ok {
			l.Info("referral operator is already registered, skip")
			continue
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		txHash, vub, err := ref.UpdateOperator(operators[i], true)
		if err != nil {
			return fmt.Errorf("send operator registration transaction: %w", err)
		}

		err = d.await(txHash, vub)
		if err != nil {
			return fmt.Errorf("operator registration transaction %s: %w", txHash.StringLE(), err)
		}

		l.Info("referral operator successfully registered")
	}

	return nil
}
