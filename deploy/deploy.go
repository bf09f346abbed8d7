// Package deploy implements programmatic deployment of the BULLY contracts.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the BULLY contracts deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetApplicationLog returns execution results of the transaction. It is used
	// to await transaction acceptance.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// TokenContractPrm groups deployment parameters of the BULLY token contract.
type TokenContractPrm struct {
	Common   CommonDeployPrm
	Settings TokenSettings
}

// ReferralContractPrm groups deployment parameters of the referral contract.
type ReferralContractPrm struct {
	Common CommonDeployPrm

	// Accounts allowed to record referrals and commissions.
	Operators []util.Uint160
}

// LockerContractPrm groups deployment parameters of the locker contract.
type LockerContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the owner and the operator of all deployed contracts.
	LocalAccount *wallet.Account

	Token    TokenContractPrm
	Referral ReferralContractPrm
	Locker   LockerContractPrm
}

// Result contains addresses of the deployed contracts.
type Result struct {
	Token    util.Uint160
	Referral util.Uint160
	Locker   util.Uint160
}

// Deploy puts BULLY contracts into the blockchain referenced by
// Prm.Blockchain and brings their settings to the configured state.
//
// Deploy is idempotent: contracts already deployed by the local account are
// not redeployed, and only settings differing from the on-chain values are
// sent. Summary of stages:
//  1. token contract deployment
//  2. token settings synchronization
//  3. referral contract deployment and operator registration
//  4. locker contract deployment
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	if prm.LocalAccount == nil {
		return res, errors.New("missing local account")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	d := deployer{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		sender:     prm.LocalAccount.ScriptHash(),
	}

	prm.Logger.Info("initializing token contract on the chain...")

	res.Token, err = d.deployContract(ctx, "token", prm.Token.Common)
	if err != nil {
		return res, fmt.Errorf("init token contract on the chain: %w", err)
	}

	prm.Logger.Info("token contract successfully initialized on the chain", zap.Stringer("address", res.Token))

	err = d.syncTokenSettings(ctx, res.Token, prm.Token.Settings)
	if err != nil {
		return res, fmt.Errorf("sync token settings: %w", err)
	}

	prm.Logger.Info("initializing referral contract on the chain...")

	res.Referral, err = d.deployContract(ctx, "referral", prm.Referral.Common)
	if err != nil {
		return res, fmt.Errorf("init referral contract on the chain: %w", err)
	}

	prm.Logger.Info("referral contract successfully initialized on the chain", zap.Stringer("address", res.Referral))

	err = d.syncReferralOperators(ctx, res.Referral, prm.Referral.Operators)
	if err != nil {
		return res, fmt.Errorf("sync referral operators: %w", err)
	}

	prm.Logger.Info("initializing locker contract on the chain...")

	res.Locker, err = d.deployContract(ctx, "locker", prm.Locker.Common)
	if err != nil {
		return res, fmt.Errorf("init locker contract on the chain: %w", err)
	}

	prm.Logger.Info("locker contract successfully initialized on the chain", zap.Stringer("address", res.Locker))

	return res, nil
}
