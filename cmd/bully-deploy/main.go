package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bullyswap/bully-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "bully-deploy"
	app.Usage = "Deploy and configure BULLY token, referral and locker contracts"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rpc, r", Usage: "Network address of the Neo RPC server"},
		cli.StringFlag{Name: "wallet, w", Usage: "Path to the NEP-6 wallet with the deployer account"},
		cli.StringFlag{Name: "address, a", Usage: "Deployer account address (default account of the wallet if omitted)"},
		cli.StringFlag{Name: "password, p", Usage: "Password of the deployer account", EnvVar: "BULLY_WALLET_PASSWORD"},
		cli.StringFlag{Name: "config, c", Usage: "Path to the YAML file with contract settings"},
		cli.StringFlag{Name: "contracts", Value: "contracts", Usage: "Directory with contract sources"},
		cli.DurationFlag{Name: "timeout", Value: 15 * time.Second, Usage: "RPC dial and request timeout"},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	switch {
	case c.String("rpc") == "":
		return errors.New("missing Neo RPC endpoint")
	case c.String("wallet") == "":
		return errors.New("missing wallet")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	acc, err := openAccount(c.String("wallet"), c.String("address"), c.String("password"))
	if err != nil {
		return err
	}

	var cfg deploy.Config
	if p := c.String("config"); p != "" {
		cfg, err = deploy.ReadConfig(p)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	settings, err := cfg.TokenSettings()
	if err != nil {
		return fmt.Errorf("token settings: %w", err)
	}

	operators, err := cfg.ReferralOperators()
	if err != nil {
		return err
	}

	logger.Info("compiling contracts...", zap.String("dir", c.String("contracts")))

	tokenPrm, referralPrm, lockerPrm, err := deploy.CompileSuite(c.String("contracts"))
	if err != nil {
		return fmt.Errorf("compile contracts: %w", err)
	}

	cl, err := rpcclient.New(ctx, c.String("rpc"), rpcclient.Options{
		DialTimeout:    c.Duration("timeout"),
		RequestTimeout: c.Duration("timeout"),
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}
	defer cl.Close()

	err = cl.Init()
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	res, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       logger,
		Blockchain:   cl,
		LocalAccount: acc,
		Token: deploy.TokenContractPrm{
			Common:   tokenPrm,
			Settings: settings,
		},
		Referral: deploy.ReferralContractPrm{
			Common:    referralPrm,
			Operators: operators,
		},
		Locker: deploy.LockerContractPrm{
			Common: lockerPrm,
		},
	})
	if err != nil {
		return err
	}

	logger.Info("BULLY contracts are successfully deployed",
		zap.String("token", address.Uint160ToString(res.Token)),
		zap.String("referral", address.Uint160ToString(res.Referral)),
		zap.String("locker", address.Uint160ToString(res.Locker)),
	)

	return nil
}

// openAccount reads NEP-6 wallet and decrypts the account with the given
// address or the default one.
func openAccount(walletPath, addr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var acc *wallet.Account
	if addr != "" {
		h, err := address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid deployer address: %w", err)
		}

		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", addr)
		}
	} else {
		for i := range w.Accounts {
			if acc == nil || w.Accounts[i].Default {
				acc = w.Accounts[i]
			}
		}

		if acc == nil {
			return nil, errors.New("wallet has no accounts")
		}
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}
