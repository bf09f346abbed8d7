package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "bully-holders"
	app.Usage = "Dump BULLY token holders from the contract storage"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "rpc, r", Usage: "Network address of the Neo RPC server (with state service)"},
		cli.StringFlag{Name: "token, t", Usage: "Address or LE hash of the BULLY token contract"},
		cli.StringFlag{Name: "out, o", Usage: "Output CSV file (stdout if omitted)"},
		cli.DurationFlag{Name: "timeout", Value: 15 * time.Second, Usage: "RPC dial and request timeout"},
	}
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.String("rpc") == "" {
		return errors.New("missing Neo RPC endpoint")
	}

	tokenHash, err := parseContract(c.String("token"))
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b, err := newRemoteBlockChain(ctx, c.String("rpc"), c.Duration("timeout"))
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}
	defer b.close()

	var hs []holder

	err = b.iterateContractStorage(tokenHash, []byte{accountPrefix}, func(key, value []byte) error {
		h, err := decodeHolder(key, value)
		if err != nil {
			return err
		}

		hs = append(hs, h)

		return nil
	})
	if err != nil {
		return fmt.Errorf("iterate token balances: %w", err)
	}

	sortHolders(hs)

	var w io.Writer = os.Stdout
	if p := c.String("out"); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()

		w = f
	}

	err = writeHolders(w, hs)
	if err != nil {
		return err
	}

	logger.Info("token holders successfully dumped",
		zap.Uint32("block", b.currentBlock-1), zap.Int("holders", len(hs)))

	return nil
}

// parseContract accepts contract address in both Neo address and LE hash
// forms.
func parseContract(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("missing token contract")
	}

	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return h, fmt.Errorf("invalid token contract '%s'", s)
	}

	return h, nil
}
