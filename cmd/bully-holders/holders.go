package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/bullyswap/bully-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// balance storage items of the token contract are 'a' + account -> integer
const accountPrefix = 'a'

type holder struct {
	account util.Uint160
	balance *big.Int
}

// decodeHolder decodes balance storage item of the token contract.
func decodeHolder(key, value []byte) (holder, error) {
	var res holder

	if len(key) != 1+util.Uint160Size || key[0] != accountPrefix {
		return res, fmt.Errorf("invalid balance key %x", key)
	}

	var err error

	res.account, err = util.Uint160DecodeBytesBE(key[1:])
	if err != nil {
		return res, fmt.Errorf("invalid account in balance key: %w", err)
	}

	res.balance = bigint.FromBytes(value)
	if res.balance.Sign() < 0 {
		return res, fmt.Errorf("negative balance of %s", address.Uint160ToString(res.account))
	}

	return res, nil
}

// sortHolders orders holders by balance descending, then by address.
func sortHolders(hs []holder) {
	slices.SortFunc(hs, func(a, b holder) int {
		if c := b.balance.Cmp(a.balance); c != 0 {
			return c
		}
		return bytes.Compare(a.account.BytesBE(), b.account.BytesBE())
	})
}

// writeHolders writes holders as 'address,balance,burnt' CSV records, balance
// is formatted with token decimals.
func writeHolders(w io.Writer, hs []holder) error {
	burn, err := util.Uint160DecodeBytesBE([]byte(tokenconst.BurnAddress))
	if err != nil {
		return fmt.Errorf("decode burn address: %w", err)
	}

	c := csv.NewWriter(w)

	err = c.Write([]string{"address", "balance", "burnt"})
	if err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for i := range hs {
		err = c.Write([]string{
			address.Uint160ToString(hs[i].account),
			fixedn.ToString(hs[i].balance, tokenconst.Decimals),
			fmt.Sprint(hs[i].account.Equals(burn)),
		})
		if err != nil {
			return fmt.Errorf("write holder as CSV data: %w", err)
		}
	}

	c.Flush()

	err = c.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}
