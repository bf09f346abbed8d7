package main

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/bullyswap/bully-contract/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func balanceKey(acc util.Uint160) []byte {
	return append([]byte{accountPrefix}, acc.BytesBE()...)
}

func TestDecodeHolder(t *testing.T) {
	acc := util.Uint160{1, 2, 3}

	h, err := decodeHolder(balanceKey(acc), bigint.ToBytes(big.NewInt(11728)))
	require.NoError(t, err)
	require.Equal(t, acc, h.account)
	require.Equal(t, big.NewInt(11728), h.balance)

	_, err = decodeHolder(append([]byte{'l'}, acc.BytesBE()...), bigint.ToBytes(big.NewInt(1)))
	require.Error(t, err)

	_, err = decodeHolder(balanceKey(acc)[:10], bigint.ToBytes(big.NewInt(1)))
	require.Error(t, err)

	_, err = decodeHolder(balanceKey(acc), bigint.ToBytes(big.NewInt(-1)))
	require.Error(t, err)
}

func TestWriteHolders(t *testing.T) {
	burn, err := util.Uint160DecodeBytesBE([]byte(tokenconst.BurnAddress))
	require.NoError(t, err)

	hs := []holder{
		{account: util.Uint160{2}, balance: big.NewInt(5)},
		{account: burn, balance: big.NewInt(123)},
		{account: util.Uint160{1}, balance: big.NewInt(5)},
		{account: util.Uint160{3}, balance: big.NewInt(150000000)},
	}
	sortHolders(hs)

	var buf bytes.Buffer
	require.NoError(t, writeHolders(&buf, hs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"address,balance,burnt",
		address.Uint160ToString(util.Uint160{3}) + ",1.5,false",
		address.Uint160ToString(burn) + ",0.00000123,true",
		address.Uint160ToString(util.Uint160{1}) + ",0.00000005,false",
		address.Uint160ToString(util.Uint160{2}) + ",0.00000005,false",
	}, lines)
}

func TestParseContract(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	res, err := parseContract(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseContract(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseContract("")
	require.Error(t, err)

	_, err = parseContract("bad")
	require.Error(t, err)
}
