package deploy

import (
	"fmt"
	"io"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// Config is a YAML document describing the desired state of the deployed
// contracts. Accounts are Neo addresses.
type Config struct {
	Token struct {
		TransferTaxRate       *int     `yaml:"transfer_tax_rate"`
		BurnRate              *int     `yaml:"burn_rate"`
		MaxTransferAmountRate *int     `yaml:"max_transfer_amount_rate"`
		MinAmountToLiquify    *int     `yaml:"min_amount_to_liquify"`
		SwapAndLiquifyEnabled *bool    `yaml:"swap_and_liquify_enabled"`
		SwapRouter            string   `yaml:"swap_router"`
		ExcludedFromAntiWhale []string `yaml:"excluded_from_anti_whale"`
		Operator              string   `yaml:"operator"`
	} `yaml:"token"`

	Referral struct {
		Operators []string `yaml:"operators"`
	} `yaml:"referral"`
}

// ReadConfig reads Config from the YAML file.
func ReadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig decodes Config from the YAML stream. Unknown fields are
// rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if err != nil && err != io.EOF {
		return c, fmt.Errorf("decode YAML: %w", err)
	}

	return c, nil
}

// TokenSettings converts token section of the Config.
func (c Config) TokenSettings() (TokenSettings, error) {
	res := TokenSettings{
		TransferTaxRate:       c.Token.TransferTaxRate,
		BurnRate:              c.Token.BurnRate,
		MaxTransferAmountRate: c.Token.MaxTransferAmountRate,
		MinAmountToLiquify:    c.Token.MinAmountToLiquify,
		SwapAndLiquifyEnabled: c.Token.SwapAndLiquifyEnabled,
	}

	var err error

	if c.Token.SwapRouter != "" {
		res.SwapRouter, err = decodeAddress(c.Token.SwapRouter)
		if err != nil {
			return res, fmt.Errorf("swap router: %w", err)
		}
	}

	if c.Token.Operator != "" {
		res.Operator, err = decodeAddress(c.Token.Operator)
		if err != nil {
			return res, fmt.Errorf("operator: %w", err)
		}
	}

	res.ExcludedFromAntiWhale, err = decodeAddresses(c.Token.ExcludedFromAntiWhale)
	if err != nil {
		return res, fmt.Errorf("anti-whale exclusions: %w", err)
	}

	return res, res.Validate()
}

// ReferralOperators converts referral operator list of the Config.
func (c Config) ReferralOperators() ([]util.Uint160, error) {
	res, err := decodeAddresses(c.Referral.Operators)
	if err != nil {
		return nil, fmt.Errorf("referral operators: %w", err)
	}

	return res, nil
}

func decodeAddress(s string) (*util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err != nil {
		return nil, fmt.Errorf("invalid address '%s': %w", s, err)
	}

	return &h, nil
}

func decodeAddresses(ss []string) ([]util.Uint160, error) {
	if len(ss) == 0 {
		return nil, nil
	}

	res := make([]util.Uint160, len(ss))
	for i := range ss {
		h, err := decodeAddress(ss[i])
		if err != nil {
			return nil, err
		}

		res[i] = *h
	}

	return res, nil
}
