package deploy

import (
	"fmt"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
)

// CompileContract compiles Go smart contract from the source directory using
// config.yml in it and returns its NEF and manifest.
func CompileContract(dir string) (CommonDeployPrm, error) {
	var res CommonDeployPrm

	// nef.NewFile() cares about version a lot.
	if config.Version == "" {
		config.Version = "0.0.0-bully"
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, "config.yml"))
	if err != nil {
		return res, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{
		Name:                       conf.Name,
		SourceURL:                  conf.SourceURL,
		ContractEvents:             conf.Events,
		DeclaredNamedTypes:         conf.NamedTypes,
		ContractSupportedStandards: conf.SupportedStandards,
		SafeMethods:                conf.SafeMethods,
		Overloads:                  conf.Overloads,
		Permissions:                make([]manifest.Permission, len(conf.Permissions)),
	}
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}

	ne, di, err := compiler.CompileWithOptions(dir, nil, o)
	if err != nil {
		return res, fmt.Errorf("compile contract: %w", err)
	}

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return res, fmt.Errorf("make manifest: %w", err)
	}

	res.NEF = *ne
	res.Manifest = *m

	return res, nil
}

// CompileSuite compiles token, referral and locker contracts located in the
// corresponding subdirectories of root.
func CompileSuite(root string) (token, referral, locker CommonDeployPrm, err error) {
	token, err = CompileContract(filepath.Join(root, "token"))
	if err != nil {
		return token, referral, locker, fmt.Errorf("token: %w", err)
	}

	referral, err = CompileContract(filepath.Join(root, "referral"))
	if err != nil {
		return token, referral, locker, fmt.Errorf("referral: %w", err)
	}

	locker, err = CompileContract(filepath.Join(root, "locker"))
	if err != nil {
		return token, referral, locker, fmt.Errorf("locker: %w", err)
	}

	return token, referral, locker, nil
}
