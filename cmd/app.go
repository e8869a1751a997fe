package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/addresses"
	"github.com/tranvictor/contractkit/analytics"
	kitcommon "github.com/tranvictor/contractkit/common"
	"github.com/tranvictor/contractkit/config"
	"github.com/tranvictor/contractkit/contract"
	"github.com/tranvictor/contractkit/db"
	"github.com/tranvictor/contractkit/metrics"
	"github.com/tranvictor/contractkit/networks"
	"github.com/tranvictor/contractkit/provider"
	"github.com/tranvictor/contractkit/session"
	"github.com/tranvictor/contractkit/txanalyzer"
	"github.com/tranvictor/contractkit/ui"
	"github.com/tranvictor/contractkit/util"
)

// app is what every command runs against. Tests build one over fakes.
type app struct {
	ui        ui.UI
	log       *zap.Logger
	registry  *networks.Registry
	keyring   *accounts.Keyring
	providers contract.Providers
	session   *session.Store
	metrics   *metrics.Recorder
	bus       *analytics.Bus
	resolver  *contract.Resolver
	labels    *db.DefaultAddressDatabase
	analyzer  *txanalyzer.TxAnalyzer
	close     func()
}

const signerKeyVar = "CONTRACTKIT_SIGNER_KEY"

var (
	newAppFn = newApp
	current  *app
)

func newApp() (*app, error) {
	log := util.NewLogger(config.LogLevel)

	custom, skipped, err := networks.LoadCustomNetworks(networks.CustomNetworksDir())
	if err != nil {
		log.Warn("couldn't load custom networks", zap.Error(err))
	}
	for file, err := range skipped {
		log.Warn("skipped custom network", zap.String("file", file), zap.Error(err))
	}
	registry := networks.NewRegistry(networks.Builtins(), custom)

	keyring := accounts.NewKeyring()
	pool := provider.NewPool(registry, keyring, log)

	sessionPath := config.Session
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}

	book := addresses.Load(registry.Networks())
	labels, err := db.NewDefaultAddressDatabase(book, registry.Networks(), db.LabelsFile())
	if err != nil {
		log.Warn("couldn't load address labels", zap.Error(err))
	}

	m := metrics.New()
	bus := analytics.NewBus(log, m)
	return &app{
		ui:        ui.NewTerminalUI(),
		log:       log,
		registry:  registry,
		keyring:   keyring,
		providers: pool,
		session:   session.NewStore(sessionPath),
		metrics:   m,
		bus:       bus,
		resolver:  contract.NewResolver(pool, book, log, m, bus),
		labels:    labels,
		analyzer:  txanalyzer.NewAnalyzer(labels),
		close:     pool.Close,
	}, nil
}

func (a *app) unlockSigners() error {
	key := strings.TrimSpace(config.Signer)
	if key == "" {
		key = strings.TrimSpace(os.Getenv(signerKeyVar))
	}
	if key != "" {
		addr, err := a.keyring.AddHexKey(key)
		if err != nil {
			return err
		}
		a.log.Debug("unlocked signer", zap.String("address", addr.Hex()))
	}
	if config.Keystore != "" {
		password := a.ui.Password(fmt.Sprintf("Password for %s", config.Keystore))
		addr, err := a.keyring.AddKeystore(config.Keystore, password)
		if err != nil {
			return err
		}
		a.log.Debug("unlocked keystore", zap.String("address", addr.Hex()))
	}
	return nil
}

// lookupNetwork accepts a name, an alternative name or a chain id.
func (a *app) lookupNetwork(name string) (networks.Network, error) {
	n, err := a.registry.GetNetwork(name)
	if err == nil {
		return n, nil
	}
	if id, ok := new(big.Int).SetString(name, 10); ok && id.IsUint64() {
		if byID, idErr := a.registry.GetNetworkByID(networks.ChainID(id.Uint64())); idErr == nil {
			return byID, nil
		}
	}
	if suggestions := a.registry.Suggest(name, 3); len(suggestions) > 0 {
		return nil, fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
	}
	return nil, err
}

// account is the session's account with the chain overridden by --chain or
// --network. Without any chain the account is on mainnet.
func (a *app) account() (contract.Account, error) {
	acct := a.session.Account()
	switch {
	case config.ChainID != 0:
		acct.ChainID = networks.ChainID(config.ChainID)
	case config.Network != "":
		n, err := a.lookupNetwork(config.Network)
		if err != nil {
			return acct, err
		}
		acct.ChainID = n.GetChainID()
	}
	if acct.ChainID == 0 {
		acct.ChainID = networks.Mainnet
	}
	return acct, nil
}

func (a *app) networkName(chain networks.ChainID) string {
	n, err := a.registry.GetNetworkByID(chain)
	if err != nil {
		return fmt.Sprintf("chain %d", chain)
	}
	return n.GetName()
}

func (a *app) nativeDecimals(chain networks.ChainID) uint64 {
	n, err := a.registry.GetNetworkByID(chain)
	if err != nil || n.GetNativeTokenDecimal() == 0 {
		return 18
	}
	return n.GetNativeTokenDecimal()
}

func (a *app) txOptions() (contract.TxOptions, error) {
	opts := contract.TxOptions{
		GasLimit: config.GasLimit,
		DryRun:   config.DryRun,
	}
	if config.GasPrice > 0 {
		price, err := kitcommon.GweiToWei(config.GasPrice)
		if err != nil {
			return opts, err
		}
		opts.GasPrice = price
	}
	if config.Nonce >= 0 {
		opts.Nonce = big.NewInt(config.Nonce)
	}
	return opts, nil
}

func (a *app) timeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, provider.Timeout)
}

func (a *app) printMetrics() {
	lines, err := a.metrics.Dump()
	if err != nil {
		a.ui.Error("%s", err)
		return
	}
	a.ui.Section("Metrics")
	for _, l := range lines {
		a.ui.Info("%s", l)
	}
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not an address", s)
	}
	return common.HexToAddress(s), nil
}
