package contract

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/abis"
	"github.com/tranvictor/contractkit/addresses"
	"github.com/tranvictor/contractkit/analytics"
	"github.com/tranvictor/contractkit/networks"
)

func chainOrAccount(chainID networks.ChainID, acct Account) networks.ChainID {
	if chainID != 0 {
		return chainID
	}
	return acct.ChainID
}

func (r *Resolver) roleAddress(role addresses.Role, chain networks.ChainID) string {
	if r.book == nil {
		return ""
	}
	return r.book.Table(role).Hex(chain)
}

func (r *Resolver) TokenContract(
	slot *Slot[*ERC20],
	acct Account,
	token string,
	withSigner bool,
	chainID networks.ChainID,
) *ERC20 {
	return Use(r, slot, acct, Request{
		Role:       "erc20",
		Address:    token,
		Descriptor: abis.ERC20(),
		WithSigner: withSigner,
		ChainID:    chainID,
	}, func(h *Handle) *ERC20 { return &ERC20{h} })
}

// WETHContract resolves the wrapped native token of chainID, or of the
// account's chain when chainID is 0.
func (r *Resolver) WETHContract(
	slot *Slot[*WETH],
	acct Account,
	withSigner bool,
	chainID networks.ChainID,
) *WETH {
	chain := chainOrAccount(chainID, acct)
	return Use(r, slot, acct, Request{
		Role:       string(addresses.WrappedNative),
		Address:    r.roleAddress(addresses.WrappedNative, chain),
		Descriptor: abis.WETH(),
		WithSigner: withSigner,
		ChainID:    chainID,
	}, func(h *Handle) *WETH { return &WETH{ERC20{h}} })
}

func (r *Resolver) PairContract(slot *Slot[*Pair], acct Account, pair string, withSigner bool) *Pair {
	return Use(r, slot, acct, Request{
		Role:       "v2_pair",
		Address:    pair,
		Descriptor: abis.UniswapV2Pair(),
		WithSigner: withSigner,
	}, func(h *Handle) *Pair { return &Pair{h} })
}

func (r *Resolver) V2RouterContract(slot *Slot[*V2Router], acct Account) *V2Router {
	return Use(r, slot, acct, Request{
		Role:       string(addresses.V2Router),
		Address:    r.roleAddress(addresses.V2Router, acct.ChainID),
		Descriptor: abis.UniswapV2Router02(),
		WithSigner: true,
	}, func(h *Handle) *V2Router { return &V2Router{h} })
}

func (r *Resolver) V2MigratorContract(slot *Slot[*V3Migrator], acct Account) *V3Migrator {
	return Use(r, slot, acct, Request{
		Role:       string(addresses.V3Migrator),
		Address:    r.roleAddress(addresses.V3Migrator, acct.ChainID),
		Descriptor: abis.V3Migrator(),
		WithSigner: true,
	}, func(h *Handle) *V3Migrator { return &V3Migrator{h} })
}

// InterfaceMulticall is always read only.
func (r *Resolver) InterfaceMulticall(slot *Slot[*Multicall], acct Account, chainID networks.ChainID) *Multicall {
	chain := chainOrAccount(chainID, acct)
	return Use(r, slot, acct, Request{
		Role:       string(addresses.InterfaceMulticall),
		Address:    r.roleAddress(addresses.InterfaceMulticall, chain),
		Descriptor: abis.UniswapInterfaceMulticall(),
		ChainID:    chainID,
	}, func(h *Handle) *Multicall { return &Multicall{h} })
}

// Seen remembers the handle a provider-used event was last reported for, so
// a consumer reports each newly resolved handle once. The zero Seen is ready
// to use. It belongs to one consumer.
type Seen struct {
	last *Handle
}

func (r *Resolver) reportProviderUsed(seen *Seen, h *Handle, acct Account, source, name string, withSigner bool, chain networks.ChainID) {
	if seen == nil {
		return
	}
	if h == nil || !acct.IsConnected() {
		seen.last = nil
		return
	}
	if seen.last == h {
		return
	}
	seen.last = h
	r.bus.Track(analytics.WalletProviderUsed, map[string]interface{}{
		"source": source,
		"contract": map[string]interface{}{
			"name":                 name,
			"address":              h.Address().Hex(),
			"withSignerIfPossible": withSigner,
			"chainId":              uint64(chain),
		},
	})
}

func (r *Resolver) V3NFTPositionManagerContract(
	slot *Slot[*PositionManager],
	seen *Seen,
	acct Account,
	withSigner bool,
	chainID networks.ChainID,
) *PositionManager {
	chain := chainOrAccount(chainID, acct)
	pm := Use(r, slot, acct, Request{
		Role:       string(addresses.V3PositionManager),
		Address:    r.roleAddress(addresses.V3PositionManager, chain),
		Descriptor: abis.NonfungiblePositionManager(),
		WithSigner: withSigner,
		ChainID:    chainID,
	}, func(h *Handle) *PositionManager { return &PositionManager{ERC721{h}} })

	var h *Handle
	if pm != nil {
		h = pm.Handle
	}
	r.reportProviderUsed(seen, h, acct, "useV3NFTPositionManagerContract", "V3NonfungiblePositionManager", withSigner, chain)
	return pm
}

// V4NFTPositionManagerContract binds the position manager interface to the v4
// deployment and exposes only its ERC721 methods. Chains without a v4
// deployment resolve to nil.
func (r *Resolver) V4NFTPositionManagerContract(
	slot *Slot[*ERC721],
	seen *Seen,
	acct Account,
	withSigner bool,
	chainID networks.ChainID,
) *ERC721 {
	chain := chainOrAccount(chainID, acct)
	nft := Use(r, slot, acct, Request{
		Role:       string(addresses.V4PositionManager),
		Address:    r.roleAddress(addresses.V4PositionManager, chain),
		Descriptor: abis.NonfungiblePositionManager(),
		WithSigner: withSigner,
		ChainID:    chainID,
	}, func(h *Handle) *ERC721 { return &ERC721{h} })

	var h *Handle
	if nft != nil {
		h = nft.Handle
	}
	r.reportProviderUsed(seen, h, acct, "useV4NFTPositionManagerContract", "V4NonfungiblePositionManager", withSigner, chain)
	return nft
}

// HandleFor resolves an arbitrary contract once, without memoization. It is
// the entry point for tools that inspect a single address.
func (r *Resolver) HandleFor(acct Account, address common.Address, descriptor *abis.Descriptor, withSigner bool, chainID networks.ChainID) (*Handle, error) {
	return Resolve(address.Hex(), descriptor, r.provider(chainOrAccount(chainID, acct)), acct.Address, withSigner)
}
