package contract

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tranvictor/contractkit/analytics"
	"github.com/tranvictor/contractkit/networks"
)

func TestTokenContractWithoutAccountIsReadOnly(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)

	token := r.TokenContract(&Slot[*ERC20]{}, Account{ChainID: networks.Mainnet}, tokenAddr, true, 0)
	require.NotNil(t, token)
	assert.True(t, token.ReadOnly())
	assert.Equal(t, networks.Mainnet, token.ChainID())
	assert.Equal(t, "ERC20", token.Descriptor().Name())
	assert.Zero(t, f.mainnet.signerCalls)
}

func TestTokenContractMissingAddress(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	assert.Nil(t, r.TokenContract(&Slot[*ERC20]{}, Account{ChainID: networks.Mainnet}, "", true, 0))
}

func TestWETHContractFollowsChain(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	slot := &Slot[*WETH]{}
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}

	onAccountChain := r.WETHContract(slot, acct, false, 0)
	require.NotNil(t, onAccountChain)
	assert.Equal(t, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), onAccountChain.Address())

	overridden := r.WETHContract(slot, acct, false, networks.Optimism)
	require.NotNil(t, overridden)
	assert.Equal(t, common.HexToAddress("0x4200000000000000000000000000000000000006"), overridden.Address())
	assert.Equal(t, networks.Optimism, overridden.ChainID())

	assert.Nil(t, r.WETHContract(&Slot[*WETH]{}, Account{}, false, 0))
}

func TestRouterAndMigratorPreferSigner(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}

	router := r.V2RouterContract(&Slot[*V2Router]{}, acct)
	require.NotNil(t, router)
	assert.False(t, router.ReadOnly())
	assert.Equal(t, "IUniswapV2Router02", router.Descriptor().Name())

	migrator := r.V2MigratorContract(&Slot[*V3Migrator]{}, acct)
	require.NotNil(t, migrator)
	assert.False(t, migrator.ReadOnly())

	disconnected := r.V2RouterContract(&Slot[*V2Router]{}, Account{ChainID: networks.Mainnet})
	require.NotNil(t, disconnected)
	assert.True(t, disconnected.ReadOnly())
}

func TestPairContract(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	pair := r.PairContract(&Slot[*Pair]{}, Account{ChainID: networks.Optimism}, "0xB4e16d0168e52d35CaCD2c6185b44281Ec28C9Dc", false)
	require.NotNil(t, pair)
	assert.Equal(t, networks.Optimism, pair.ChainID())
}

func TestInterfaceMulticallIsReadOnly(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	mc := r.InterfaceMulticall(&Slot[*Multicall]{}, Account{Address: hardhatAddr, ChainID: networks.Mainnet}, 0)
	require.NotNil(t, mc)
	assert.True(t, mc.ReadOnly())
	assert.Zero(t, f.mainnet.signerCalls)
}

func TestV4PositionManagerUnsupportedChain(t *testing.T) {
	f := newFixture()
	r, logs, _ := newTestResolver(f)
	acct := Account{Address: hardhatAddr, ChainID: networks.MonadTestnet}

	assert.Nil(t, r.V4NFTPositionManagerContract(&Slot[*ERC721]{}, &Seen{}, acct, true, 0))
	assert.Zero(t, logs.Len())
}

func TestPositionManagerAnalyticsOncePerHandle(t *testing.T) {
	f := newFixture()
	bus := analytics.NewBus(nil, nil)
	r := NewResolver(f.providers, f.book, zap.NewNop(), nil, bus)

	events := []analytics.Event{}
	require.NoError(t, bus.Subscribe(analytics.WalletProviderUsed, func(e analytics.Event) {
		events = append(events, e)
	}))

	slot := &Slot[*PositionManager]{}
	seen := &Seen{}
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}

	first := r.V3NFTPositionManagerContract(slot, seen, acct, true, 0)
	require.NotNil(t, first)
	r.V3NFTPositionManagerContract(slot, seen, acct, true, 0)
	require.Len(t, events, 1)

	props := events[0].Properties
	assert.Equal(t, "useV3NFTPositionManagerContract", props["source"])
	contract := props["contract"].(map[string]interface{})
	assert.Equal(t, "V3NonfungiblePositionManager", contract["name"])
	assert.Equal(t, first.Address().Hex(), contract["address"])
	assert.Equal(t, true, contract["withSignerIfPossible"])
	assert.Equal(t, uint64(1), contract["chainId"])

	switched := Account{Address: hardhatAddr, ChainID: networks.Optimism}
	r.V3NFTPositionManagerContract(slot, seen, switched, true, 0)
	assert.Len(t, events, 2)

	disconnected := Account{ChainID: networks.Optimism}
	assert.NotNil(t, r.V3NFTPositionManagerContract(slot, seen, disconnected, true, 0))
	assert.Len(t, events, 2)
}

func TestV4PositionManagerAnalytics(t *testing.T) {
	f := newFixture()
	bus := analytics.NewBus(nil, nil)
	r := NewResolver(f.providers, f.book, nil, nil, bus)

	nft := r.V4NFTPositionManagerContract(&Slot[*ERC721]{}, &Seen{}, Account{Address: hardhatAddr, ChainID: networks.Mainnet}, false, 0)
	require.NotNil(t, nft)
	assert.True(t, nft.ReadOnly())
	assert.Equal(t, "NonfungiblePositionManager", nft.Descriptor().Name())
	assert.Equal(t, 1, bus.Sent())
}
