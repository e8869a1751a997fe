package contract

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tranvictor/contractkit/abis"
	"github.com/tranvictor/contractkit/metrics"
	"github.com/tranvictor/contractkit/networks"
)

func newTestResolver(f *fixture) (*Resolver, *observer.ObservedLogs, *metrics.Recorder) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New()
	return NewResolver(f.providers, f.book, zap.New(core), m, nil), logs, m
}

func erc20Request(withSigner bool) Request {
	return Request{Role: "erc20", Address: tokenAddr, Descriptor: abis.ERC20(), WithSigner: withSigner}
}

func TestUseMemoizes(t *testing.T) {
	f := newFixture()
	r, _, m := newTestResolver(f)
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}
	slot := &Slot[*Handle]{}

	first := UseHandle(r, slot, acct, erc20Request(true))
	require.NotNil(t, first)
	second := UseHandle(r, slot, acct, erc20Request(true))
	assert.Same(t, first, second)
	assert.Equal(t, 1, f.mainnet.signerCalls)

	lines, err := m.Dump()
	require.NoError(t, err)
	assert.Equal(t, []string{
		`contractkit_handle_memo_hits_total{role="erc20"} 1`,
		`contractkit_handle_resolutions_total{outcome="resolved",role="erc20"} 1`,
	}, lines)
}

func TestUseRecomputesOnDependencyChange(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}
	slot := &Slot[*Handle]{}

	base := UseHandle(r, slot, acct, erc20Request(true))
	require.NotNil(t, base)

	readOnly := UseHandle(r, slot, acct, erc20Request(false))
	require.NotNil(t, readOnly)
	assert.NotSame(t, base, readOnly)
	assert.True(t, readOnly.ReadOnly())

	req := erc20Request(false)
	req.Address = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	other := UseHandle(r, slot, acct, req)
	assert.NotSame(t, readOnly, other)
	assert.Equal(t, common.HexToAddress(req.Address), other.Address())

	req.Descriptor = abis.WETH()
	weth := UseHandle(r, slot, acct, req)
	assert.NotSame(t, other, weth)
	assert.Equal(t, "WETH", weth.Descriptor().Name())

	switched := UseHandle(r, slot, Account{Address: otherAddr, ChainID: networks.Mainnet}, req)
	assert.NotSame(t, weth, switched)
}

func TestUseRecomputesOnProviderChange(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	acct := Account{Address: hardhatAddr, ChainID: networks.Mainnet}
	slot := &Slot[*Handle]{}

	before := UseHandle(r, slot, acct, erc20Request(false))
	require.NotNil(t, before)
	assert.Same(t, before, UseHandle(r, slot, acct, erc20Request(false)))

	replacement := newFakeProvider(networks.Mainnet, f.keyring)
	f.providers[networks.Mainnet] = replacement
	after := UseHandle(r, slot, acct, erc20Request(false))
	require.NotNil(t, after)
	assert.NotSame(t, before, after)
	assert.Equal(t, networks.Mainnet, after.ChainID())
	assert.Equal(t, before.Address(), after.Address())
}

func TestUseChainSwitch(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	slot := &Slot[*Handle]{}

	onMainnet := UseHandle(r, slot, Account{Address: hardhatAddr, ChainID: networks.Mainnet}, erc20Request(true))
	onOptimism := UseHandle(r, slot, Account{Address: hardhatAddr, ChainID: networks.Optimism}, erc20Request(true))

	require.NotNil(t, onMainnet)
	require.NotNil(t, onOptimism)
	assert.NotSame(t, onMainnet, onOptimism)
	assert.Equal(t, networks.Mainnet, onMainnet.ChainID())
	assert.Equal(t, networks.Optimism, onOptimism.ChainID())
}

func TestUseChainOverride(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	req := erc20Request(false)
	req.ChainID = networks.Optimism

	h := UseHandle(r, nil, Account{ChainID: networks.Mainnet}, req)
	require.NotNil(t, h)
	assert.Equal(t, networks.Optimism, h.ChainID())
}

func TestUseNotReadyIsSilent(t *testing.T) {
	f := newFixture()
	r, logs, m := newTestResolver(f)

	assert.Nil(t, UseHandle(r, nil, Account{ChainID: networks.Mainnet}, Request{Role: "erc20", Descriptor: abis.ERC20()}))
	assert.Nil(t, UseHandle(r, nil, Account{}, erc20Request(false)))
	assert.Nil(t, UseHandle(r, nil, Account{ChainID: 999}, erc20Request(false)))

	assert.Zero(t, logs.Len())
	lines, err := m.Dump()
	require.NoError(t, err)
	assert.Equal(t, []string{
		`contractkit_handle_resolutions_total{outcome="not_ready",role="erc20"} 3`,
	}, lines)
}

func TestUseFailureIsLoggedAndMemoized(t *testing.T) {
	f := newFixture()
	r, logs, m := newTestResolver(f)
	slot := &Slot[*Handle]{}
	acct := Account{Address: otherAddr, ChainID: networks.Mainnet}

	assert.Nil(t, UseHandle(r, slot, acct, erc20Request(true)))
	assert.Nil(t, UseHandle(r, slot, acct, erc20Request(true)))

	warnings := logs.FilterMessage("failed to get contract")
	require.Equal(t, 1, warnings.Len())
	entry := warnings.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, tokenAddr, fields["contractAddress"])
	assert.Equal(t, otherAddr.Hex(), fields["accountAddress"])

	lines, err := m.Dump()
	require.NoError(t, err)
	assert.Equal(t, []string{
		`contractkit_handle_memo_hits_total{role="erc20"} 1`,
		`contractkit_handle_resolutions_total{outcome="failed",role="erc20"} 1`,
	}, lines)
}

func TestSlotReset(t *testing.T) {
	f := newFixture()
	r, _, _ := newTestResolver(f)
	acct := Account{ChainID: networks.Mainnet}
	slot := &Slot[*Handle]{}

	first := UseHandle(r, slot, acct, erc20Request(false))
	slot.Reset()
	second := UseHandle(r, slot, acct, erc20Request(false))
	assert.NotSame(t, first, second)
}
