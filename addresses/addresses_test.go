package addresses

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/contractkit/networks"
)

func TestBuiltinLookup(t *testing.T) {
	b := Load(nil)

	addr, err := b.Lookup(V3PositionManager, networks.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xC36442b4a4522E871399CD717aBDD847Ab11FE88"), addr)

	assert.Equal(t,
		"0x4200000000000000000000000000000000000006",
		b.Table(WrappedNative).Hex(networks.Optimism),
	)
}

func TestEveryRoleHasATable(t *testing.T) {
	b := Load(nil)
	for _, role := range Roles {
		tbl := b.Table(role)
		require.NotNil(t, tbl, role)
		assert.Equal(t, role, tbl.Role())
		assert.NotEmpty(t, tbl.Chains())
	}
}

func TestMissingEntries(t *testing.T) {
	b := Load(nil)

	_, err := b.Lookup(V4PositionManager, networks.MonadTestnet)
	assert.ErrorIs(t, err, ErrUnsupportedChain)

	_, found := b.Table(V2Router).Lookup(0)
	assert.False(t, found)
	assert.Equal(t, "", b.Table(V2Router).Hex(31337))

	var nilTable *Table
	_, found = nilTable.Lookup(networks.Mainnet)
	assert.False(t, found)
}

func TestCustomNetworkOverrides(t *testing.T) {
	dev := networks.NewGenericNetwork(networks.GenericNetworkConfig{
		Name:    "devnet",
		ChainID: 31337,
		Contracts: map[string]common.Address{
			"multicall":  common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			"not_a_role": common.HexToAddress("0x01"),
			"v2_router":  common.HexToAddress("0x02"),
		},
	})
	b := Load([]networks.Network{dev})

	addr, err := b.Lookup(InterfaceMulticall, 31337)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), addr)

	addr, err = b.Lookup(V2Router, 31337)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x02"), addr)

	// builtin tables are untouched by a Load with overrides
	_, found := Load(nil).Table(InterfaceMulticall).Lookup(31337)
	assert.False(t, found)
}
