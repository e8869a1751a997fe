package networks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(Builtins(), nil)

	n, err := r.GetNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, n.GetChainID())

	alt, err := r.GetNetwork("ethereum")
	require.NoError(t, err)
	assert.Same(t, n, alt)

	op, err := r.GetNetworkByID(10)
	require.NoError(t, err)
	assert.Equal(t, "optimism", op.GetName())

	_, err = r.GetNetwork("tomo")
	assert.ErrorIs(t, err, ErrNetworkNotFound)

	_, err = r.GetNetworkByID(999999)
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestRegistryNetworksSortedByChainID(t *testing.T) {
	r := NewRegistry(Builtins(), nil)
	ns := r.Networks()
	require.Len(t, ns, len(Builtins()))
	for i := 1; i < len(ns); i++ {
		assert.Less(t, ns[i-1].GetChainID(), ns[i].GetChainID())
	}
}

func TestRegistryDuplicateBuiltinPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry([]Network{EthereumMainnet, EthereumMainnet}, nil)
	})
}

func TestCustomNetworkReplacesBuiltinWithSameChainID(t *testing.T) {
	custom := NewGenericNetwork(GenericNetworkConfig{
		Name:    "my-optimism",
		ChainID: uint64(Optimism),
	})
	r := NewRegistry(Builtins(), []Network{custom})

	n, err := r.GetNetworkByID(Optimism)
	require.NoError(t, err)
	assert.Equal(t, "my-optimism", n.GetName())

	_, err = r.GetNetwork("optimism")
	assert.ErrorIs(t, err, ErrNetworkNotFound)
	_, err = r.GetNetwork("op")
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}

func TestLoadCustomNetworks(t *testing.T) {
	dir := t.TempDir()
	good := `{
		"name": "devnet",
		"alternative_names": ["dev"],
		"chain_id": 31337,
		"native_token_symbol": "ETH",
		"native_token_decimal": 18,
		"block_time": 1,
		"node_variable_name": "DEVNET_NODE",
		"default_nodes": {"local": "http://127.0.0.1:8545"},
		"contracts": {"multicall": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devnet.json"), []byte(good), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name":`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noid.json"), []byte(`{"name":"x"}`), 0o644))

	custom, skipped, err := LoadCustomNetworks(dir)
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Len(t, skipped, 2)

	dev := custom[0]
	assert.Equal(t, ChainID(31337), dev.GetChainID())
	assert.Equal(t, "http://127.0.0.1:8545", dev.GetDefaultNodes()["local"])
	assert.Equal(t,
		common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		dev.GetContracts()["multicall"],
	)

	r := NewRegistry(Builtins(), custom)
	byAlt, err := r.GetNetwork("dev")
	require.NoError(t, err)
	assert.Same(t, dev, byAlt)
}

func TestSuggest(t *testing.T) {
	r := NewRegistry(Builtins(), nil)
	got := r.Suggest("arbtrm", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "arbitrum", got[0])
}
