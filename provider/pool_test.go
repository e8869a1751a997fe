package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/networks"
)

func testRegistry() *networks.Registry {
	dev := networks.NewGenericNetwork(networks.GenericNetworkConfig{
		Name:             "devnet",
		ChainID:          31337,
		NodeVariableName: "CONTRACTKIT_TEST_DEVNET_NODE",
		DefaultNodes: map[string]string{
			"b-local": "http://127.0.0.1:8546",
			"a-local": "http://127.0.0.1:8545",
		},
	})
	broken := networks.NewGenericNetwork(networks.GenericNetworkConfig{
		Name:         "broken",
		ChainID:      31338,
		DefaultNodes: map[string]string{"bad": "unsupported://nowhere"},
	})
	return networks.NewRegistry(nil, []networks.Network{dev, broken})
}

func TestNodesOrder(t *testing.T) {
	n, err := testRegistry().GetNetwork("devnet")
	require.NoError(t, err)

	nodes := Nodes(n)
	require.Len(t, nodes, 2)
	assert.Equal(t, "a-local", nodes[0][0])
	assert.Equal(t, "b-local", nodes[1][0])

	t.Setenv("CONTRACTKIT_TEST_DEVNET_NODE", " http://10.0.0.1:8545 ")
	nodes = Nodes(n)
	require.Len(t, nodes, 3)
	assert.Equal(t, [2]string{customNodeName, "http://10.0.0.1:8545"}, nodes[0])
}

func TestPoolReturnsSameProviderPerChain(t *testing.T) {
	pool := NewPool(testRegistry(), accounts.NewKeyring(), nil)
	defer pool.Close()

	first := pool.Provider(31337)
	require.NotNil(t, first)
	assert.Equal(t, networks.ChainID(31337), first.ChainID())
	assert.NotNil(t, first.Backend())
	assert.Same(t, first, pool.Provider(31337))
	assert.Equal(t, "a-local", first.(*NodeProvider).NodeName())
}

// newRPCNode serves eth_blockNumber like a synced node.
func newRPCNode(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_blockNumber" {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": "0x10"})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPoolSkipsDeadNodes(t *testing.T) {
	node := newRPCNode(t)
	dev := networks.NewGenericNetwork(networks.GenericNetworkConfig{
		Name:             "devnet",
		ChainID:          31337,
		NodeVariableName: "CONTRACTKIT_TEST_DEVNET_NODE",
		DefaultNodes: map[string]string{
			"a-dead":  "http://127.0.0.1:1",
			"healthy": node.URL,
		},
	})
	t.Setenv("CONTRACTKIT_TEST_DEVNET_NODE", "http://127.0.0.1:1")
	pool := NewPool(networks.NewRegistry(nil, []networks.Network{dev}), nil, nil)
	defer pool.Close()

	p := pool.Provider(31337)
	require.NotNil(t, p)
	assert.Equal(t, "healthy", p.(*NodeProvider).NodeName())
	block, err := p.(*NodeProvider).CurrentBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), block)
	assert.Same(t, p, pool.Provider(31337))
}

func TestPoolKeepsFirstNodeWhenNoneIsHealthy(t *testing.T) {
	pool := NewPool(testRegistry(), nil, nil)
	defer pool.Close()

	p := pool.Provider(31337)
	require.NotNil(t, p)
	assert.Equal(t, "a-local", p.(*NodeProvider).NodeName())
}

func TestPoolMissingProviders(t *testing.T) {
	pool := NewPool(testRegistry(), nil, nil)
	assert.Nil(t, pool.Provider(0))
	assert.Nil(t, pool.Provider(999))
	assert.Nil(t, pool.Provider(31338))
}

func TestNodeProviderSigner(t *testing.T) {
	keyring := accounts.NewKeyring()
	addr, err := keyring.AddHexKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)

	np, err := DialNode(31337, "local", "http://127.0.0.1:8545", keyring)
	require.NoError(t, err)
	defer np.Close()

	_, err = np.Signer(addr)
	assert.NoError(t, err)

	_, err = np.Signer(common.HexToAddress("0x01"))
	assert.ErrorIs(t, err, accounts.ErrNoSigner)

	np.Close()
	assert.Nil(t, np.Backend())
}
