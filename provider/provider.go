// Package provider supplies the per-chain backends contract handles are
// bound to.
package provider

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/networks"
)

const Timeout time.Duration = 4 * time.Second

// Provider is the capability a contract handle is built on: a backend for
// reads and, for a given account, a signer for writes. Implementations must
// be pointer types since resolvers compare providers by identity.
type Provider interface {
	ChainID() networks.ChainID
	Backend() bind.ContractBackend
	Signer(account common.Address) (bind.SignerFn, error)
}

// NodeProvider talks to a single json rpc node.
type NodeProvider struct {
	chainID   networks.ChainID
	nodeName  string
	nodeURL   string
	client    *rpc.Client
	ethClient *ethclient.Client
	keyring   *accounts.Keyring
	mu        sync.Mutex
}

// DialNode creates a NodeProvider for url. Dialing an http endpoint performs
// no network round trip; websocket and ipc endpoints connect immediately and
// are bounded by Timeout.
func DialNode(chainID networks.ChainID, name, url string, keyring *accounts.Keyring) (*NodeProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", name, err)
	}
	return &NodeProvider{
		chainID:   chainID,
		nodeName:  name,
		nodeURL:   url,
		client:    client,
		ethClient: ethclient.NewClient(client),
		keyring:   keyring,
	}, nil
}

func (np *NodeProvider) ChainID() networks.ChainID {
	return np.chainID
}

func (np *NodeProvider) NodeName() string {
	return np.nodeName
}

func (np *NodeProvider) NodeURL() string {
	return np.nodeURL
}

func (np *NodeProvider) Backend() bind.ContractBackend {
	np.mu.Lock()
	defer np.mu.Unlock()
	if np.ethClient == nil {
		return nil
	}
	return np.ethClient
}

func (np *NodeProvider) EthClient() *ethclient.Client {
	np.mu.Lock()
	defer np.mu.Unlock()
	return np.ethClient
}

func (np *NodeProvider) Signer(account common.Address) (bind.SignerFn, error) {
	if np.keyring == nil {
		return nil, fmt.Errorf("%s: %w", account.Hex(), accounts.ErrNoSigner)
	}
	return np.keyring.SignerFn(account, new(big.Int).SetUint64(uint64(np.chainID)))
}

// CurrentBlock is a liveness probe for the node.
func (np *NodeProvider) CurrentBlock(ctx context.Context) (uint64, error) {
	ethcli := np.EthClient()
	if ethcli == nil {
		return 0, fmt.Errorf("%s is closed", np.nodeName)
	}
	timeout, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	return ethcli.BlockNumber(timeout)
}

func (np *NodeProvider) Close() {
	np.mu.Lock()
	defer np.mu.Unlock()
	if np.client != nil {
		np.client.Close()
	}
	np.client = nil
	np.ethClient = nil
}
