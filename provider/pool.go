package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/networks"
)

const customNodeName = "custom-node"

// Pool hands out one Provider per chain, dialing lazily on first request and
// returning the same instance afterwards. It is safe for concurrent use.
type Pool struct {
	registry  *networks.Registry
	keyring   *accounts.Keyring
	log       *zap.Logger
	mu        sync.Mutex
	providers map[networks.ChainID]*NodeProvider
}

func NewPool(registry *networks.Registry, keyring *accounts.Keyring, log *zap.Logger) *Pool {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{
		registry:  registry,
		keyring:   keyring,
		log:       log.Named("provider"),
		providers: map[networks.ChainID]*NodeProvider{},
	}
}

// Nodes lists the node endpoints of n in the order they are tried: the node
// from n's env variable first, then the defaults by name.
func Nodes(n networks.Network) [][2]string {
	res := [][2]string{}
	if v := n.GetNodeVariableName(); v != "" {
		if custom := strings.TrimSpace(os.Getenv(v)); custom != "" {
			res = append(res, [2]string{customNodeName, custom})
		}
	}
	names := []string{}
	for name := range n.GetDefaultNodes() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res = append(res, [2]string{name, n.GetDefaultNodes()[name]})
	}
	return res
}

// Provider returns the provider of chain, or nil when the chain is unknown or
// none of its nodes could be dialed. Nodes are tried in Nodes order and the
// first one answering eth_blockNumber wins. When none answers, the first
// dialed node is kept so offline work such as signing still has a provider.
func (p *Pool) Provider(chain networks.ChainID) Provider {
	if chain == 0 {
		return nil
	}
	p.mu.Lock()
	np, found := p.providers[chain]
	p.mu.Unlock()
	if found {
		return np
	}
	network, err := p.registry.GetNetworkByID(chain)
	if err != nil {
		return nil
	}
	np = p.pick(network)
	if np == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// another caller may have picked a node for chain meanwhile
	if existing, found := p.providers[chain]; found {
		np.Close()
		return existing
	}
	p.providers[chain] = np
	return np
}

func (p *Pool) pick(network networks.Network) *NodeProvider {
	chain := network.GetChainID()
	var fallback *NodeProvider
	errs := []error{}
	for _, node := range Nodes(network) {
		np, err := DialNode(chain, node[0], node[1], p.keyring)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := np.CurrentBlock(context.Background()); err != nil {
			p.log.Debug("node unhealthy",
				zap.Stringer("chainId", chain),
				zap.String("node", node[0]),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", node[0], err))
			if fallback == nil {
				fallback = np
			} else {
				np.Close()
			}
			continue
		}
		if fallback != nil {
			fallback.Close()
		}
		p.log.Debug("provider ready",
			zap.Stringer("chainId", chain),
			zap.String("node", node[0]),
		)
		return np
	}
	if fallback != nil {
		p.log.Warn("no healthy node, using the first one",
			zap.String("network", network.GetName()),
			zap.String("node", fallback.NodeName()),
			zap.Error(errors.Join(errs...)),
		)
		return fallback
	}
	p.log.Warn("no usable node",
		zap.String("network", network.GetName()),
		zap.Error(errors.Join(errs...)),
	)
	return nil
}

func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, np := range p.providers {
		np.Close()
		delete(p.providers, id)
	}
}
