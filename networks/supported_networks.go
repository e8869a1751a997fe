package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sahilm/fuzzy"
)

// Insert more Network implementation here to support
// more chains
var supportedNetworks = []Network{
	EthereumMainnet,
	OptimismMainnet,
	BSCMainnet,
	PolygonMainnet,
	BaseMainnet,
	ArbitrumMainnet,
	AvalancheMainnet,
	SepoliaTestnet,
	MonadTestnetNetwork,
}

var ErrNetworkNotFound = fmt.Errorf("network not found")

// Registry indexes networks by name, alternative name and chain id. It is
// safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	networks     map[string]Network
	networksByID map[ChainID]Network
}

// NewRegistry indexes builtins first and then custom networks. A custom
// network replaces a builtin with the same name or chain id. Duplicate names
// among builtins are a programming error and panic.
func NewRegistry(builtins []Network, custom []Network) *Registry {
	result := &Registry{
		networks:     map[string]Network{},
		networksByID: map[ChainID]Network{},
	}
	for _, n := range builtins {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.add(n)
	}
	for _, n := range custom {
		result.add(n)
	}
	return result
}

func (r *Registry) add(n Network) {
	if old, found := r.networksByID[n.GetChainID()]; found {
		delete(r.networks, old.GetName())
		for _, an := range old.GetAlternativeNames() {
			delete(r.networks, an)
		}
	}
	r.networks[n.GetName()] = n
	r.networksByID[n.GetChainID()] = n
	for _, an := range n.GetAlternativeNames() {
		if existing, found := r.networks[an]; found && existing != n {
			continue
		}
		r.networks[an] = n
	}
}

// Add registers n, replacing any network with the same chain id.
func (r *Registry) Add(n Network) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(n)
}

func (r *Registry) GetNetwork(name string) (Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *Registry) GetNetworkByID(id ChainID) (Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

// Networks returns every distinct network ordered by chain id.
func (r *Registry) Networks() []Network {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Network, 0, len(r.networksByID))
	for _, n := range r.networksByID {
		res = append(res, n)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].GetChainID() < res[j].GetChainID()
	})
	return res
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.networks))
	for name := range r.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Suggest returns up to max registered names that fuzzily match name, best
// match first.
func (r *Registry) Suggest(name string, max int) []string {
	names := r.Names()
	matches := fuzzy.Find(name, names)
	res := []string{}
	for i, m := range matches {
		if i >= max {
			break
		}
		res = append(res, m.Str)
	}
	return res
}

// CustomNetworksDir is where user defined network json files are read from.
func CustomNetworksDir() string {
	usr, err := user.Current()
	if err != nil {
		return filepath.Join(".contractkit", "networks")
	}
	return filepath.Join(usr.HomeDir, ".contractkit", "networks")
}

// LoadCustomNetworks parses every *.json file in dir. Files that fail to
// parse are skipped and reported in the returned skipped map.
func LoadCustomNetworks(dir string) (networks []Network, skipped map[string]error, err error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}
	skipped = map[string]error{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		network, err := NewNetworkFromJSON(content)
		if err != nil {
			skipped[file] = err
			continue
		}
		networks = append(networks, network)
	}
	return networks, skipped, nil
}

func NewNetworkFromJSON(content []byte) (Network, error) {
	networkConfig := GenericNetworkConfig{}
	err := json.Unmarshal(content, &networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal network config: %w", err)
	}
	if networkConfig.Name == "" {
		return nil, fmt.Errorf("network config has no name")
	}
	if networkConfig.ChainID == 0 {
		return nil, fmt.Errorf("network config '%s' has no chain id", networkConfig.Name)
	}
	return NewGenericNetwork(networkConfig), nil
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process wide registry: builtins plus the custom
// networks found in CustomNetworksDir. Custom networks that fail to load are
// ignored.
func Default() *Registry {
	defaultOnce.Do(func() {
		custom, _, err := LoadCustomNetworks(CustomNetworksDir())
		if err != nil {
			custom = nil
		}
		defaultRegistry = NewRegistry(supportedNetworks, custom)
	})
	return defaultRegistry
}

func Builtins() []Network {
	return append([]Network{}, supportedNetworks...)
}

func GetNetwork(name string) (Network, error) {
	return Default().GetNetwork(name)
}

func GetNetworkByID(id ChainID) (Network, error) {
	return Default().GetNetworkByID(id)
}
