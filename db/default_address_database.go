package db

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/addresses"
	"github.com/tranvictor/contractkit/networks"
)

const Unknown = "unknown"

// DefaultAddressDatabase maps addresses to a human readable label. It is safe
// for concurrent use.
type DefaultAddressDatabase struct {
	mu   sync.RWMutex
	Data map[common.Address]string
}

func NewAddressDatabase() *DefaultAddressDatabase {
	return &DefaultAddressDatabase{Data: map[common.Address]string{}}
}

func (self *DefaultAddressDatabase) Register(addr string, name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.Data[common.HexToAddress(addr)] = name
}

func (self *DefaultAddressDatabase) GetName(addr string) string {
	self.mu.RLock()
	defer self.mu.RUnlock()
	name, found := self.Data[common.HexToAddress(addr)]
	if found {
		return name
	}
	return Unknown
}

func (self *DefaultAddressDatabase) Len() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return len(self.Data)
}

func (self *DefaultAddressDatabase) source() FuzzySource {
	self.mu.RLock()
	defer self.mu.RUnlock()
	result := FuzzySource{}
	for addr, desc := range self.Data {
		result = append(result, AddressDesc{Address: addr.Hex(), Desc: desc})
	}
	// map order would make equal scores come back in random order
	sort.Slice(result, func(i, j int) bool { return result[i].Address < result[j].Address })
	return result
}

// RegisterBook labels every address of book as "<network> <role>". The same
// address deployed on several chains keeps the label of the lowest chain id.
func (self *DefaultAddressDatabase) RegisterBook(book *addresses.Book, nets []networks.Network) {
	names := map[networks.ChainID]string{}
	for _, n := range nets {
		names[n.GetChainID()] = n.GetName()
	}
	for _, role := range addresses.Roles {
		table := book.Table(role)
		for _, chain := range table.Chains() {
			addr, _ := table.Lookup(chain)
			if self.GetName(addr.Hex()) != Unknown {
				continue
			}
			network, found := names[chain]
			if !found {
				network = fmt.Sprintf("chain %d", chain)
			}
			self.Register(addr.Hex(), fmt.Sprintf("%s %s", network, strings.Replace(string(role), "_", " ", -1)))
		}
	}
}

// LabelsFile is the user's address book, a json object from address to
// label.
func LabelsFile() string {
	usr, err := user.Current()
	if err != nil {
		return filepath.Join(".contractkit", "addresses.json")
	}
	return filepath.Join(usr.HomeDir, ".contractkit", "addresses.json")
}

func readLabels(file string) (map[string]string, error) {
	// ReadFile follows symlinks, relative targets included
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	result := map[string]string{}
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return result, nil
}

// RegisterFile adds the labels of file, overriding existing ones. A missing
// file is not an error.
func (self *DefaultAddressDatabase) RegisterFile(file string) error {
	labels, err := readLabels(file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for addr, name := range labels {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%s: %q is not an address", file, addr)
		}
		self.Register(addr, name)
	}
	return nil
}

// NewDefaultAddressDatabase labels the book's contracts and then applies the
// labels file. A broken labels file is reported while the book labels are
// still returned.
func NewDefaultAddressDatabase(book *addresses.Book, nets []networks.Network, labelsFile string) (*DefaultAddressDatabase, error) {
	db := NewAddressDatabase()
	db.RegisterBook(book, nets)
	if labelsFile == "" {
		return db, nil
	}
	return db, db.RegisterFile(labelsFile)
}
