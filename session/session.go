// Package session persists the connected account between CLI invocations.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/contract"
	"github.com/tranvictor/contractkit/networks"
)

func DefaultPath() string {
	usr, err := user.Current()
	if err != nil {
		return filepath.Join(".contractkit", "session.json")
	}
	return filepath.Join(usr.HomeDir, ".contractkit", "session.json")
}

type state struct {
	Address string `json:"address,omitempty"`
	ChainID uint64 `json:"chain_id,omitempty"`
}

func (self *state) persist(path string) error {
	jsonData, err := json.MarshalIndent(self, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, jsonData, 0o644)
}

// Store reads the session file lazily and rewrites it on every change. A
// missing or unreadable file is an empty session.
type Store struct {
	path  string
	mu    sync.Mutex
	state *state
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() *state {
	if s.state != nil {
		return s.state
	}
	s.state = &state{}
	content, err := os.ReadFile(s.path)
	if err != nil {
		return s.state
	}
	if err := json.Unmarshal(content, s.state); err != nil {
		s.state = &state{}
		return s.state
	}
	if !common.IsHexAddress(s.state.Address) {
		s.state.Address = ""
	}
	return s.state
}

func (s *Store) Account() contract.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	acct := contract.Account{ChainID: networks.ChainID(st.ChainID)}
	if st.Address != "" {
		acct.Address = common.HexToAddress(st.Address)
	}
	return acct
}

// Connect sets the account and its chain.
func (s *Store) Connect(addr common.Address, chain networks.ChainID) error {
	if addr == (common.Address{}) {
		return fmt.Errorf("cannot connect the zero address")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.Address = addr.Hex()
	st.ChainID = uint64(chain)
	return st.persist(s.path)
}

// Disconnect forgets the account but keeps the selected chain.
func (s *Store) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.Address = ""
	return st.persist(s.path)
}

func (s *Store) Switch(chain networks.ChainID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load()
	st.ChainID = uint64(chain)
	return st.persist(s.path)
}
