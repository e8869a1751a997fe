package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/contractkit/networks"
)

var addr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestEmptySession(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", "session.json"))
	acct := s.Account()
	assert.False(t, acct.IsConnected())
	assert.Zero(t, acct.ChainID)
}

func TestConnectSwitchDisconnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewStore(path)

	require.NoError(t, s.Connect(addr, networks.Mainnet))
	reloaded := NewStore(path).Account()
	assert.Equal(t, addr, reloaded.Address)
	assert.Equal(t, networks.Mainnet, reloaded.ChainID)

	require.NoError(t, s.Switch(networks.Optimism))
	assert.Equal(t, networks.Optimism, NewStore(path).Account().ChainID)
	assert.Equal(t, addr, NewStore(path).Account().Address)

	require.NoError(t, s.Disconnect())
	after := NewStore(path).Account()
	assert.False(t, after.IsConnected())
	assert.Equal(t, networks.Optimism, after.ChainID)
}

func TestConnectZeroAddress(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))
	assert.Error(t, s.Connect(common.Address{}, networks.Mainnet))
}

func TestCorruptSessionIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"address":`), 0o644))
	assert.False(t, NewStore(path).Account().IsConnected())

	require.NoError(t, os.WriteFile(path, []byte(`{"address":"nope","chain_id":10}`), 0o644))
	acct := NewStore(path).Account()
	assert.False(t, acct.IsConnected())
	assert.Equal(t, networks.Optimism, acct.ChainID)
}
