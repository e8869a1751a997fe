package accounts

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// well known hardhat account #0
const (
	testKey  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestPrivateKeyFromHex(t *testing.T) {
	addr, _, err := PrivateKeyFromHex(testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddr, addr)

	naked, _, err := PrivateKeyFromHex(testKey[2:])
	require.NoError(t, err)
	assert.Equal(t, testAddr, naked)

	_, _, err = PrivateKeyFromHex("0xzz")
	assert.Error(t, err)
}

func TestKeyringSignerFn(t *testing.T) {
	k := NewKeyring()
	addr, err := k.AddHexKey(testKey)
	require.NoError(t, err)
	assert.True(t, k.Has(addr))

	chainID := big.NewInt(10)
	fn, err := k.SignerFn(addr, chainID)
	require.NoError(t, err)

	to := common.HexToAddress("0x01")
	tx := types.NewTransaction(0, to, big.NewInt(1), 21000, big.NewInt(1), nil)
	signed, err := fn(addr, tx)
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, addr, sender)

	_, err = fn(common.HexToAddress("0x02"), tx)
	assert.Error(t, err)
}

func TestKeyringMissingSigner(t *testing.T) {
	k := NewKeyring()
	_, err := k.SignerFn(common.HexToAddress(testAddr), big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoSigner)
}

func TestKeystoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := StorePrivateKeyWithKeystore(dir, testKey, "secret")
	require.NoError(t, err)

	addr, err := KeystoreAddress(path)
	require.NoError(t, err)
	assert.True(t, common.IsHexAddress(addr))
	assert.Equal(t, common.HexToAddress(testAddr), common.HexToAddress(addr))

	k := NewKeyring()
	unlocked, err := k.AddKeystore(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testAddr), unlocked)

	_, err = k.AddKeystore(path, "wrong")
	assert.Error(t, err)
}

func TestKeyringAddresses(t *testing.T) {
	k := NewKeyring()
	assert.Empty(t, k.Addresses())
	addr, err := k.AddHexKey(testKey)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{addr}, k.Addresses())
}
