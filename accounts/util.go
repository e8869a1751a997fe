package accounts

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

func AddressFromPrivateKey(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func PrivateKeyFromKeystore(file string, password string) (string, *ecdsa.PrivateKey, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", nil, err
	}
	key, err := gethkeystore.DecryptKey(content, password)
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(key.PrivateKey), key.PrivateKey, nil
}

// works with both 0x prefix form and naked form
func PrivateKeyFromHex(hex string) (string, *ecdsa.PrivateKey, error) {
	privkey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hex), "0x"))
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(privkey), privkey, nil
}

// KeystoreDir is where imported keys are written.
func KeystoreDir() string {
	usr, err := user.Current()
	if err != nil {
		return filepath.Join(".contractkit", "keystores")
	}
	return filepath.Join(usr.HomeDir, ".contractkit", "keystores")
}

// StorePrivateKeyWithKeystore encrypts privateKey with passphrase and writes
// it as <address>.json under dir. It returns the file path.
func StorePrivateKeyWithKeystore(dir string, privateKey string, passphrase string) (string, error) {
	_, priv, err := PrivateKeyFromHex(privateKey)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	key := &gethkeystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(priv.PublicKey),
		PrivateKey: priv,
	}
	keystoreJson, err := gethkeystore.EncryptKey(
		key,
		passphrase,
		gethkeystore.LightScryptN,
		gethkeystore.LightScryptP,
	)
	if err != nil {
		return "", fmt.Errorf("encrypt key: %w", err)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", key.Address.Hex()))
	return path, os.WriteFile(path, keystoreJson, 0o600)
}

type keystoreHeader struct {
	Address string `json:"address"`
}

// KeystoreAddress reads the address a keystore file belongs to without
// decrypting it.
func KeystoreAddress(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	k := &keystoreHeader{}
	if err := json.Unmarshal(content, k); err != nil {
		return "", err
	}
	if k.Address == "" {
		return "", fmt.Errorf("%s is not a keystore file", path)
	}
	return "0x" + strings.TrimPrefix(k.Address, "0x"), nil
}

// KeystoreFiles lists the json files in dir. A missing dir has no files.
func KeystoreFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
