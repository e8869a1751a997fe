package accounts

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrNoSigner = errors.New("no signer unlocked for account")

// Keyring holds the signers unlocked in this process, by address. It is safe
// for concurrent use.
type Keyring struct {
	mu      sync.RWMutex
	signers map[common.Address]Signer
}

func NewKeyring() *Keyring {
	return &Keyring{signers: map[common.Address]Signer{}}
}

func (k *Keyring) Add(s Signer) common.Address {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.signers[s.Address()] = s
	return s.Address()
}

func (k *Keyring) AddKeystore(file, password string) (common.Address, error) {
	_, key, err := PrivateKeyFromKeystore(file, password)
	if err != nil {
		return common.Address{}, fmt.Errorf("unlock %s: %w", file, err)
	}
	return k.Add(NewKeySigner(key)), nil
}

func (k *Keyring) AddHexKey(hex string) (common.Address, error) {
	_, key, err := PrivateKeyFromHex(hex)
	if err != nil {
		return common.Address{}, fmt.Errorf("parse private key: %w", err)
	}
	return k.Add(NewKeySigner(key)), nil
}

func (k *Keyring) Has(addr common.Address) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, found := k.signers[addr]
	return found
}

// Addresses lists the unlocked accounts in ascending order.
func (k *Keyring) Addresses() []common.Address {
	k.mu.RLock()
	defer k.mu.RUnlock()
	res := make([]common.Address, 0, len(k.signers))
	for addr := range k.signers {
		res = append(res, addr)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Cmp(res[j]) < 0 })
	return res
}

// SignerFn returns a go-ethereum signer function for addr that signs for
// chainID only.
func (k *Keyring) SignerFn(addr common.Address, chainID *big.Int) (bind.SignerFn, error) {
	k.mu.RLock()
	s, found := k.signers[addr]
	k.mu.RUnlock()
	if !found {
		return nil, fmt.Errorf("%s: %w", addr.Hex(), ErrNoSigner)
	}
	return func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
		if from != addr {
			return nil, fmt.Errorf("signer for %s asked to sign as %s", addr.Hex(), from.Hex())
		}
		signed, err := s.SignTx(tx, chainID)
		if err != nil {
			return tx, fmt.Errorf("couldn't sign the tx: %w", err)
		}
		return signed, nil
	}, nil
}
