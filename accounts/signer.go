package accounts

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error)
}

type KeySigner struct {
	key *ecdsa.PrivateKey
}

func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{key}
}

func (self *KeySigner) Address() common.Address {
	return crypto.PubkeyToAddress(self.key.PublicKey)
}

func (self *KeySigner) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(self.key, chainId)
	if err != nil {
		return nil, err
	}
	return opts.Signer(self.Address(), tx)
}
