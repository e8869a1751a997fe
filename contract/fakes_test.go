package contract

import (
	"context"
	"fmt"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/abis"
	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/addresses"
	"github.com/tranvictor/contractkit/networks"
	"github.com/tranvictor/contractkit/provider"
)

const hardhatKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var (
	hardhatAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	otherAddr   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tokenAddr   = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

// fakeBackend answers eth_call by method selector. Everything else panics
// through the nil embedded interface.
type fakeBackend struct {
	bind.ContractBackend
	outputs map[[4]byte][]byte
	code    []byte
	calls   []ethereum.CallMsg
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{outputs: map[[4]byte][]byte{}, code: []byte{0x60}}
}

// answer packs values as the outputs of method of d.
func (b *fakeBackend) answer(d *abis.Descriptor, method string, values ...interface{}) {
	m := d.ABI().Methods[method]
	packed, err := m.Outputs.Pack(values...)
	if err != nil {
		panic(err)
	}
	var id [4]byte
	copy(id[:], m.ID)
	b.outputs[id] = packed
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	b.calls = append(b.calls, msg)
	if len(msg.Data) < 4 {
		return nil, fmt.Errorf("no selector")
	}
	var id [4]byte
	copy(id[:], msg.Data[:4])
	return b.outputs[id], nil
}

func (b *fakeBackend) CodeAt(ctx context.Context, account common.Address, block *big.Int) ([]byte, error) {
	return b.code, nil
}

type fakeProvider struct {
	chain       networks.ChainID
	backend     bind.ContractBackend
	keyring     *accounts.Keyring
	signerCalls int
}

func newFakeProvider(chain networks.ChainID, keyring *accounts.Keyring) *fakeProvider {
	return &fakeProvider{chain: chain, backend: newFakeBackend(), keyring: keyring}
}

func (p *fakeProvider) ChainID() networks.ChainID {
	return p.chain
}

func (p *fakeProvider) Backend() bind.ContractBackend {
	return p.backend
}

func (p *fakeProvider) Signer(account common.Address) (bind.SignerFn, error) {
	p.signerCalls++
	if p.keyring == nil {
		return nil, accounts.ErrNoSigner
	}
	return p.keyring.SignerFn(account, new(big.Int).SetUint64(uint64(p.chain)))
}

func (p *fakeProvider) fake() *fakeBackend {
	return p.backend.(*fakeBackend)
}

type fakeProviders map[networks.ChainID]provider.Provider

func (f fakeProviders) Provider(chain networks.ChainID) provider.Provider {
	return f[chain]
}

type fixture struct {
	keyring   *accounts.Keyring
	mainnet   *fakeProvider
	optimism  *fakeProvider
	monad     *fakeProvider
	providers fakeProviders
	book      *addresses.Book
}

func newFixture() *fixture {
	keyring := accounts.NewKeyring()
	if _, err := keyring.AddHexKey(hardhatKey); err != nil {
		panic(err)
	}
	f := &fixture{
		keyring:  keyring,
		mainnet:  newFakeProvider(networks.Mainnet, keyring),
		optimism: newFakeProvider(networks.Optimism, keyring),
		monad:    newFakeProvider(networks.MonadTestnet, keyring),
		book:     addresses.Load(nil),
	}
	f.providers = fakeProviders{
		networks.Mainnet:      f.mainnet,
		networks.Optimism:     f.optimism,
		networks.MonadTestnet: f.monad,
	}
	return f
}
