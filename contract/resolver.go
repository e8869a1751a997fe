package contract

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/tranvictor/contractkit/abis"
	"github.com/tranvictor/contractkit/addresses"
	"github.com/tranvictor/contractkit/analytics"
	"github.com/tranvictor/contractkit/metrics"
	"github.com/tranvictor/contractkit/networks"
	"github.com/tranvictor/contractkit/provider"
)

// Providers hands out the provider of a chain, or nil when it has none.
// *provider.Pool is the production implementation.
type Providers interface {
	Provider(chain networks.ChainID) provider.Provider
}

type slotKey struct {
	address    string
	descriptor *abis.Descriptor
	provider   provider.Provider
	withSigner bool
	account    common.Address
}

// Slot remembers the last resolution of one consumer together with the
// inputs it was computed from. The zero Slot is empty. A Slot belongs to a
// single consumer and is not safe for concurrent use.
type Slot[T any] struct {
	filled bool
	key    slotKey
	value  T
}

// Reset empties the slot so the next lookup resolves again.
func (s *Slot[T]) Reset() {
	var zero T
	s.filled = false
	s.key = slotKey{}
	s.value = zero
}

// Request describes one contract to resolve. Role only labels logs and
// metrics. A zero ChainID means the account's chain.
type Request struct {
	Role       string
	Address    string
	Descriptor *abis.Descriptor
	WithSigner bool
	ChainID    networks.ChainID
}

type Resolver struct {
	providers Providers
	book      *addresses.Book
	log       *zap.Logger
	metrics   *metrics.Recorder
	bus       *analytics.Bus
}

// NewResolver wires a resolver. log, m and bus may be nil.
func NewResolver(
	providers Providers,
	book *addresses.Book,
	log *zap.Logger,
	m *metrics.Recorder,
	bus *analytics.Bus,
) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		providers: providers,
		book:      book,
		log:       log.Named("contract"),
		metrics:   m,
		bus:       bus,
	}
}

func (r *Resolver) Book() *addresses.Book {
	return r.book
}

func (r *Resolver) provider(chain networks.ChainID) provider.Provider {
	if chain == 0 || r.providers == nil {
		return nil
	}
	return r.providers.Provider(chain)
}

// Use returns the handle for req wrapped into its typed shape, or the zero T
// when the inputs are incomplete or the handle could not be built. The
// result is remembered in slot and returned unchanged, failures included,
// until the address, the descriptor, the provider, the signer preference or
// the account address changes. A nil slot disables memoization.
//
// Use never returns an error. Construction failures are logged as warnings.
func Use[T any](r *Resolver, slot *Slot[T], account Account, req Request, wrap func(*Handle) T) T {
	chain := req.ChainID
	if chain == 0 {
		chain = account.ChainID
	}
	key := slotKey{
		address:    req.Address,
		descriptor: req.Descriptor,
		provider:   r.provider(chain),
		withSigner: req.WithSigner,
		account:    account.Address,
	}
	if slot != nil && slot.filled && slot.key == key {
		r.metrics.MemoHit(req.Role)
		return slot.value
	}

	var value T
	h, err := Resolve(key.address, key.descriptor, key.provider, key.account, key.withSigner)
	switch {
	case errors.Is(err, ErrNotReady):
		r.metrics.Resolution(req.Role, metrics.OutcomeNotReady)
	case err != nil:
		r.log.Warn("failed to get contract",
			zap.String("role", req.Role),
			zap.String("contractAddress", req.Address),
			zap.String("accountAddress", account.Address.Hex()),
			zap.Error(err),
		)
		r.metrics.Resolution(req.Role, metrics.OutcomeFailed)
	default:
		value = wrap(h)
		r.metrics.Resolution(req.Role, metrics.OutcomeResolved)
	}

	if slot != nil {
		slot.filled = true
		slot.key = key
		slot.value = value
	}
	return value
}

// UseHandle is Use without a typed shape.
func UseHandle(r *Resolver, slot *Slot[*Handle], account Account, req Request) *Handle {
	return Use(r, slot, account, req, func(h *Handle) *Handle { return h })
}
