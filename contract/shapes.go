package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// call1 calls a method with a single output and converts it to T.
func call1[T any](ctx context.Context, h *Handle, method string, params ...interface{}) (T, error) {
	var zero T
	out, err := h.Call(ctx, method, params...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, fmt.Errorf("%s.%s returned nothing", h.descriptor.Name(), method)
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}

type ERC20 struct {
	*Handle
}

func (t *ERC20) Name(ctx context.Context) (string, error) {
	return call1[string](ctx, t.Handle, "name")
}

func (t *ERC20) Symbol(ctx context.Context) (string, error) {
	return call1[string](ctx, t.Handle, "symbol")
}

func (t *ERC20) Decimals(ctx context.Context) (uint8, error) {
	return call1[uint8](ctx, t.Handle, "decimals")
}

func (t *ERC20) TotalSupply(ctx context.Context) (*big.Int, error) {
	return call1[*big.Int](ctx, t.Handle, "totalSupply")
}

func (t *ERC20) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return call1[*big.Int](ctx, t.Handle, "balanceOf", owner)
}

func (t *ERC20) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	return call1[*big.Int](ctx, t.Handle, "allowance", owner, spender)
}

func (t *ERC20) Approve(ctx context.Context, opts TxOptions, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.Transact(ctx, opts, "approve", spender, amount)
}

func (t *ERC20) Transfer(ctx context.Context, opts TxOptions, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.Transact(ctx, opts, "transfer", to, amount)
}

// WETH is the wrapped native token of a chain.
type WETH struct {
	ERC20
}

// Deposit wraps opts.Value of the native token.
func (w *WETH) Deposit(ctx context.Context, opts TxOptions) (*types.Transaction, error) {
	return w.Transact(ctx, opts, "deposit")
}

func (w *WETH) Withdraw(ctx context.Context, opts TxOptions, amount *big.Int) (*types.Transaction, error) {
	return w.Transact(ctx, opts, "withdraw", amount)
}

type Pair struct {
	*Handle
}

type Reserves struct {
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
}

func (p *Pair) Token0(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, p.Handle, "token0")
}

func (p *Pair) Token1(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, p.Handle, "token1")
}

func (p *Pair) GetReserves(ctx context.Context) (Reserves, error) {
	out, err := p.Call(ctx, "getReserves")
	if err != nil {
		return Reserves{}, err
	}
	return Reserves{
		Reserve0:           *abi.ConvertType(out[0], new(*big.Int)).(**big.Int),
		Reserve1:           *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		BlockTimestampLast: *abi.ConvertType(out[2], new(uint32)).(*uint32),
	}, nil
}

type V2Router struct {
	*Handle
}

func (r *V2Router) Factory(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, r.Handle, "factory")
}

func (r *V2Router) WETH(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, r.Handle, "WETH")
}

func (r *V2Router) GetAmountsOut(ctx context.Context, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	return call1[[]*big.Int](ctx, r.Handle, "getAmountsOut", amountIn, path)
}

type V3Migrator struct {
	*Handle
}

func (m *V3Migrator) WETH9(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, m.Handle, "WETH9")
}

func (m *V3Migrator) Factory(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, m.Handle, "factory")
}

func (m *V3Migrator) PositionManager(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, m.Handle, "nonfungiblePositionManager")
}

type ERC721 struct {
	*Handle
}

func (n *ERC721) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return call1[*big.Int](ctx, n.Handle, "balanceOf", owner)
}

func (n *ERC721) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	return call1[common.Address](ctx, n.Handle, "ownerOf", tokenID)
}

func (n *ERC721) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	return call1[string](ctx, n.Handle, "tokenURI", tokenID)
}

// PositionManager is the Uniswap v3 liquidity position NFT.
type PositionManager struct {
	ERC721
}

type Position struct {
	Nonce                    *big.Int
	Operator                 common.Address
	Token0                   common.Address
	Token1                   common.Address
	Fee                      *big.Int
	TickLower                *big.Int
	TickUpper                *big.Int
	Liquidity                *big.Int
	FeeGrowthInside0LastX128 *big.Int
	FeeGrowthInside1LastX128 *big.Int
	TokensOwed0              *big.Int
	TokensOwed1              *big.Int
}

func (pm *PositionManager) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error) {
	return call1[*big.Int](ctx, pm.Handle, "tokenOfOwnerByIndex", owner, index)
}

func (pm *PositionManager) Positions(ctx context.Context, tokenID *big.Int) (Position, error) {
	out, err := pm.Call(ctx, "positions", tokenID)
	if err != nil {
		return Position{}, err
	}
	bigAt := func(i int) *big.Int {
		return *abi.ConvertType(out[i], new(*big.Int)).(**big.Int)
	}
	addrAt := func(i int) common.Address {
		return *abi.ConvertType(out[i], new(common.Address)).(*common.Address)
	}
	return Position{
		Nonce:                    bigAt(0),
		Operator:                 addrAt(1),
		Token0:                   addrAt(2),
		Token1:                   addrAt(3),
		Fee:                      bigAt(4),
		TickLower:                bigAt(5),
		TickUpper:                bigAt(6),
		Liquidity:                bigAt(7),
		FeeGrowthInside0LastX128: bigAt(8),
		FeeGrowthInside1LastX128: bigAt(9),
		TokensOwed0:              bigAt(10),
		TokensOwed1:              bigAt(11),
	}, nil
}

// OwnedTokenIDs enumerates the position token ids held by owner.
func (pm *PositionManager) OwnedTokenIDs(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	count, err := pm.BalanceOf(ctx, owner)
	if err != nil {
		return nil, err
	}
	ids := make([]*big.Int, 0, count.Int64())
	for i := int64(0); i < count.Int64(); i++ {
		id, err := pm.TokenOfOwnerByIndex(ctx, owner, big.NewInt(i))
		if err != nil {
			return nil, fmt.Errorf("token at index %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (pm *PositionManager) Factory(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, pm.Handle, "factory")
}

func (pm *PositionManager) WETH9(ctx context.Context) (common.Address, error) {
	return call1[common.Address](ctx, pm.Handle, "WETH9")
}
