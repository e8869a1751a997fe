package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/abis"
)

// DefaultCallGas is the gas each call in a batch is allowed to use.
const DefaultCallGas uint64 = 1_000_000

// Multicall is the Uniswap interface multicall contract.
type Multicall struct {
	*Handle
}

func (m *Multicall) GetEthBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	return call1[*big.Int](ctx, m.Handle, "getEthBalance", addr)
}

func (m *Multicall) GetCurrentBlockTimestamp(ctx context.Context) (*big.Int, error) {
	return call1[*big.Int](ctx, m.Handle, "getCurrentBlockTimestamp")
}

// NewBatch starts a batch of calls to be executed in one round trip.
func (m *Multicall) NewBatch() *Batch {
	return &Batch{mc: m}
}

// ResultHook runs after a batched call was unpacked into its result.
type ResultHook func(result interface{}) error

var noHook ResultHook = func(result interface{}) error { return nil }

type batchCall struct {
	result     interface{}
	hook       ResultHook
	target     common.Address
	descriptor *abis.Descriptor
	method     string
	args       []interface{}
}

type multicallCall struct {
	Target   common.Address
	GasLimit *big.Int
	CallData []byte
}

type multicallResult struct {
	Success    bool
	GasUsed    *big.Int
	ReturnData []byte
}

// Batch collects calls and unpacks each return value into the pointer it was
// registered with.
type Batch struct {
	mc    *Multicall
	calls []batchCall
}

func (b *Batch) RegisterWithHook(
	result interface{},
	hook ResultHook,
	target common.Address,
	descriptor *abis.Descriptor,
	method string,
	args ...interface{},
) *Batch {
	b.calls = append(b.calls, batchCall{
		result:     result,
		hook:       hook,
		target:     target,
		descriptor: descriptor,
		method:     method,
		args:       args,
	})
	return b
}

func (b *Batch) Register(
	result interface{},
	target common.Address,
	descriptor *abis.Descriptor,
	method string,
	args ...interface{},
) *Batch {
	return b.RegisterWithHook(result, noHook, target, descriptor, method, args...)
}

func (b *Batch) Len() int {
	return len(b.calls)
}

// Do executes every registered call and returns the block they were read at.
// A call that reverted fails the whole batch.
func (b *Batch) Do(ctx context.Context) (block uint64, err error) {
	calls := make([]multicallCall, 0, len(b.calls))
	for i, c := range b.calls {
		parsed := c.descriptor.ABI()
		data, err := parsed.Pack(c.method, c.args...)
		if err != nil {
			return 0, fmt.Errorf("packing call index %d failed: %w", i, err)
		}
		calls = append(calls, multicallCall{
			Target:   c.target,
			GasLimit: new(big.Int).SetUint64(DefaultCallGas),
			CallData: data,
		})
	}

	out, err := b.mc.Call(ctx, "multicall", calls)
	if err != nil {
		return 0, fmt.Errorf("reading multicall failed: %w", err)
	}
	blockNumber := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	results := *abi.ConvertType(out[1], new([]multicallResult)).(*[]multicallResult)
	if len(results) != len(b.calls) {
		return 0, fmt.Errorf("multicall returned %d results for %d calls", len(results), len(b.calls))
	}

	for i, c := range b.calls {
		if !results[i].Success {
			return 0, fmt.Errorf("call index %d (%s.%s) reverted", i, c.descriptor.Name(), c.method)
		}
		parsed := c.descriptor.ABI()
		if err := parsed.UnpackIntoInterface(c.result, c.method, results[i].ReturnData); err != nil {
			return 0, fmt.Errorf("unpacking call index %d failed: %w", i, err)
		}
	}
	for i, c := range b.calls {
		if err := c.hook(c.result); err != nil {
			return 0, fmt.Errorf("calling hook at index %d failed: %w", i, err)
		}
	}
	return blockNumber.Uint64(), nil
}
