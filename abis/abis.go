// Package abis holds the interface descriptors of the contract roles the
// resolver knows about. Descriptors are parsed once and shared, so two
// lookups of the same role return the identical *Descriptor.
package abis

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

//go:embed artifacts/*.json
var artifacts embed.FS

// Descriptor is a validated contract interface. It is immutable.
type Descriptor struct {
	name string
	id   common.Hash
	abi  abi.ABI
}

func (d *Descriptor) Name() string {
	return d.name
}

// ID is the keccak256 of the raw ABI json the descriptor was built from.
func (d *Descriptor) ID() common.Hash {
	return d.id
}

func (d *Descriptor) ABI() abi.ABI {
	return d.abi
}

func (d *Descriptor) HasMethod(name string) bool {
	_, found := d.abi.Methods[name]
	return found
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.name, d.id.Hex()[:10])
}

// FromJSON parses raw into a Descriptor. An interface without any method or
// event is rejected since nothing could be called on it.
func FromJSON(name string, raw []byte) (*Descriptor, error) {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse %s abi: %w", name, err)
	}
	if len(parsed.Methods) == 0 && len(parsed.Events) == 0 {
		return nil, fmt.Errorf("%s abi has no methods or events", name)
	}
	return &Descriptor{
		name: name,
		id:   crypto.Keccak256Hash(raw),
		abi:  parsed,
	}, nil
}

type lazy struct {
	once sync.Once
	name string
	file string
	d    *Descriptor
}

func (l *lazy) get() *Descriptor {
	l.once.Do(func() {
		raw, err := artifacts.ReadFile(path.Join("artifacts", l.file))
		if err != nil {
			panic(fmt.Errorf("missing embedded artifact %s: %w", l.file, err))
		}
		d, err := FromJSON(l.name, raw)
		if err != nil {
			panic(err)
		}
		l.d = d
	})
	return l.d
}

var (
	erc20              = &lazy{name: "ERC20", file: "erc20.json"}
	erc721             = &lazy{name: "ERC721", file: "erc721.json"}
	weth               = &lazy{name: "WETH", file: "weth.json"}
	v2Pair             = &lazy{name: "IUniswapV2Pair", file: "uniswap_v2_pair.json"}
	v2Router02         = &lazy{name: "IUniswapV2Router02", file: "uniswap_v2_router02.json"}
	interfaceMulticall = &lazy{name: "UniswapInterfaceMulticall", file: "uniswap_interface_multicall.json"}
	positionManager    = &lazy{name: "NonfungiblePositionManager", file: "nonfungible_position_manager.json"}
	v3Migrator         = &lazy{name: "V3Migrator", file: "v3_migrator.json"}
)

func ERC20() *Descriptor                      { return erc20.get() }
func ERC721() *Descriptor                     { return erc721.get() }
func WETH() *Descriptor                       { return weth.get() }
func UniswapV2Pair() *Descriptor              { return v2Pair.get() }
func UniswapV2Router02() *Descriptor          { return v2Router02.get() }
func UniswapInterfaceMulticall() *Descriptor  { return interfaceMulticall.get() }
func NonfungiblePositionManager() *Descriptor { return positionManager.get() }
func V3Migrator() *Descriptor                 { return v3Migrator.get() }

// All returns every embedded descriptor.
func All() []*Descriptor {
	return []*Descriptor{
		ERC20(),
		ERC721(),
		WETH(),
		UniswapV2Pair(),
		UniswapV2Router02(),
		UniswapInterfaceMulticall(),
		NonfungiblePositionManager(),
		V3Migrator(),
	}
}
