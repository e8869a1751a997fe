// Package addresses is the static per-network registry of well-known
// contract addresses, one table per contract role.
package addresses

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/contractkit/networks"
)

type Role string

const (
	V2Router           Role = "v2_router"
	InterfaceMulticall Role = "multicall"
	V3Migrator         Role = "v3_migrator"
	V3PositionManager  Role = "v3_position_manager"
	V4PositionManager  Role = "v4_position_manager"
	WrappedNative      Role = "wrapped_native"
)

var Roles = []Role{
	V2Router,
	InterfaceMulticall,
	V3Migrator,
	V3PositionManager,
	V4PositionManager,
	WrappedNative,
}

var ErrUnsupportedChain = fmt.Errorf("role not deployed on chain")

// Table maps chain ids to the address of one contract role. A Table is never
// modified after Load returns it.
type Table struct {
	role    Role
	byChain map[networks.ChainID]common.Address
}

func newTable(role Role, entries map[networks.ChainID]string) *Table {
	t := &Table{role: role, byChain: map[networks.ChainID]common.Address{}}
	for id, hex := range entries {
		t.byChain[id] = common.HexToAddress(hex)
	}
	return t
}

func (t *Table) Role() Role {
	return t.role
}

// Lookup returns the address of the role on chain. The zero chain id is
// never found.
func (t *Table) Lookup(chain networks.ChainID) (common.Address, bool) {
	if t == nil || chain == 0 {
		return common.Address{}, false
	}
	addr, found := t.byChain[chain]
	return addr, found
}

// Hex is Lookup rendered as a checksummed string, or "" when the role is not
// deployed on chain. It is the shape the resolver takes addresses in.
func (t *Table) Hex(chain networks.ChainID) string {
	addr, found := t.Lookup(chain)
	if !found {
		return ""
	}
	return addr.Hex()
}

func (t *Table) Chains() []networks.ChainID {
	res := make([]networks.ChainID, 0, len(t.byChain))
	for id := range t.byChain {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (t *Table) clone() *Table {
	c := &Table{role: t.role, byChain: make(map[networks.ChainID]common.Address, len(t.byChain))}
	for id, addr := range t.byChain {
		c.byChain[id] = addr
	}
	return c
}

// Book groups the tables of every role.
type Book struct {
	tables map[Role]*Table
}

// Load builds the address book from the builtin tables, then applies the
// per-role contract addresses declared by nets (custom network configs).
// Unknown role names in a network config are ignored.
func Load(nets []networks.Network) *Book {
	b := &Book{tables: map[Role]*Table{}}
	for role, t := range builtinTables {
		b.tables[role] = t.clone()
	}
	for _, n := range nets {
		for name, addr := range n.GetContracts() {
			t, found := b.tables[Role(name)]
			if !found {
				continue
			}
			t.byChain[n.GetChainID()] = addr
		}
	}
	return b
}

func (b *Book) Table(role Role) *Table {
	return b.tables[role]
}

func (b *Book) Lookup(role Role, chain networks.ChainID) (common.Address, error) {
	addr, found := b.Table(role).Lookup(chain)
	if !found {
		return common.Address{}, fmt.Errorf("%s on chain %d: %w", role, chain, ErrUnsupportedChain)
	}
	return addr, nil
}
