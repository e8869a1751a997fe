package networks

import (
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID identifies an EVM network. The zero value means "not set".
type ChainID uint64

func (id ChainID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

type Network interface {
	GetName() string
	GetChainID() ChainID
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetContracts returns per-role contract addresses declared by the
	// network config, keyed by role name. Built-in networks return nil and
	// rely on the static address tables.
	GetContracts() map[string]common.Address
}
