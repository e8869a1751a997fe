package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type GenericNetworkConfig struct {
	Name               string                    `json:"name"`
	AlternativeNames   []string                  `json:"alternative_names"`
	ChainID            uint64                    `json:"chain_id"`
	NativeTokenSymbol  string                    `json:"native_token_symbol"`
	NativeTokenDecimal uint64                    `json:"native_token_decimal"`
	BlockTime          uint64                    `json:"block_time"`
	NodeVariableName   string                    `json:"node_variable_name"`
	DefaultNodes       map[string]string         `json:"default_nodes"`
	Contracts          map[string]common.Address `json:"contracts"`
}

// GenericNetwork is a config driven Network. All built-in networks and every
// custom network loaded from disk are GenericNetworks.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetChainID() ChainID {
	return ChainID(gn.config.ChainID)
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) GetBlockTime() time.Duration {
	return time.Duration(gn.config.BlockTime) * time.Second
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNetwork) GetContracts() map[string]common.Address {
	return gn.config.Contracts
}
