package networks

const (
	Mainnet      ChainID = 1
	Optimism     ChainID = 10
	BSC          ChainID = 56
	Polygon      ChainID = 137
	Base         ChainID = 8453
	MonadTestnet ChainID = 10143
	Arbitrum     ChainID = 42161
	Avalanche    ChainID = 43114
	Sepolia      ChainID = 11155111
)

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "mainnet",
	AlternativeNames:   []string{"ethereum"},
	ChainID:            uint64(Mainnet),
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          12,
	NodeVariableName:   "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
		"mainnet-llamarpc":   "https://eth.llamarpc.com",
	},
})

var OptimismMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "optimism",
	AlternativeNames:   []string{"op"},
	ChainID:            uint64(Optimism),
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          2,
	NodeVariableName:   "OPTIMISM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-optimism": "https://mainnet.optimism.io",
	},
})

var BSCMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "bsc",
	AlternativeNames:   []string{"bnb"},
	ChainID:            uint64(BSC),
	NativeTokenSymbol:  "BNB",
	NativeTokenDecimal: 18,
	BlockTime:          3,
	NodeVariableName:   "BSC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"binance": "https://bsc-dataseed.binance.org",
		"defibit": "https://bsc-dataseed1.defibit.io",
	},
})

var PolygonMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "polygon",
	AlternativeNames:   []string{"matic"},
	ChainID:            uint64(Polygon),
	NativeTokenSymbol:  "POL",
	NativeTokenDecimal: 18,
	BlockTime:          2,
	NodeVariableName:   "MATIC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"polygon-rpc": "https://polygon-rpc.com",
	},
})

var BaseMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "base",
	ChainID:            uint64(Base),
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          2,
	NodeVariableName:   "BASE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"public-base": "https://mainnet.base.org",
	},
})

var ArbitrumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "arbitrum",
	AlternativeNames:   []string{"arb"},
	ChainID:            uint64(Arbitrum),
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          1,
	NodeVariableName:   "ARBITRUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"arbitrum-official": "https://arb1.arbitrum.io/rpc",
	},
})

var AvalancheMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "avalanche",
	AlternativeNames:   []string{"avax"},
	ChainID:            uint64(Avalanche),
	NativeTokenSymbol:  "AVAX",
	NativeTokenDecimal: 18,
	BlockTime:          2,
	NodeVariableName:   "AVALANCHE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"avalanche-official": "https://api.avax.network/ext/bc/C/rpc",
	},
})

var SepoliaTestnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "sepolia",
	ChainID:            uint64(Sepolia),
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	BlockTime:          12,
	NodeVariableName:   "ETHEREUM_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
})

var MonadTestnetNetwork Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "monad-testnet",
	ChainID:            uint64(MonadTestnet),
	NativeTokenSymbol:  "MON",
	NativeTokenDecimal: 18,
	BlockTime:          1,
	NodeVariableName:   "MONAD_TESTNET_NODE",
	DefaultNodes: map[string]string{
		"monad-testnet": "https://testnet-rpc.monad.xyz",
	},
})
