package addresses

import (
	"github.com/tranvictor/contractkit/networks"
)

// Uniswap deployments, as published by the Uniswap sdk-core address maps.
var builtinTables = map[Role]*Table{
	V2Router: newTable(V2Router, map[networks.ChainID]string{
		networks.Mainnet:   "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		networks.Optimism:  "0x4A7b5Da61326A6379179b40d00F57E5bbDC962c2",
		networks.BSC:       "0x4752ba5DBc23f44D87826276BF6Fd6b1C372aD24",
		networks.Polygon:   "0xedf6066a2b290C185783862C7F4776A2C8077AD1",
		networks.Base:      "0x4752ba5DBc23f44D87826276BF6Fd6b1C372aD24",
		networks.Arbitrum:  "0x4752ba5DBc23f44D87826276BF6Fd6b1C372aD24",
		networks.Avalanche: "0x4752ba5DBc23f44D87826276BF6Fd6b1C372aD24",
		networks.Sepolia:   "0xeE567Fe1712Faf6149d80dA1E6934E354124CfE3",
	}),
	InterfaceMulticall: newTable(InterfaceMulticall, map[networks.ChainID]string{
		networks.Mainnet:   "0x1F98415757620B543A52E61c46B32eB19261F984",
		networks.Optimism:  "0x1F98415757620B543A52E61c46B32eB19261F984",
		networks.BSC:       "0x963Df249eD09c358A4819E39d9Cd5736c3087184",
		networks.Polygon:   "0x1F98415757620B543A52E61c46B32eB19261F984",
		networks.Base:      "0x091e99cb1C49331a94dD62755D168E941AbD0693",
		networks.Arbitrum:  "0xadF885960B47eA2CD9B55E6DAc6B42b7Cb2806dB",
		networks.Avalanche: "0x0139141Cd4Ee88dF3Cdb65881D411bAE271Ef0C2",
		networks.Sepolia:   "0xD7F33bCdb21b359c8ee6F0251d30E94832baAd07",
	}),
	V3Migrator: newTable(V3Migrator, map[networks.ChainID]string{
		networks.Mainnet:   "0xA5644E29708357803b5A882D272c41cC0dF92B34",
		networks.Optimism:  "0xA5644E29708357803b5A882D272c41cC0dF92B34",
		networks.BSC:       "0x32681814957e0C13117ddc0c2aba232b5c9e760f",
		networks.Polygon:   "0xA5644E29708357803b5A882D272c41cC0dF92B34",
		networks.Base:      "0x23cF10b1ee3AdfCA73B0eF17C07F7577e7ACd2d7",
		networks.Arbitrum:  "0xA5644E29708357803b5A882D272c41cC0dF92B34",
		networks.Avalanche: "0x44f5f1f5E452ea8d29C890E8F6e893fC0f1f0f97",
		networks.Sepolia:   "0x729004182cF005CEC8Bd85df140094b6aCbe8b15",
	}),
	V3PositionManager: newTable(V3PositionManager, map[networks.ChainID]string{
		networks.Mainnet:   "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		networks.Optimism:  "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		networks.BSC:       "0x7b8A01B39D58278b5DE7e48c8449c9f4F5170613",
		networks.Polygon:   "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		networks.Base:      "0x03a520b32C04BF3bEEf7BEb72E919cf822Ed34f1",
		networks.Arbitrum:  "0xC36442b4a4522E871399CD717aBDD847Ab11FE88",
		networks.Avalanche: "0x655C406EBFa14EE2006250925e54ec43AD184f8B",
		networks.Sepolia:   "0x1238536071E1c677A632429e3655c799b22cDA52",
	}),
	// monad testnet has no v4 deployment
	V4PositionManager: newTable(V4PositionManager, map[networks.ChainID]string{
		networks.Mainnet:   "0xbD216513d74C8cf14cf4747E6AaA6420FF64ee9e",
		networks.Optimism:  "0x3C3Ea4B57a46241e54610e5f022E5c45859A1017",
		networks.BSC:       "0x7A4a5c919aE2541AeD11041A1AEeE68f1287f95b",
		networks.Polygon:   "0x1Ec2eBf4F37E7363FDfe3551602425af0B3ceef9",
		networks.Base:      "0x7C5f5A4bBd8fD63184577525326123B519429bDc",
		networks.Arbitrum:  "0xd88F38F930b7952f2DB2432Cb002E7abbF3dD869",
		networks.Avalanche: "0xB74b1F14d2754AcfcbBe1a221023a5cf50Ab8ACD",
		networks.Sepolia:   "0x429ba70129df741B2Ca2a85BC3A2a3328e5c09b4",
	}),
	WrappedNative: newTable(WrappedNative, map[networks.ChainID]string{
		networks.Mainnet:      "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		networks.Optimism:     "0x4200000000000000000000000000000000000006",
		networks.BSC:          "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c",
		networks.Polygon:      "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270",
		networks.Base:         "0x4200000000000000000000000000000000000006",
		networks.Arbitrum:     "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1",
		networks.Avalanche:    "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7",
		networks.Sepolia:      "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14",
		networks.MonadTestnet: "0x760AfE86e5de5fa0Ee542fc7B7B713e1c5425701",
	}),
}
