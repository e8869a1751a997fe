package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/abis"
	kitcommon "github.com/tranvictor/contractkit/common"
	"github.com/tranvictor/contractkit/contract"
)

type tokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
	Balance     *big.Int
	Block       uint64
}

// readToken batches the reads through multicall when the chain has one.
func readToken(ctx context.Context, token *contract.ERC20, mc *contract.Multicall, holder common.Address) (tokenInfo, error) {
	info := tokenInfo{}
	withBalance := holder != (common.Address{})
	if mc != nil {
		erc20 := abis.ERC20()
		batch := mc.NewBatch().
			Register(&info.Name, token.Address(), erc20, "name").
			Register(&info.Symbol, token.Address(), erc20, "symbol").
			Register(&info.Decimals, token.Address(), erc20, "decimals").
			Register(&info.TotalSupply, token.Address(), erc20, "totalSupply")
		if withBalance {
			batch.Register(&info.Balance, token.Address(), erc20, "balanceOf", holder)
		}
		block, err := batch.Do(ctx)
		if err != nil {
			return info, err
		}
		info.Block = block
		return info, nil
	}

	var err error
	if info.Name, err = token.Name(ctx); err != nil {
		return info, err
	}
	if info.Symbol, err = token.Symbol(ctx); err != nil {
		return info, err
	}
	if info.Decimals, err = token.Decimals(ctx); err != nil {
		return info, err
	}
	if info.TotalSupply, err = token.TotalSupply(ctx); err != nil {
		return info, err
	}
	if withBalance {
		if info.Balance, err = token.BalanceOf(ctx, holder); err != nil {
			return info, err
		}
	}
	return info, nil
}

func runToken(ctx context.Context, a *app, args []string) error {
	acct, err := a.account()
	if err != nil {
		return err
	}
	if _, err := parseAddress(args[0]); err != nil {
		return err
	}
	holder := acct.Address
	if len(args) > 1 {
		if holder, err = parseAddress(args[1]); err != nil {
			return err
		}
	}

	token := a.resolver.TokenContract(nil, acct, args[0], false, 0)
	if token == nil {
		return fmt.Errorf("couldn't resolve token %s on %s", args[0], a.networkName(acct.ChainID))
	}
	mc := a.resolver.InterfaceMulticall(nil, acct, 0)

	ctx, cancel := a.timeout(ctx)
	defer cancel()
	stop := a.ui.Spinner(fmt.Sprintf("Reading %s...", token.Address().Hex()))
	info, err := readToken(ctx, token, mc, holder)
	stop()
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"Token", token.Address().Hex()},
		{"Label", a.labels.GetName(token.Address().Hex())},
		{"Network", a.networkName(token.ChainID())},
		{"Name", info.Name},
		{"Symbol", info.Symbol},
		{"Decimals", fmt.Sprintf("%d", info.Decimals)},
		{"Total supply", fmt.Sprintf("%s %s", kitcommon.BigToFloatString(info.TotalSupply, uint64(info.Decimals)), info.Symbol)},
	}
	if info.Balance != nil {
		rows = append(rows, [2]string{
			"Balance of " + holder.Hex(),
			fmt.Sprintf("%s %s", kitcommon.BigToFloatString(info.Balance, uint64(info.Decimals)), info.Symbol),
		})
	}
	if info.Block != 0 {
		rows = append(rows, [2]string{"Block", fmt.Sprintf("%d", info.Block)})
	}
	a.ui.KeyValue(rows)
	return nil
}

var tokenCmd = &cobra.Command{
	Use:   "token <address> [holder]",
	Short: "Show an ERC20 token and the balance of the holder, the connected account by default",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToken(cmd.Context(), current, args)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
