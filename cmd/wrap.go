package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	kitcommon "github.com/tranvictor/contractkit/common"
	"github.com/tranvictor/contractkit/config"
	"github.com/tranvictor/contractkit/contract"
)

var wrapYes bool

func runWrap(ctx context.Context, a *app, args []string) error {
	acct, err := a.account()
	if err != nil {
		return err
	}
	if !acct.IsConnected() {
		return fmt.Errorf("no account connected, see contractkit connect")
	}
	amount, err := kitcommon.FloatStringToBig(args[0], a.nativeDecimals(acct.ChainID))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}
	if amount.Sign() == 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	if !a.keyring.Has(acct.Address) {
		return fmt.Errorf("%s is not unlocked, use --signer or --keystore", acct.Address.Hex())
	}

	weth := a.resolver.WETHContract(nil, acct, true, 0)
	if weth == nil {
		return fmt.Errorf("no wrapped native token on %s", a.networkName(acct.ChainID))
	}
	if weth.ReadOnly() {
		return fmt.Errorf("%s: %w", weth, contract.ErrReadOnly)
	}

	opts, err := a.txOptions()
	if err != nil {
		return err
	}
	opts.Value = amount

	network := a.networkName(acct.ChainID)
	a.ui.Critical(
		"Wrapping %s native token of %s into %s from %s",
		kitcommon.ReadableNumber(args[0]), network, weth.Address().Hex(), acct.Address.Hex(),
	)
	if !config.DryRun && !wrapYes && !a.ui.Confirm("Send the transaction?", false) {
		a.ui.Warn("Aborted.")
		return nil
	}

	ctx, cancel := a.timeout(ctx)
	defer cancel()
	tx, err := weth.Deposit(ctx, opts)
	if err != nil {
		return err
	}
	a.log.Info("wrap transaction built",
		zap.String("hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()),
		zap.Bool("dryRun", config.DryRun),
	)
	if config.DryRun {
		raw, err := tx.MarshalBinary()
		if err != nil {
			return err
		}
		printTx(a.ui, a.analyzer.AnalyzeOffline(tx))
		a.ui.Info("Signed transaction, not broadcasted:")
		a.ui.Info("%s", hexutil.Encode(raw))
		return nil
	}
	a.ui.Success("Broadcasted %s", tx.Hash().Hex())
	return nil
}

var wrapCmd = &cobra.Command{
	Use:   "wrap <amount>",
	Short: "Wrap native token of the connected account into the network's wrapped token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrap(cmd.Context(), current, args)
	},
}

func init() {
	f := wrapCmd.Flags()
	f.BoolVar(&config.DryRun, "dry", false, "sign the transaction and print it without broadcasting")
	f.Float64VarP(&config.GasPrice, "gasprice", "p", 0, "gas price in gwei, asked from the node when 0")
	f.Uint64VarP(&config.GasLimit, "gas", "g", 0, "gas limit, estimated when 0")
	f.Int64VarP(&config.Nonce, "nonce", "n", -1, "nonce, asked from the node when negative")
	f.BoolVarP(&wrapYes, "yes", "y", false, "don't ask for confirmation")
	rootCmd.AddCommand(wrapCmd)
}
