package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	kitcommon "github.com/tranvictor/contractkit/common"
	"github.com/tranvictor/contractkit/db"
	"github.com/tranvictor/contractkit/txanalyzer"
	"github.com/tranvictor/contractkit/ui"
)

var decodeTo string

func labelled(u ui.UI, v txanalyzer.Value) string {
	if v.Label == "" {
		return v.Value
	}
	sev := ui.SeveritySuccess
	if v.Label == db.Unknown {
		sev = ui.SeverityError
	}
	return fmt.Sprintf("%s (%s)", v.Value, u.Style(ui.Styled(v.Label, sev)))
}

func printParams(u ui.UI, params []txanalyzer.ParamResult) {
	for _, p := range params {
		if len(p.Tuple) > 0 {
			u.Info("%s (%s):", p.Name, p.Type)
			printParams(u.Indent(), p.Tuple)
			continue
		}
		values := make([]string, 0, len(p.Value))
		for _, v := range p.Value {
			values = append(values, labelled(u, v))
		}
		u.Info("%s (%s): %s", p.Name, p.Type, strings.Join(values, ", "))
	}
}

func printCall(u ui.UI, fc *txanalyzer.FunctionCall) {
	u.Info("Contract: %s", labelled(u, fc.Destination))
	if fc.Value != nil && fc.Value.Sign() > 0 {
		u.Info("Value: %s", kitcommon.BigToFloatString(fc.Value, 18))
	}
	if fc.Error != "" {
		u.Error("%s", fc.Error)
		return
	}
	u.Info("Method: %s.%s", fc.Contract, fc.Method)
	if len(fc.Params) > 0 {
		u.Info("Params:")
		printParams(u.Indent(), fc.Params)
	}
	for i, inner := range fc.DecodedFunctionCalls {
		u.Info("Call %d:", i+1)
		printCall(u.Indent(), inner)
	}
}

func printTx(u ui.UI, r *txanalyzer.TxResult) {
	rows := [][2]string{{"Tx hash", r.Hash}}
	if r.ChainID != "" {
		rows = append(rows, [2]string{"Chain ID", r.ChainID})
	}
	if r.From.Value != "" {
		rows = append(rows, [2]string{"From", labelled(u, r.From)})
	}
	if r.To.Value != "" {
		rows = append(rows, [2]string{"To", labelled(u, r.To)})
	}
	rows = append(rows,
		[2]string{"Value", r.Value},
		[2]string{"Nonce", r.Nonce},
		[2]string{"Gas price", r.GasPrice + " gwei"},
		[2]string{"Gas limit", r.GasLimit},
		[2]string{"Tx type", r.TxType},
	)
	u.KeyValue(rows)
	if r.Call != nil {
		printCall(u, r.Call)
	}
}

// runDecode takes a raw transaction, or calldata together with --to.
func runDecode(a *app, args []string) error {
	data, err := hexutil.Decode(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("not hex: %w", err)
	}
	if decodeTo == "" {
		tx := new(types.Transaction)
		if err := tx.UnmarshalBinary(data); err != nil {
			return fmt.Errorf("not a raw transaction, pass --to to decode calldata: %w", err)
		}
		printTx(a.ui, a.analyzer.AnalyzeOffline(tx))
		return nil
	}
	to, err := parseAddress(decodeTo)
	if err != nil {
		return err
	}
	printCall(a.ui, a.analyzer.AnalyzeFunctionCallRecursively(big.NewInt(0), to.Hex(), data))
	return nil
}

var decodeCmd = &cobra.Command{
	Use:   "decode <raw tx|calldata>",
	Short: "Decode a raw transaction, or calldata sent to --to, against the known contract interfaces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode(current, args)
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeTo, "to", "", "decode the argument as calldata sent to this address")
	rootCmd.AddCommand(decodeCmd)
}
