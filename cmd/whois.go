package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/db"
)

func runWhois(a *app, args []string) error {
	input := args[0]
	if common.IsHexAddress(input) {
		addr := common.HexToAddress(input)
		a.ui.KeyValue([][2]string{
			{"Address", addr.Hex()},
			{"Label", a.labels.GetName(addr.Hex())},
		})
		return nil
	}
	matches, scores := a.labels.GetAddresses(input)
	if len(matches) == 0 {
		return fmt.Errorf("no address is labelled like %q, labels are read from %s", input, db.LabelsFile())
	}
	rows := [][]string{}
	for i, m := range matches {
		rows = append(rows, []string{m.Desc, m.Address, fmt.Sprintf("%d", scores[i])})
	}
	a.ui.Table([]string{"Label", "Address", "Score"}, rows)
	return nil
}

var whoisCmd = &cobra.Command{
	Use:   "whois <address|label>",
	Short: "Label an address, or search addresses by label",
	Long: fmt.Sprintf(`Label an address, or search addresses by label.
Known contracts of every network are labelled. Your own labels are read from
%s, a json object from address to label.`, db.LabelsFile()),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWhois(current, args)
	},
}

func init() {
	rootCmd.AddCommand(whoisCmd)
}
