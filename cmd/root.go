// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/config"
	"github.com/tranvictor/contractkit/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contractkit",
	Short: "Resolve and use the wallet's well known contracts on EVM networks",
	Long: fmt.Sprintf(`contractkit resolves contract handles for the connected account the way a
wallet front end does: one handle per address, interface, signer preference
and network, rebuilt only when one of them changes.

It knows the Uniswap router, migrator, multicall and position manager
deployments of every supported network and the wrapped native token of each.
Custom networks, including their contract addresses, are read from
%s.

Nodes are picked from each network's defaults. You can put your own node in
front of them by setting the following env vars:
%s`,
		networks.CustomNetworksDir(),
		nodeVarsHelp(),
	),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAppFn()
		if err != nil {
			return err
		}
		current = a
		return a.unlockSigners()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current == nil {
			return
		}
		if config.Metrics {
			current.printMetrics()
		}
		current.close()
	},
}

func nodeVarsHelp() string {
	lines := []string{}
	for i, n := range networks.Builtins() {
		lines = append(lines, fmt.Sprintf("\t%d. For %s: %s", i+1, n.GetName(), n.GetNodeVariableName()))
	}
	return strings.Join(lines, "\n")
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&config.Network, "network", "k", "", "network name, overrides the session's network, see contractkit networks")
	pf.Uint64Var(&config.ChainID, "chain", 0, "chain id, overrides --network and the session's network")
	pf.StringVar(&config.Signer, "signer", "", "hex private key to unlock for this run, $CONTRACTKIT_SIGNER_KEY is used when empty")
	pf.StringVar(&config.Keystore, "keystore", "", "keystore file to unlock for this run, the password is prompted")
	pf.StringVar(&config.LogLevel, "log-level", "warn", "debug, info, warn or error")
	pf.BoolVar(&config.Metrics, "metrics", false, "print resolver counters after the command")
	pf.StringVar(&config.Session, "session", "", "session file (default ~/.contractkit/session.json)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
