package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/addresses"
	kitcommon "github.com/tranvictor/contractkit/common"
	"github.com/tranvictor/contractkit/networks"
	"github.com/tranvictor/contractkit/provider"
	"github.com/tranvictor/contractkit/ui"
)

var probeNetworks bool

type blockProber interface {
	CurrentBlock(ctx context.Context) (uint64, error)
}

func runNetworks(ctx context.Context, a *app, args []string) error {
	if len(args) == 1 {
		n, err := a.lookupNetwork(args[0])
		if err != nil {
			return err
		}
		return showNetwork(ctx, a, n)
	}

	list := a.registry.Networks()
	var blocks map[networks.ChainID]string
	if probeNetworks {
		blocks = probe(ctx, a, list)
	}
	rows := [][]string{}
	for _, n := range list {
		row := []string{
			n.GetName(),
			n.GetChainID().String(),
			n.GetNativeTokenSymbol(),
			strings.Join(n.GetAlternativeNames(), ", "),
			fmt.Sprintf("%d", len(provider.Nodes(n))),
		}
		if probeNetworks {
			row = append(row, blocks[n.GetChainID()])
		}
		rows = append(rows, row)
	}
	headers := []string{"Name", "Chain ID", "Token", "Aliases", "Nodes"}
	if probeNetworks {
		headers = append(headers, "Block")
	}
	a.ui.Table(headers, rows)
	a.ui.Info("Custom networks are read from %s.", networks.CustomNetworksDir())
	return nil
}

func showNetwork(ctx context.Context, a *app, n networks.Network) error {
	a.ui.Section(n.GetName())
	a.ui.KeyValue([][2]string{
		{"Chain ID", n.GetChainID().String()},
		{"Aliases", strings.Join(n.GetAlternativeNames(), ", ")},
		{"Native token", fmt.Sprintf("%s (%d decimals)", n.GetNativeTokenSymbol(), n.GetNativeTokenDecimal())},
		{"Block time", n.GetBlockTime().String()},
		{"Node env var", n.GetNodeVariableName()},
	})

	nodeRows := [][]string{}
	for _, node := range provider.Nodes(n) {
		nodeRows = append(nodeRows, []string{node[0], node[1]})
	}
	if len(nodeRows) > 0 {
		a.ui.Table([]string{"Node", "URL"}, nodeRows)
	}

	book := a.resolver.Book()
	roleRows := [][]string{}
	for _, role := range addresses.Roles {
		addr := book.Table(role).Hex(n.GetChainID())
		if addr == "" {
			addr = a.ui.Style(ui.Styled("not deployed", ui.SeverityWarn))
		}
		roleRows = append(roleRows, []string{string(role), addr})
	}
	a.ui.Table([]string{"Role", "Address"}, roleRows)

	if probeNetworks {
		blocks := probe(ctx, a, []networks.Network{n})
		a.ui.KeyValue([][2]string{{"Latest block", blocks[n.GetChainID()]}})
	}
	return nil
}

// probe asks every network's provider for its latest block, concurrently.
func probe(ctx context.Context, a *app, list []networks.Network) map[networks.ChainID]string {
	stop := a.ui.Spinner(fmt.Sprintf("Probing %d networks...", len(list)))
	defer stop()
	ctx, cancel := a.timeout(ctx)
	defer cancel()

	var mu sync.Mutex
	res := map[networks.ChainID]string{}
	set := func(id networks.ChainID, v string) {
		mu.Lock()
		defer mu.Unlock()
		res[id] = v
	}
	funcs := []func() error{}
	for _, n := range list {
		n := n
		funcs = append(funcs, func() error {
			p := a.providers.Provider(n.GetChainID())
			prober, ok := p.(blockProber)
			if p == nil || !ok {
				set(n.GetChainID(), "unreachable")
				return fmt.Errorf("%s: no provider", n.GetName())
			}
			block, err := prober.CurrentBlock(ctx)
			if err != nil {
				set(n.GetChainID(), "unreachable")
				return fmt.Errorf("%s: %w", n.GetName(), err)
			}
			set(n.GetChainID(), fmt.Sprintf("%d", block))
			return nil
		})
	}
	failed, err := kitcommon.RunParallel(funcs...)
	if failed > 0 {
		a.log.Sugar().Debugw("probe failures", "count", failed, "error", err)
	}
	return res
}

var networksCmd = &cobra.Command{
	Use:     "networks [name]",
	Aliases: []string{"network"},
	Short:   "List supported networks, or show one with its contract addresses",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNetworks(cmd.Context(), current, args)
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return networks.Default().Names(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	networksCmd.Flags().BoolVar(&probeNetworks, "probe", false, "query each network's node for its latest block")
	rootCmd.AddCommand(networksCmd)
}
