package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/contract"
)

var resolveWithSigner bool

// resolvers maps a role name to the lookup the resolver offers for it. The
// string argument is only used by roles that need an address.
var resolvers = map[string]func(a *app, acct contract.Account, address string) *contract.Handle{
	"erc20": func(a *app, acct contract.Account, address string) *contract.Handle {
		if t := a.resolver.TokenContract(nil, acct, address, resolveWithSigner, 0); t != nil {
			return t.Handle
		}
		return nil
	},
	"weth": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if w := a.resolver.WETHContract(nil, acct, resolveWithSigner, 0); w != nil {
			return w.Handle
		}
		return nil
	},
	"pair": func(a *app, acct contract.Account, address string) *contract.Handle {
		if p := a.resolver.PairContract(nil, acct, address, resolveWithSigner); p != nil {
			return p.Handle
		}
		return nil
	},
	"v2-router": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if r := a.resolver.V2RouterContract(nil, acct); r != nil {
			return r.Handle
		}
		return nil
	},
	"v3-migrator": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if m := a.resolver.V2MigratorContract(nil, acct); m != nil {
			return m.Handle
		}
		return nil
	},
	"multicall": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if m := a.resolver.InterfaceMulticall(nil, acct, 0); m != nil {
			return m.Handle
		}
		return nil
	},
	"v3-positions": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if pm := a.resolver.V3NFTPositionManagerContract(nil, &contract.Seen{}, acct, resolveWithSigner, 0); pm != nil {
			return pm.Handle
		}
		return nil
	},
	"v4-positions": func(a *app, acct contract.Account, _ string) *contract.Handle {
		if nft := a.resolver.V4NFTPositionManagerContract(nil, &contract.Seen{}, acct, resolveWithSigner, 0); nft != nil {
			return nft.Handle
		}
		return nil
	},
}

var addressRoles = map[string]bool{"erc20": true, "pair": true}

func roleNames() []string {
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runResolve(a *app, args []string) error {
	role := strings.ToLower(args[0])
	lookup, found := resolvers[role]
	if !found {
		return fmt.Errorf("unknown role %q, valid roles: %s", args[0], strings.Join(roleNames(), ", "))
	}
	address := ""
	if len(args) > 1 {
		address = args[1]
	}
	if addressRoles[role] && address == "" {
		return fmt.Errorf("%s needs a contract address", role)
	}
	acct, err := a.account()
	if err != nil {
		return err
	}

	h := lookup(a, acct, address)
	if h == nil {
		a.ui.Warn("No %s contract for this account on %s.", role, a.networkName(acct.ChainID))
		return nil
	}
	mode := "read only"
	if !h.ReadOnly() {
		mode = "signer " + h.From().Hex()
	}
	a.ui.KeyValue([][2]string{
		{"Interface", h.Descriptor().String()},
		{"Address", h.Address().Hex()},
		{"Network", fmt.Sprintf("%s (chain %d)", a.networkName(h.ChainID()), h.ChainID())},
		{"Mode", mode},
	})
	return nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <role> [address]",
	Short: "Resolve a contract handle for the connected account",
	Long: fmt.Sprintf(`Resolve a contract handle the way the wallet does and show what it is bound to.
Roles: %s. erc20 and pair need the contract address.`, strings.Join(roleNames(), ", ")),
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(current, args)
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveWithSigner, "with-signer", "s", false, "bind the connected account's signer when one is unlocked")
	rootCmd.AddCommand(resolveCmd)
}
