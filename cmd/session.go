package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func runConnect(a *app, args []string) error {
	acct, err := a.account()
	if err != nil {
		return err
	}
	var addrHex string
	switch {
	case len(args) == 1:
		addrHex = args[0]
	case len(a.keyring.Addresses()) > 0:
		addrHex = a.keyring.Addresses()[0].Hex()
	default:
		return fmt.Errorf("pass an address, or unlock one with --keystore or --signer")
	}
	addr, err := parseAddress(addrHex)
	if err != nil {
		return err
	}
	if err := a.session.Connect(addr, acct.ChainID); err != nil {
		return fmt.Errorf("couldn't save the session: %w", err)
	}
	a.ui.Success("Connected %s on %s.", addr.Hex(), a.networkName(acct.ChainID))
	if !a.keyring.Has(addr) {
		a.ui.Info("No signer is unlocked for it, contracts will be read only until you pass --keystore or --signer.")
	}
	return nil
}

func runDisconnect(a *app) error {
	if err := a.session.Disconnect(); err != nil {
		return fmt.Errorf("couldn't save the session: %w", err)
	}
	a.ui.Success("Disconnected.")
	return nil
}

func runSwitch(a *app, args []string) error {
	n, err := a.lookupNetwork(args[0])
	if err != nil {
		return err
	}
	if err := a.session.Switch(n.GetChainID()); err != nil {
		return fmt.Errorf("couldn't save the session: %w", err)
	}
	a.ui.Success("Switched to %s (chain %d).", n.GetName(), n.GetChainID())
	return nil
}

func runStatus(a *app) error {
	acct, err := a.account()
	if err != nil {
		return err
	}
	who := "not connected"
	if acct.IsConnected() {
		who = acct.Address.Hex()
	}
	signer := "none"
	if acct.IsConnected() && a.keyring.Has(acct.Address) {
		signer = "unlocked"
	}
	a.ui.KeyValue([][2]string{
		{"Account", who},
		{"Network", fmt.Sprintf("%s (chain %d)", a.networkName(acct.ChainID), acct.ChainID)},
		{"Signer", signer},
		{"Session", a.session.Path()},
	})
	return nil
}

var connectCmd = &cobra.Command{
	Use:   "connect [address]",
	Short: "Connect an account, on the network given by --network or --chain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConnect(current, args)
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the connected account, keeping the network",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDisconnect(current)
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch <network>",
	Short: "Switch the session to another network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSwitch(current, args)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connected account and network",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(current)
	},
}

func init() {
	rootCmd.AddCommand(connectCmd, disconnectCmd, switchCmd, statusCmd)
}
