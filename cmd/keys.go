package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/accounts"
	"github.com/tranvictor/contractkit/ui"
)

var keysDir string

func runKeysImport(a *app) error {
	key := strings.TrimSpace(a.ui.Password("Private key (hex)"))
	addr, _, err := accounts.PrivateKeyFromHex(key)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	passphrase := a.ui.Password("Passphrase")
	if passphrase != a.ui.Password("Repeat passphrase") {
		return fmt.Errorf("passphrases don't match")
	}
	dir := keysDir
	if dir == "" {
		dir = accounts.KeystoreDir()
	}
	path, err := accounts.StorePrivateKeyWithKeystore(dir, key, passphrase)
	if err != nil {
		return err
	}
	a.ui.Success("Imported %s", addr)
	a.ui.Info("Keystore: %s", path)
	a.ui.Info("Unlock it with: contractkit --keystore %s <command>", path)
	return nil
}

func runKeysList(a *app) error {
	dir := keysDir
	if dir == "" {
		dir = accounts.KeystoreDir()
	}
	files, err := accounts.KeystoreFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		a.ui.Info("No keystores in %s.", dir)
		return nil
	}
	rows := [][]string{}
	for _, f := range files {
		addr, err := accounts.KeystoreAddress(f)
		if err != nil {
			addr = a.ui.Style(ui.Styled(err.Error(), ui.SeverityWarn))
		} else {
			addr = common.HexToAddress(addr).Hex()
		}
		rows = append(rows, []string{addr, f})
	}
	a.ui.Table([]string{"Address", "File"}, rows)
	return nil
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the keystores signers are unlocked from",
}

var keysImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Encrypt a hex private key into a keystore file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeysImport(current)
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the keystore files and their addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeysList(current)
	},
}

func init() {
	keysCmd.PersistentFlags().StringVar(&keysDir, "dir", "", "keystore directory (default ~/.contractkit/keystores)")
	keysCmd.AddCommand(keysImportCmd, keysListCmd)
	rootCmd.AddCommand(keysCmd)
}
