// Package config holds the values of the global command line flags.
package config

var (
	Network  string
	ChainID  uint64
	Signer   string
	Keystore string
	LogLevel string
	DryRun   bool
	Metrics  bool
	Session  string
)

// Transaction overrides. Zero means ask the node.
var (
	GasPrice float64
	GasLimit uint64
	Nonce    int64 = -1
)
