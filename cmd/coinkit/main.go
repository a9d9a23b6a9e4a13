// coinkit CLI - multi-coin key derivation, addresses and signature hashes
//
// Example usage:
//
//	# Derive keys from a seed, hardened child 0 then child 1
//	coinkit derive --coin bitcoin --seed 000102030405060708090a0b0c0d0e0f 0h 1
//
//	# Decode a Base58Check address
//	coinkit address decode 1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs --coin bitcoin
//
//	# Compute the legacy signature hash for a YAML transaction request
//	coinkit sighash --request tx.yaml
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/coinkit/internal/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:           "coinkit",
	Short:         "multi-coin key derivation, address and sighash toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger.Init(&logger.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("coinkit v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logs")
	rootCmd.AddCommand(versionCmd, deriveCmd, addressCmd, sighashCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
