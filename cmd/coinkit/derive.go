package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/coinkit/pkg/address"
	"github.com/halcyon-labs/coinkit/pkg/coin"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
	"github.com/halcyon-labs/coinkit/pkg/keys"
)

var (
	deriveCoin       string
	deriveSeedHex    string
	derivePhrase     string
	derivePassphrase string
)

var deriveCmd = &cobra.Command{
	Use:   "derive [step...]",
	Short: "derive keys from a seed or recovery phrase",
	Long: `Derive a master key and walk the given child steps.

Each step is a child index; append "h" for a hardened child:
  coinkit derive --coin bitcoin --seed 000102030405060708090a0b0c0d0e0f 0h 1`,
	RunE: runDerive,
}

func init() {
	deriveCmd.Flags().StringVar(&deriveCoin, "coin", "bitcoin", "network name")
	deriveCmd.Flags().StringVar(&deriveSeedHex, "seed", "", "seed bytes in hex")
	deriveCmd.Flags().StringVar(&derivePhrase, "phrase", "", "recovery phrase to stretch into a seed")
	deriveCmd.Flags().StringVar(&derivePassphrase, "passphrase", "", "optional passphrase for --phrase")
}

func runDerive(cmd *cobra.Command, args []string) error {
	c, ok := coin.FromName(deriveCoin)
	if !ok {
		return fmt.Errorf("unsupported coin %q", deriveCoin)
	}

	var seed []byte
	switch {
	case deriveSeedHex != "":
		var err error
		seed, err = hex.DecodeString(deriveSeedHex)
		if err != nil {
			return fmt.Errorf("decoding seed: %w", err)
		}
	case derivePhrase != "":
		seed = hashutil.Seed(derivePhrase, derivePassphrase)
	default:
		return fmt.Errorf("either --seed or --phrase is required")
	}

	key := keys.MasterKey(seed, c)
	if err := printKey(cmd, "m", key); err != nil {
		return err
	}

	label := "m"
	for _, arg := range args {
		node, err := parseStep(arg)
		if err != nil {
			return err
		}
		key, err = key.Derive(node)
		if err != nil {
			return fmt.Errorf("deriving %q: %w", arg, err)
		}
		label += "/" + arg
		if err := printKey(cmd, label, key); err != nil {
			return err
		}
	}
	return nil
}

// parseStep reads a single child index, "h"-suffixed for hardened.
func parseStep(s string) (keys.Node, error) {
	hardened := strings.HasSuffix(s, "h")
	index, err := strconv.ParseUint(strings.TrimSuffix(s, "h"), 10, 31)
	if err != nil {
		return keys.Node{}, fmt.Errorf("invalid derivation step %q: %w", s, err)
	}
	if hardened {
		return keys.Hardened(uint32(index)), nil
	}
	return keys.NotHardened(uint32(index)), nil
}

func printKey(cmd *cobra.Command, label string, key keys.PrivateKey) error {
	pub, err := key.PublicKey()
	if err != nil {
		return err
	}

	cmd.Printf("%s\n", label)
	if key.Type() != keys.PublicOnly {
		encoded, err := key.Encode()
		if err != nil {
			return err
		}
		cmd.Printf("  key:     %s\n", encoded)
	}
	cmd.Printf("  pubkey:  %x\n", pub.SerializeCompressed())

	if key.Coin().UTXO() {
		pubHash := sha256.Sum256(pub.SerializeCompressed())
		addr, err := address.NewLegacy(pubHash[:], key.Coin(), address.PubKeyHash)
		if err != nil {
			return err
		}
		cmd.Printf("  address: %s\n", addr.Base58())
		if bech := addr.Bech32(); bech != "" {
			cmd.Printf("  bech32:  %s\n", bech)
		}
	} else {
		cmd.Printf("  address: %s\n", address.Ethereum(pub))
	}
	return nil
}
