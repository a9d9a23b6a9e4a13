package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyon-labs/coinkit/pkg/address"
	"github.com/halcyon-labs/coinkit/pkg/coin"
)

var (
	addrCoin string
	addrType string
	addrHash string
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "decode and encode Base58Check addresses",
}

var addressDecodeCmd = &cobra.Command{
	Use:   "decode <address>",
	Short: "validate and dissect a Base58Check address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := coin.FromName(addrCoin)
		if !ok {
			return fmt.Errorf("unsupported coin %q", addrCoin)
		}
		addr, err := address.DecodeLegacy(args[0], c)
		if err != nil {
			return err
		}
		cmd.Printf("coin:   %s\n", addr.Coin)
		cmd.Printf("type:   %s\n", addr.Type)
		cmd.Printf("hash:   %x\n", addr.Data)
		if bech := addr.Bech32(); bech != "" {
			cmd.Printf("bech32: %s\n", bech)
		}
		return nil
	},
}

var addressEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "build an address from a hex hash (SHA-256 of a key or script)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := coin.FromName(addrCoin)
		if !ok {
			return fmt.Errorf("unsupported coin %q", addrCoin)
		}
		var typ address.Type
		switch addrType {
		case "pubkeyhash":
			typ = address.PubKeyHash
		case "scripthash":
			typ = address.ScriptHash
		case "wif":
			typ = address.WIF
		default:
			return fmt.Errorf("unsupported address type %q", addrType)
		}

		hash, err := hex.DecodeString(addrHash)
		if err != nil {
			return fmt.Errorf("decoding --hash: %w", err)
		}
		addr, err := address.NewLegacy(hash, c, typ)
		if err != nil {
			return err
		}
		cmd.Printf("base58: %s\n", addr.Base58())
		if bech := addr.Bech32(); bech != "" {
			cmd.Printf("bech32: %s\n", bech)
		}
		return nil
	},
}

func init() {
	addressCmd.PersistentFlags().StringVar(&addrCoin, "coin", "bitcoin", "network name")
	addressEncodeCmd.Flags().StringVar(&addrType, "type", "pubkeyhash", "address type: pubkeyhash, scripthash, wif")
	addressEncodeCmd.Flags().StringVar(&addrHash, "hash", "", "hex hash to encode (required)")
	addressEncodeCmd.MarkFlagRequired("hash")
	addressCmd.AddCommand(addressDecodeCmd, addressEncodeCmd)
}
