package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/halcyon-labs/coinkit/pkg/sighash"
)

var (
	sighashRequestPath string
	sighashRawHex      string
	sighashIndex       int
	sighashSubscript   string
	sighashTypeName    string
)

var sighashCmd = &cobra.Command{
	Use:   "sighash",
	Short: "compute the legacy signature hash for a transaction input",
	Long: `Compute the digest an input signature commits to.

The transaction comes either from a YAML request file (--request) or from
raw wire-format hex (--raw). Request files give output amounts in whole
coins as decimal strings:

  version: 1
  lock_time: 0
  sighash_type: all
  input_index: 0
  subscript: 76a914...88ac
  inputs:
    - prev_hash: <32-byte hex, internal order>
      vout: 0
      sequence: 4294967295
  outputs:
    - amount: "0.5"
      script: 76a914...88ac`,
	RunE: runSighash,
}

func init() {
	sighashCmd.Flags().StringVar(&sighashRequestPath, "request", "", "YAML transaction request file")
	sighashCmd.Flags().StringVar(&sighashRawHex, "raw", "", "raw transaction hex (alternative to --request)")
	sighashCmd.Flags().IntVar(&sighashIndex, "index", 0, "input index (with --raw)")
	sighashCmd.Flags().StringVar(&sighashSubscript, "subscript", "", "subscript hex (with --raw)")
	sighashCmd.Flags().StringVar(&sighashTypeName, "type", "all", "sighash type (with --raw)")
}

// satoshisPerCoin converts whole-coin decimal amounts to base units.
var satoshisPerCoin = decimal.NewFromInt(100_000_000)

type requestInput struct {
	PrevHash string  `yaml:"prev_hash"`
	Vout     uint32  `yaml:"vout"`
	Sequence *uint32 `yaml:"sequence"`
}

type requestOutput struct {
	Amount string `yaml:"amount"`
	Script string `yaml:"script"`
}

type sighashRequest struct {
	Version     int32           `yaml:"version"`
	LockTime    uint32          `yaml:"lock_time"`
	SighashType string          `yaml:"sighash_type"`
	InputIndex  int             `yaml:"input_index"`
	Subscript   string          `yaml:"subscript"`
	Inputs      []requestInput  `yaml:"inputs"`
	Outputs     []requestOutput `yaml:"outputs"`
}

func runSighash(cmd *cobra.Command, args []string) error {
	var (
		tx        *sighash.Transaction
		index     int
		subscript []byte
		hashType  sighash.Type
		err       error
	)

	switch {
	case sighashRequestPath != "":
		tx, index, subscript, hashType, err = loadRequest(sighashRequestPath)
		if err != nil {
			return err
		}
	case sighashRawHex != "":
		raw, derr := hex.DecodeString(sighashRawHex)
		if derr != nil {
			return fmt.Errorf("decoding --raw: %w", derr)
		}
		tx, err = sighash.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing transaction: %w", err)
		}
		index = sighashIndex
		subscript, err = hex.DecodeString(sighashSubscript)
		if err != nil {
			return fmt.Errorf("decoding --subscript: %w", err)
		}
		var ok bool
		hashType, ok = sighash.ParseType(sighashTypeName)
		if !ok {
			return fmt.Errorf("unsupported sighash type %q", sighashTypeName)
		}
	default:
		return fmt.Errorf("either --request or --raw is required")
	}

	if index < 0 || index >= len(tx.Inputs) {
		return fmt.Errorf("input index %d out of range for %d inputs", index, len(tx.Inputs))
	}

	slog.Debug("computing signature hash",
		"inputs", len(tx.Inputs), "outputs", len(tx.Outputs),
		"index", index, "type", hashType)

	digest := sighash.HashForSignature(tx, index, subscript, hashType)
	cmd.Printf("%x\n", digest)
	return nil
}

// loadRequest reads and validates a YAML transaction request.
func loadRequest(path string) (*sighash.Transaction, int, []byte, sighash.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, nil, 0, err
	}

	var req sighashRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, 0, nil, 0, fmt.Errorf("parsing request: %w", err)
	}

	hashType, ok := sighash.ParseType(req.SighashType)
	if !ok {
		return nil, 0, nil, 0, fmt.Errorf("unsupported sighash type %q", req.SighashType)
	}

	subscript, err := hex.DecodeString(req.Subscript)
	if err != nil {
		return nil, 0, nil, 0, fmt.Errorf("decoding subscript: %w", err)
	}

	tx := &sighash.Transaction{
		Version:  req.Version,
		LockTime: req.LockTime,
	}
	for i, in := range req.Inputs {
		prev, err := hex.DecodeString(in.PrevHash)
		if err != nil || len(prev) != 32 {
			return nil, 0, nil, 0, fmt.Errorf("input %d: prev_hash must be 32 hex bytes", i)
		}
		input := sighash.TxInput{Sequence: 0xFFFFFFFF}
		copy(input.PreviousOutPoint.Hash[:], prev)
		input.PreviousOutPoint.Index = in.Vout
		if in.Sequence != nil {
			input.Sequence = *in.Sequence
		}
		tx.Inputs = append(tx.Inputs, input)
	}
	for i, out := range req.Outputs {
		value, err := parseAmount(out.Amount)
		if err != nil {
			return nil, 0, nil, 0, fmt.Errorf("output %d: %w", i, err)
		}
		script, err := hex.DecodeString(out.Script)
		if err != nil {
			return nil, 0, nil, 0, fmt.Errorf("output %d: decoding script: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, sighash.TxOutput{Value: value, PkScript: script})
	}

	return tx, req.InputIndex, subscript, hashType, nil
}

// parseAmount converts a whole-coin decimal string to base units.
func parseAmount(s string) (uint64, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	sats := amount.Mul(satoshisPerCoin)
	if !sats.IsInteger() || sats.IsNegative() {
		return 0, fmt.Errorf("amount %q is not a whole number of base units", s)
	}
	return uint64(sats.IntPart()), nil
}
