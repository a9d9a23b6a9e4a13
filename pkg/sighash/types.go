// Package sighash implements the legacy transaction signature-hash
// algorithm and the transaction wire format it serializes.
//
// The algorithm reproduces the historical behavior of the original client
// bit for bit, including its quirks:
//
//   - SIGHASH_SINGLE with an input index past the last output returns the
//     fixed digest 0x01 followed by 31 zero bytes instead of failing
//   - the ANYONECANPAY input reduction triggers only when the flag byte
//     equals 0x80 exactly, not when the bit is merely set
//
// Both are consensus-observable; "fixing" them would produce signatures
// that validate against a different transaction than the network checks.
package sighash

import "fmt"

// Type is the signature-hash flag byte appended to signatures.
type Type byte

const (
	All    Type = 0x01
	None   Type = 0x02
	Single Type = 0x03

	// AnyOneCanPay restricts the signature to a single input.
	AnyOneCanPay Type = 0x80

	// baseMask extracts the base mode from a flag byte.
	baseMask Type = 0x1f
)

// Base returns the masked base mode.
func (t Type) Base() Type { return t & baseMask }

func (t Type) String() string {
	var base string
	switch t.Base() {
	case All:
		base = "ALL"
	case None:
		base = "NONE"
	case Single:
		base = "SINGLE"
	default:
		base = fmt.Sprintf("0x%02x", byte(t.Base()))
	}
	if t&AnyOneCanPay != 0 {
		return base + "|ANYONECANPAY"
	}
	return base
}

// ParseType resolves a sighash name ("all", "none", "single", with an
// optional "|anyonecanpay" suffix) or returns false.
func ParseType(name string) (Type, bool) {
	var t Type
	base := name
	const suffix = "|anyonecanpay"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		t = AnyOneCanPay
		base = name[:len(name)-len(suffix)]
	}
	switch base {
	case "all":
		return t | All, true
	case "none":
		return t | None, true
	case "single":
		return t | Single, true
	default:
		return 0, false
	}
}

// OutPoint references a previous transaction output.
type OutPoint struct {
	Hash  [32]byte // txid in internal byte order
	Index uint32
}

// TxInput spends a previous output.
type TxInput struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOutput creates a spendable value.
type TxOutput struct {
	Value    uint64
	PkScript []byte
}

// Transaction is an immutable transaction value. Signature-hash
// computation never mutates it; the engine works on transient copies.
type Transaction struct {
	Version  int32
	Inputs   []TxInput
	Outputs  []TxOutput
	LockTime uint32
}
