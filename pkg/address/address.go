// Package address implements Base58Check address construction and parsing
// plus the bech32-style alternate form.
//
// A legacy address is version || hash160 || checksum(4), Base58-encoded.
// The bech32-style form re-encodes version || hash160 with the network's
// human-readable prefix; networks without a prefix simply have no such
// form. Script-hash addresses never carry a bech32 form.
//
// Address validation failures are recoverable, typed errors: callers are
// expected to reject user input on ErrInvalidAddress and
// ErrInvalidVersionByte rather than treat them as faults.
package address

import (
	"errors"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"

	"github.com/halcyon-labs/coinkit/pkg/coin"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
)

var (
	// ErrInvalidAddress is returned for malformed Base58 input or a
	// checksum mismatch.
	ErrInvalidAddress = errors.New("address: invalid address")

	// ErrInvalidVersionByte is returned when the leading payload byte
	// matches none of the coin's version bytes.
	ErrInvalidVersionByte = errors.New("address: unrecognized version byte")

	// ErrInvalidScheme is returned when a bech32-style form is requested
	// for a network that has no scheme prefix.
	ErrInvalidScheme = errors.New("address: network has no bech32 scheme")
)

// Type classifies the version byte of a legacy address.
type Type int

const (
	PubKeyHash Type = iota
	ScriptHash
	WIF
)

func (t Type) String() string {
	switch t {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case WIF:
		return "wif"
	default:
		return "unknown"
	}
}

// prefix returns the version byte this type uses on the given network.
func (t Type) prefix(p coin.Params) byte {
	switch t {
	case ScriptHash:
		return p.ScriptHash
	case WIF:
		return p.WIF
	default:
		return p.PubKeyHash
	}
}

// LegacyAddress is an immutable decoded or constructed address.
type LegacyAddress struct {
	Coin coin.Coin
	Type Type

	// Data is the 20-byte hash when the address was decoded from a string.
	// When constructed from a key or script hash it holds the full 32-byte
	// double-SHA256 of the versioned payload; downstream consumers depend
	// on those exact bytes.
	Data []byte

	base58Form string
	bech32Form string
}

// Base58 returns the Base58Check form.
func (a LegacyAddress) Base58() string { return a.base58Form }

// Bech32 returns the bech32-style form, empty for script-hash addresses
// and for networks without a scheme prefix.
func (a LegacyAddress) Bech32() string { return a.bech32Form }

// DecodeLegacy parses and validates a Base58Check address string.
func DecodeLegacy(s string, c coin.Coin) (LegacyAddress, error) {
	params, ok := coin.ParamsFor(c)
	if !ok || !c.UTXO() {
		return LegacyAddress{}, ErrInvalidVersionByte
	}

	decoded := base58.Decode(s)
	if len(decoded) < 5 {
		return LegacyAddress{}, ErrInvalidAddress
	}

	payload := decoded[:len(decoded)-4]
	cksum := hashutil.Checksum(payload)
	for i := 0; i < 4; i++ {
		if decoded[len(payload)+i] != cksum[i] {
			return LegacyAddress{}, ErrInvalidAddress
		}
	}

	var typ Type
	switch payload[0] {
	case params.PubKeyHash:
		typ = PubKeyHash
	case params.WIF:
		typ = WIF
	case params.ScriptHash:
		typ = ScriptHash
	default:
		return LegacyAddress{}, ErrInvalidVersionByte
	}

	addr := LegacyAddress{
		Coin:       c,
		Type:       typ,
		Data:       append([]byte(nil), payload[1:]...),
		base58Form: s,
	}
	if typ != ScriptHash {
		addr.bech32Form = bech32OrEmpty(params.Bech32HRP, payload)
	}
	return addr, nil
}

// NewLegacy constructs an address from a hash. The hash is RIPEMD160-ed
// here: pass the SHA-256 of a public key for a standard pay-to-pubkey-hash
// address, or of a script for pay-to-script-hash.
func NewLegacy(hash []byte, c coin.Coin, typ Type) (LegacyAddress, error) {
	params, ok := coin.ParamsFor(c)
	if !ok || !c.UTXO() {
		return LegacyAddress{}, ErrInvalidVersionByte
	}

	h160 := hashutil.Ripemd160(hash)
	versioned := append([]byte{typ.prefix(params)}, h160[:]...)
	full := hashutil.DoubleSha256(versioned)

	encoded := base58.Encode(append(versioned, full[:4]...))

	addr := LegacyAddress{
		Coin:       c,
		Type:       typ,
		Data:       full[:],
		base58Form: encoded,
	}
	if typ != ScriptHash {
		addr.bech32Form = bech32OrEmpty(params.Bech32HRP, versioned)
	}
	return addr, nil
}

// Bech32String encodes version || hash in the bech32-style form for the
// given network. Returns ErrInvalidScheme when the network has no prefix.
func Bech32String(c coin.Coin, payload []byte) (string, error) {
	params, ok := coin.ParamsFor(c)
	if !ok || params.Bech32HRP == "" {
		return "", ErrInvalidScheme
	}
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(params.Bech32HRP, converted)
}

// bech32OrEmpty encodes the payload when the network has a prefix and
// yields the empty string otherwise.
func bech32OrEmpty(hrp string, payload []byte) string {
	if hrp == "" {
		return ""
	}
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return ""
	}
	s, err := bech32.Encode(hrp, converted)
	if err != nil {
		return ""
	}
	return s
}
