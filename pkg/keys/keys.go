// Package keys implements the private/public key model and BIP32-style
// hierarchical derivation over secp256k1.
//
// Key material is held in immutable value types. A PrivateKey is one of
// three kinds:
//
//   - HD: carries a scalar plus a chain code and supports child derivation
//   - Imported: a bare scalar decoded from WIF or hex, no chain code
//   - PublicOnly: the result of public-point derivation; carries a
//     compressed public key instead of a scalar and can never sign
//
// The PublicOnly kind exists so that a derivation branch with no private
// material is distinguishable from a signing key at the type level rather
// than by convention.
//
// Key formats:
//   - WIF: version || scalar(32) || [0x01 if compressed] || checksum(4),
//     Base58-encoded
//   - Hex: 64 hex digits, used for the account-based network
package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/halcyon-labs/coinkit/pkg/coin"
	"github.com/halcyon-labs/coinkit/pkg/curve"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
)

// masterSecret is the HMAC key that turns a seed into a master node.
var masterSecret = []byte("Bitcoin seed")

// Contract-violation errors. Hitting one of these indicates misuse by the
// caller, not bad input data; they are never produced by malformed strings.
var (
	// ErrNotHD is returned when a derivation operation is invoked on an
	// imported (non-hierarchical) key.
	ErrNotHD = errors.New("keys: derivation requires an HD key")

	// ErrPublicOnly is returned when signing or private-key encoding is
	// attempted on a public-only derivation node.
	ErrPublicOnly = errors.New("keys: node carries no private scalar")

	// ErrReservedIndexBit is returned when a derivation index has the high
	// bit set; that bit is the hardened marker, not caller data.
	ErrReservedIndexBit = errors.New("keys: derivation index high bit is reserved")
)

// Data-validation errors, recoverable by the caller.
var (
	// ErrUnknownKeyFormat is returned for a private-key string that is
	// neither hex nor a WIF form valid for the coin.
	ErrUnknownKeyFormat = errors.New("keys: unrecognized private key format")

	// ErrChecksumMismatch is returned for a WIF string whose trailing
	// checksum does not match its payload.
	ErrChecksumMismatch = errors.New("keys: WIF checksum mismatch")
)

// KeyType tags the kind of material a PrivateKey holds.
type KeyType int

const (
	// HD keys carry a chain code and support child derivation.
	HD KeyType = iota
	// Imported keys are bare scalars decoded from WIF or hex.
	Imported
	// PublicOnly nodes carry a compressed public key and no scalar.
	PublicOnly
)

// PrivateKey is an immutable key node. The zero value is not usable;
// construct via MasterKey, ParsePrivateKey, or derivation.
type PrivateKey struct {
	raw       []byte // 32-byte scalar, or 33-byte compressed point for PublicOnly
	chainCode []byte // 32 bytes for HD and PublicOnly kinds, nil for Imported
	index     uint32
	coin      coin.Coin
	keyType   KeyType
}

// MasterKey derives the root HD node from a seed: HMAC-SHA512 keyed with
// "Bitcoin seed", first half scalar, second half chain code.
func MasterKey(seed []byte, c coin.Coin) PrivateKey {
	digest := hashutil.HmacSha512(masterSecret, seed)
	return PrivateKey{
		raw:       append([]byte(nil), digest[:32]...),
		chainCode: append([]byte(nil), digest[32:]...),
		index:     0,
		coin:      c,
		keyType:   HD,
	}
}

// ParsePrivateKey decodes a hex or WIF private-key string for the given
// coin. The resulting key is Imported: it has no chain code and cannot
// derive children. Returns ErrUnknownKeyFormat for unrecognized strings.
func ParsePrivateKey(s string, c coin.Coin) (PrivateKey, error) {
	switch coin.ClassifyKeyString(s, c) {
	case coin.KeyEncodingHex:
		if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			s = s[2:]
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			return PrivateKey{}, fmt.Errorf("keys: decoding hex key: %w", err)
		}
		return PrivateKey{raw: raw, coin: c, keyType: Imported}, nil

	case coin.KeyEncodingWIFCompressed, coin.KeyEncodingWIFUncompressed:
		return parseWIF(s, c)

	default:
		return PrivateKey{}, ErrUnknownKeyFormat
	}
}

// parseWIF extracts the scalar from a classified WIF string, verifying the
// Base58Check trailer.
func parseWIF(s string, c coin.Coin) (PrivateKey, error) {
	decoded := base58.Decode(s)
	payload := decoded[:len(decoded)-4]
	cksum := hashutil.Checksum(payload)
	for i := 0; i < 4; i++ {
		if decoded[len(payload)+i] != cksum[i] {
			return PrivateKey{}, ErrChecksumMismatch
		}
	}
	raw := append([]byte(nil), payload[1:33]...)
	return PrivateKey{raw: raw, coin: c, keyType: Imported}, nil
}

// Raw returns the node's key material: a 32-byte scalar, or the 33-byte
// compressed public key for PublicOnly nodes.
func (k PrivateKey) Raw() []byte { return append([]byte(nil), k.raw...) }

// ChainCode returns the node's chain code, nil for Imported keys.
func (k PrivateKey) ChainCode() []byte { return append([]byte(nil), k.chainCode...) }

// Index returns the child index this node was derived at.
func (k PrivateKey) Index() uint32 { return k.index }

// Coin returns the network the key belongs to.
func (k PrivateKey) Coin() coin.Coin { return k.coin }

// Type returns the node kind.
func (k PrivateKey) Type() KeyType { return k.keyType }

// PublicKey returns the point for this node. For PublicOnly nodes this
// parses the stored point; otherwise it multiplies the base point by the
// scalar.
func (k PrivateKey) PublicKey() (*PublicKey, error) {
	if k.keyType == PublicOnly {
		pub, err := curve.ParsePublicKey(k.raw)
		if err != nil {
			return nil, err
		}
		return &PublicKey{key: pub}, nil
	}
	kb := new(big.Int).SetBytes(k.raw)
	if kb.Sign() == 0 || kb.Cmp(curve.N) >= 0 {
		return nil, curve.ErrInvalidScalar
	}
	return &PublicKey{key: secp256k1.PrivKeyFromBytes(k.raw).PubKey()}, nil
}

// PublicKey wraps a parsed secp256k1 point.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePublicKeyBytes parses a compressed or uncompressed point encoding.
func ParsePublicKeyBytes(b []byte) (*PublicKey, error) {
	pub, err := curve.ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.key.SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte uncompressed encoding.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.key.SerializeUncompressed()
}
