// Package curve wraps the secp256k1 operations used by key derivation.
//
// Scalar multiplication and point parsing are delegated to the decred
// secp256k1 library; affine point addition is implemented here over the
// curve's prime field with math/big, using Fermat exponentiation for the
// modular inverse.
//
// Point encodings follow SEC 1: 33 bytes compressed (0x02/0x03 prefix),
// 65 bytes uncompressed (0x04 prefix).
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// CompressedKeyLen is the length of a compressed public key encoding.
	CompressedKeyLen = 33
	// UncompressedKeyLen is the length of an uncompressed public key encoding.
	UncompressedKeyLen = 65
)

var (
	// P is the secp256k1 field prime, 2^256 - 2^32 - 977.
	P, _ = new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

	// N is the secp256k1 group order.
	N, _ = new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
)

// ErrPointDoubling is returned by PointAdd when both points share an
// x-coordinate. The chord formula used here is undefined for doubling and
// for inverse points; callers must guarantee distinct x-coordinates.
var ErrPointDoubling = errors.New("curve: point addition requires distinct x-coordinates")

// ErrInvalidScalar is returned for a scalar that is zero or not strictly
// below the group order.
var ErrInvalidScalar = errors.New("curve: scalar must be in [1, N-1]")

// GeneratePublicKey multiplies the base point by scalar and returns the
// requested encoding. The scalar must be 32 bytes and in [1, N-1].
func GeneratePublicKey(scalar []byte, compressed bool) ([]byte, error) {
	if len(scalar) != 32 {
		return nil, fmt.Errorf("curve: scalar must be 32 bytes, got %d", len(scalar))
	}
	k := new(big.Int).SetBytes(scalar)
	if k.Sign() == 0 || k.Cmp(N) >= 0 {
		return nil, ErrInvalidScalar
	}

	pub := secp256k1.PrivKeyFromBytes(scalar).PubKey()
	return ExportPublicKey(pub, compressed), nil
}

// ParsePublicKey validates that b encodes a point on the curve.
func ParsePublicKey(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("curve: invalid public key: %w", err)
	}
	return pub, nil
}

// ExportPublicKey serializes a parsed point in the requested encoding.
func ExportPublicKey(pub *secp256k1.PublicKey, compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}

// Decompress converts any valid point encoding to the 65-byte uncompressed
// form.
func Decompress(b []byte) ([]byte, error) {
	pub, err := ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return pub.SerializeUncompressed(), nil
}

// Compress converts any valid point encoding to the 33-byte compressed form.
func Compress(b []byte) ([]byte, error) {
	pub, err := ParsePublicKey(b)
	if err != nil {
		return nil, err
	}
	return pub.SerializeCompressed(), nil
}

// PointAdd adds two uncompressed points and returns the uncompressed sum.
//
// The slope is computed as (y2-y1)*(x2-x1)^(P-2) mod P: the modular inverse
// is taken by Fermat exponentiation rather than the extended Euclidean
// algorithm so derived points match existing key trees bit for bit.
// Adding a point to itself (or to its inverse) is not supported and returns
// ErrPointDoubling.
func PointAdd(p1, p2 []byte) ([]byte, error) {
	x1, y1, err := affineCoords(p1)
	if err != nil {
		return nil, err
	}
	x2, y2, err := affineCoords(p2)
	if err != nil {
		return nil, err
	}
	if x1.Cmp(x2) == 0 {
		return nil, ErrPointDoubling
	}

	// lambda = (y2-y1) / (x2-x1) mod P
	dy := new(big.Int).Sub(y2, y1)
	dx := new(big.Int).Sub(x2, x1)
	dx.Mod(dx, P)
	dxInv := new(big.Int).Exp(dx, new(big.Int).Sub(P, big.NewInt(2)), P)
	lambda := new(big.Int).Mul(dy, dxInv)
	lambda.Mod(lambda, P)

	// x3 = lambda^2 - x1 - x2 mod P
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, P)

	// y3 = lambda*(x1-x3) - y1 mod P
	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, P)

	out := make([]byte, UncompressedKeyLen)
	out[0] = 0x04
	x3.FillBytes(out[1:33])
	y3.FillBytes(out[33:65])
	return out, nil
}

// affineCoords splits a 65-byte uncompressed encoding into its coordinates.
func affineCoords(b []byte) (x, y *big.Int, err error) {
	if len(b) != UncompressedKeyLen || b[0] != 0x04 {
		return nil, nil, fmt.Errorf("curve: expected uncompressed point, got %d bytes", len(b))
	}
	x = new(big.Int).SetBytes(b[1:33])
	y = new(big.Int).SetBytes(b[33:65])
	return x, y, nil
}
