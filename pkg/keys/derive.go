package keys

import (
	"encoding/binary"
	"math/big"

	"github.com/halcyon-labs/coinkit/pkg/curve"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
)

// hardenedFlag is OR-ed into the wire index of hardened children.
const hardenedFlag = uint32(0x80000000)

// Node selects a BIP32 child. The index must be below 2^31; hardened
// children mix in the parent scalar instead of the parent public key.
type Node struct {
	index    uint32
	hardened bool
}

// Hardened selects hardened child i.
func Hardened(i uint32) Node { return Node{index: i, hardened: true} }

// NotHardened selects non-hardened child i.
func NotHardened(i uint32) Node { return Node{index: i} }

// Derive computes the private child at n.
//
// Per BIP32 a child is invalid when the derived factor is not below the
// group order or the child scalar is zero; the probability is below 2^-127
// and this implementation does not detect or retry it. Callers that need
// strict BIP32 behavior must skip to the next index themselves.
func (k PrivateKey) Derive(n Node) (PrivateKey, error) {
	switch k.keyType {
	case Imported:
		return PrivateKey{}, ErrNotHD
	case PublicOnly:
		return PrivateKey{}, ErrPublicOnly
	}
	if n.index&hardenedFlag != 0 {
		return PrivateKey{}, ErrReservedIndexBit
	}

	childIndex := n.index
	if n.hardened {
		childIndex |= hardenedFlag
	}

	var data []byte
	if n.hardened {
		data = append([]byte{0x00}, k.raw...)
	} else {
		parentPub, err := curve.GeneratePublicKey(k.raw, true)
		if err != nil {
			return PrivateKey{}, err
		}
		data = parentPub
	}
	data = binary.BigEndian.AppendUint32(data, childIndex)

	digest := hashutil.HmacSha512(k.chainCode, data)

	// child = (parent + factor) mod N
	factor := new(big.Int).SetBytes(digest[:32])
	child := new(big.Int).SetBytes(k.raw)
	child.Add(child, factor)
	child.Mod(child, curve.N)

	raw := make([]byte, 32)
	child.FillBytes(raw)

	return PrivateKey{
		raw:       raw,
		chainCode: append([]byte(nil), digest[32:]...),
		index:     childIndex,
		coin:      k.coin,
		keyType:   HD,
	}, nil
}

// DerivePublic computes the public-point child: the parent point plus the
// point for the first half of HMAC-SHA512(chainCode, raw || 0x00000001).
// The result is a PublicOnly node holding the compressed sum; it can encode
// addresses but never sign.
func (k PrivateKey) DerivePublic() (PrivateKey, error) {
	switch k.keyType {
	case Imported:
		return PrivateKey{}, ErrNotHD
	case PublicOnly:
		return PrivateKey{}, ErrPublicOnly
	}

	data := append(append([]byte(nil), k.raw...), 0x00, 0x00, 0x00, 0x01)
	digest := hashutil.HmacSha512(k.chainCode, data)

	ki, err := curve.GeneratePublicKey(digest[:32], true)
	if err != nil {
		return PrivateKey{}, err
	}
	parent, err := curve.GeneratePublicKey(k.raw, true)
	if err != nil {
		return PrivateKey{}, err
	}

	kiPoint, err := curve.Decompress(ki)
	if err != nil {
		return PrivateKey{}, err
	}
	parentPoint, err := curve.Decompress(parent)
	if err != nil {
		return PrivateKey{}, err
	}
	sum, err := curve.PointAdd(kiPoint, parentPoint)
	if err != nil {
		return PrivateKey{}, err
	}
	compressed, err := curve.Compress(sum)
	if err != nil {
		return PrivateKey{}, err
	}

	return PrivateKey{
		raw:       compressed,
		chainCode: append([]byte(nil), digest[32:]...),
		index:     1,
		coin:      k.coin,
		keyType:   PublicOnly,
	}, nil
}
