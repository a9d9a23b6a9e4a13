package keys

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/halcyon-labs/coinkit/pkg/curve"
)

// Sign produces a DER-encoded ECDSA signature over a 32-byte digest.
// PublicOnly nodes cannot sign; scalars outside [1, N-1] are rejected
// before touching the curve library.
func (k PrivateKey) Sign(hash [32]byte) ([]byte, error) {
	if k.keyType == PublicOnly {
		return nil, ErrPublicOnly
	}
	kb := new(big.Int).SetBytes(k.raw)
	if kb.Sign() == 0 || kb.Cmp(curve.N) >= 0 {
		return nil, curve.ErrInvalidScalar
	}

	priv := secp256k1.PrivKeyFromBytes(k.raw)
	return ecdsa.Sign(priv, hash[:]).Serialize(), nil
}

// Verify checks a DER-encoded signature against a digest and public key.
func Verify(pub *PublicKey, hash [32]byte, signature []byte) bool {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	return sig.Verify(hash[:], pub.key)
}
