package sighash

import (
	"fmt"

	"github.com/halcyon-labs/coinkit/pkg/keys"
)

// SignInput computes the signature hash for one input and signs it,
// returning the script-ready blob: DER signature || flag byte.
func SignInput(tx *Transaction, index int, subscript []byte, hashType Type, key keys.PrivateKey) ([]byte, error) {
	if index < 0 || index >= len(tx.Inputs) {
		return nil, fmt.Errorf("sighash: input index %d out of range for %d inputs",
			index, len(tx.Inputs))
	}

	digest := HashForSignature(tx, index, subscript, hashType)
	der, err := key.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("sighash: signing input %d: %w", index, err)
	}
	return append(der, byte(hashType)), nil
}
