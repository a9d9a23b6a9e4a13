package keys

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"

	"github.com/halcyon-labs/coinkit/pkg/coin"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
)

// WIFCompressed encodes the scalar as a compressed-key WIF string:
// version || scalar || 0x01 || checksum, Base58-encoded.
func (k PrivateKey) WIFCompressed() (string, error) {
	return k.wif(true)
}

// WIFUncompressed encodes the scalar as an uncompressed-key WIF string.
func (k PrivateKey) WIFUncompressed() (string, error) {
	return k.wif(false)
}

func (k PrivateKey) wif(compressed bool) (string, error) {
	if k.keyType == PublicOnly {
		return "", ErrPublicOnly
	}
	params, ok := coin.ParamsFor(k.coin)
	if !ok || !k.coin.UTXO() {
		return "", ErrUnknownKeyFormat
	}

	payload := make([]byte, 0, 38)
	payload = append(payload, params.WIF)
	payload = append(payload, k.raw...)
	if compressed {
		payload = append(payload, 0x01)
	}
	cksum := hashutil.Checksum(payload)
	payload = append(payload, cksum[:]...)

	return base58.Encode(payload), nil
}

// Hex returns the scalar as 64 lowercase hex digits.
func (k PrivateKey) Hex() (string, error) {
	if k.keyType == PublicOnly {
		return "", ErrPublicOnly
	}
	return hex.EncodeToString(k.raw), nil
}

// Encode returns the conventional textual form for the key's network:
// compressed WIF for the UTXO coins, bare hex for Ethereum.
func (k PrivateKey) Encode() (string, error) {
	if k.coin.UTXO() {
		return k.WIFCompressed()
	}
	return k.Hex()
}
