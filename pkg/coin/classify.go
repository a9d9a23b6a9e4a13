package coin

import "github.com/btcsuite/btcutil/base58"

// KeyEncoding is the detected textual form of a private key string.
type KeyEncoding int

const (
	KeyEncodingUnknown KeyEncoding = iota
	KeyEncodingHex
	KeyEncodingWIFCompressed
	KeyEncodingWIFUncompressed
)

func (e KeyEncoding) String() string {
	switch e {
	case KeyEncodingHex:
		return "hex"
	case KeyEncodingWIFCompressed:
		return "wif-compressed"
	case KeyEncodingWIFUncompressed:
		return "wif-uncompressed"
	default:
		return "unknown"
	}
}

const (
	wifUncompressedLen = 37 // version + scalar + checksum
	wifCompressedLen   = 38 // version + scalar + 0x01 + checksum
)

// ClassifyKeyString detects how a private-key string is encoded for the
// given coin. It inspects shape only (length, alphabet, version byte);
// checksum verification is left to the key parser.
func ClassifyKeyString(s string, c Coin) KeyEncoding {
	if isHexScalar(s) {
		return KeyEncodingHex
	}

	params, ok := ParamsFor(c)
	if !ok || !c.UTXO() {
		return KeyEncodingUnknown
	}

	decoded := base58.Decode(s)
	switch {
	case len(decoded) == wifCompressedLen && decoded[0] == params.WIF && decoded[33] == 0x01:
		return KeyEncodingWIFCompressed
	case len(decoded) == wifUncompressedLen && decoded[0] == params.WIF:
		return KeyEncodingWIFUncompressed
	default:
		return KeyEncodingUnknown
	}
}

// isHexScalar reports whether s is exactly 64 hex digits (an optional 0x
// prefix is accepted).
func isHexScalar(s string) bool {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') && (ch < 'A' || ch > 'F') {
			return false
		}
	}
	return true
}
