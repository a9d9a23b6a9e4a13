package address

import (
	"encoding/hex"

	"github.com/halcyon-labs/coinkit/pkg/hashutil"
	"github.com/halcyon-labs/coinkit/pkg/keys"
)

// Ethereum derives the account-based address for a public key: the last 20
// bytes of the Keccak-256 of the uncompressed point without its 0x04
// prefix, rendered as 0x-prefixed lowercase hex.
func Ethereum(pub *keys.PublicKey) string {
	raw := pub.SerializeUncompressed()
	digest := hashutil.Keccak256(raw[1:])
	return "0x" + hex.EncodeToString(digest[12:])
}
