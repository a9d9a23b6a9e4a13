package address

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/coinkit/pkg/coin"
	"github.com/halcyon-labs/coinkit/pkg/hashutil"
	"github.com/halcyon-labs/coinkit/pkg/keys"
)

const (
	// Compressed public key behind the classic pay-to-pubkey-hash vector.
	testPubKeyHex  = "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"
	testHash160Hex = "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31"
	testAddress    = "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// pubKeyDigest returns the SHA-256 of the test public key, the form
// NewLegacy expects for pay-to-pubkey-hash.
func pubKeyDigest(t *testing.T) []byte {
	t.Helper()
	digest := sha256.Sum256(mustHex(t, testPubKeyHex))
	return digest[:]
}

func TestNewLegacy_KnownVector(t *testing.T) {
	addr, err := NewLegacy(pubKeyDigest(t), coin.Bitcoin, PubKeyHash)
	require.NoError(t, err)

	assert.Equal(t, testAddress, addr.Base58())
	assert.Equal(t, coin.Bitcoin, addr.Coin)
	assert.Equal(t, PubKeyHash, addr.Type)
	assert.True(t, strings.HasPrefix(addr.Bech32(), "bc1"))
}

func TestNewLegacy_DataHoldsFullPayloadDigest(t *testing.T) {
	addr, err := NewLegacy(pubKeyDigest(t), coin.Bitcoin, PubKeyHash)
	require.NoError(t, err)

	// Constructed addresses carry the full 32-byte double-SHA256 of the
	// versioned payload; the checksum is its first 4 bytes.
	require.Len(t, addr.Data, 32)
	versioned := append([]byte{0x00}, mustHex(t, testHash160Hex)...)
	expected := hashutil.DoubleSha256(versioned)
	assert.Equal(t, expected[:], addr.Data)
}

func TestDecodeLegacy_KnownVector(t *testing.T) {
	addr, err := DecodeLegacy(testAddress, coin.Bitcoin)
	require.NoError(t, err)

	assert.Equal(t, PubKeyHash, addr.Type)
	assert.Equal(t, mustHex(t, testHash160Hex), addr.Data)
	assert.Equal(t, testAddress, addr.Base58())
	assert.True(t, strings.HasPrefix(addr.Bech32(), "bc1"))
}

func TestDecodeLegacy_RejectsBadChecksum(t *testing.T) {
	corrupted := testAddress[:len(testAddress)-1] + "t"
	_, err := DecodeLegacy(corrupted, coin.Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeLegacy_RejectsShortInput(t *testing.T) {
	_, err := DecodeLegacy("1A", coin.Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = DecodeLegacy("", coin.Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDecodeLegacy_RejectsForeignVersionByte(t *testing.T) {
	// A Dash pay-to-pubkey-hash address carries version 0x4C, which matches
	// none of Bitcoin's version bytes.
	dashAddr, err := NewLegacy(pubKeyDigest(t), coin.Dash, PubKeyHash)
	require.NoError(t, err)

	_, err = DecodeLegacy(dashAddr.Base58(), coin.Bitcoin)
	assert.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestDecodeLegacy_AccountBasedRejected(t *testing.T) {
	_, err := DecodeLegacy(testAddress, coin.Ethereum)
	assert.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestLegacyRoundTrip(t *testing.T) {
	for _, c := range []coin.Coin{coin.Bitcoin, coin.Litecoin, coin.Dash, coin.BitcoinCash} {
		for _, typ := range []Type{PubKeyHash, ScriptHash} {
			built, err := NewLegacy(pubKeyDigest(t), c, typ)
			require.NoError(t, err, "%s/%s", c, typ)

			decoded, err := DecodeLegacy(built.Base58(), c)
			require.NoError(t, err, "%s/%s", c, typ)
			assert.Equal(t, typ, decoded.Type)

			h160 := hashutil.Ripemd160(pubKeyDigest(t))
			assert.Equal(t, h160[:], decoded.Data)
		}
	}
}

func TestScriptHashHasNoBech32Form(t *testing.T) {
	addr, err := NewLegacy(pubKeyDigest(t), coin.Bitcoin, ScriptHash)
	require.NoError(t, err)
	assert.Empty(t, addr.Bech32())

	decoded, err := DecodeLegacy(addr.Base58(), coin.Bitcoin)
	require.NoError(t, err)
	assert.Empty(t, decoded.Bech32())
}

func TestBech32String(t *testing.T) {
	payload := append([]byte{0x00}, mustHex(t, testHash160Hex)...)

	s, err := Bech32String(coin.Bitcoin, payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "bc1"))

	// Dash has no scheme prefix.
	_, err = Bech32String(coin.Dash, payload)
	assert.ErrorIs(t, err, ErrInvalidScheme)

	_, err = Bech32String(coin.Ethereum, payload)
	assert.ErrorIs(t, err, ErrInvalidScheme)
}

func TestEthereum_KnownVector(t *testing.T) {
	// Scalar 1: the address of the base point itself.
	scalar := make([]byte, 32)
	scalar[31] = 0x01
	key, err := keys.ParsePrivateKey(hex.EncodeToString(scalar), coin.Ethereum)
	require.NoError(t, err)

	pub, err := key.PublicKey()
	require.NoError(t, err)

	assert.Equal(t, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", Ethereum(pub))
}
