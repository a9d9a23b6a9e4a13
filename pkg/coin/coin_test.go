package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsTable(t *testing.T) {
	tests := []struct {
		coin       Coin
		name       string
		pubKeyHash byte
		scriptHash byte
		wif        byte
		hrp        string
	}{
		{Bitcoin, "bitcoin", 0x00, 0x05, 0x80, "bc"},
		{Litecoin, "litecoin", 0x30, 0x32, 0xB0, "ltc"},
		{Dash, "dash", 0x4C, 0x10, 0xCC, ""},
		{BitcoinCash, "bitcoin-cash", 0x00, 0x05, 0x80, "bitcoincash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParamsFor(tt.coin)
			require.True(t, ok)
			assert.Equal(t, tt.name, p.Name)
			assert.Equal(t, tt.pubKeyHash, p.PubKeyHash)
			assert.Equal(t, tt.scriptHash, p.ScriptHash)
			assert.Equal(t, tt.wif, p.WIF)
			assert.Equal(t, tt.hrp, p.Bech32HRP)
			assert.True(t, tt.coin.UTXO())
		})
	}
}

func TestEthereumParams(t *testing.T) {
	p, ok := ParamsFor(Ethereum)
	require.True(t, ok)
	assert.Equal(t, "ethereum", p.Name)
	assert.Empty(t, p.Bech32HRP)
	assert.False(t, Ethereum.UTXO())
}

func TestParamsFor_UnknownCoin(t *testing.T) {
	_, ok := ParamsFor(Coin(99))
	assert.False(t, ok)
}

func TestFromName(t *testing.T) {
	for _, c := range Coins() {
		got, ok := FromName(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	_, ok := FromName("dogecoin")
	assert.False(t, ok)
}

func TestClassifyKeyString(t *testing.T) {
	const (
		// Scalar 0C28FCA3... in its two classic WIF forms.
		wifUncompressed = "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"
		wifCompressed   = "KwdMAjGmerYanjeui5SHS7JkmpZvVipBvB2tJGCYwiXg9hut84Gd"
	)

	tests := []struct {
		name     string
		key      string
		coin     Coin
		expected KeyEncoding
	}{
		{
			name:     "bare hex",
			key:      "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
			coin:     Bitcoin,
			expected: KeyEncodingHex,
		},
		{
			name:     "0x-prefixed hex",
			key:      "0x0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
			coin:     Ethereum,
			expected: KeyEncodingHex,
		},
		{
			name:     "uppercase hex",
			key:      "0C28FCA386C7A227600B2FE50B7CAE11EC86D3BF1FBE471BE89827E19D72AA1D",
			coin:     Bitcoin,
			expected: KeyEncodingHex,
		},
		{
			name:     "wif uncompressed",
			key:      wifUncompressed,
			coin:     Bitcoin,
			expected: KeyEncodingWIFUncompressed,
		},
		{
			name:     "wif compressed",
			key:      wifCompressed,
			coin:     Bitcoin,
			expected: KeyEncodingWIFCompressed,
		},
		{
			name:     "bitcoin wif under litecoin version byte",
			key:      wifCompressed,
			coin:     Litecoin,
			expected: KeyEncodingUnknown,
		},
		{
			name:     "wif under account-based network",
			key:      wifCompressed,
			coin:     Ethereum,
			expected: KeyEncodingUnknown,
		},
		{
			name:     "short hex",
			key:      "0c28fca3",
			coin:     Bitcoin,
			expected: KeyEncodingUnknown,
		},
		{
			name:     "garbage",
			key:      "not a key at all",
			coin:     Bitcoin,
			expected: KeyEncodingUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyKeyString(tt.key, tt.coin))
		})
	}
}

func TestKeyEncodingString(t *testing.T) {
	assert.Equal(t, "hex", KeyEncodingHex.String())
	assert.Equal(t, "wif-compressed", KeyEncodingWIFCompressed.String())
	assert.Equal(t, "wif-uncompressed", KeyEncodingWIFUncompressed.String())
	assert.Equal(t, "unknown", KeyEncodingUnknown.String())
}
