// Package coin defines the closed set of supported networks and their
// encoding parameters.
//
// The parameter table is built once at init and never mutated; lookups are
// safe from any goroutine. Four UTXO networks share the Base58Check/WIF
// machinery; Ethereum is account-based and carries no UTXO prefixes.
package coin

import "fmt"

// Coin identifies a supported network.
type Coin int

const (
	Bitcoin Coin = iota
	Litecoin
	Dash
	BitcoinCash
	Ethereum
)

// String returns the lowercase network name.
func (c Coin) String() string {
	switch c {
	case Bitcoin:
		return "bitcoin"
	case Litecoin:
		return "litecoin"
	case Dash:
		return "dash"
	case BitcoinCash:
		return "bitcoin-cash"
	case Ethereum:
		return "ethereum"
	default:
		return fmt.Sprintf("coin(%d)", int(c))
	}
}

// UTXO reports whether the coin uses the UTXO transaction model.
func (c Coin) UTXO() bool {
	return c != Ethereum
}

// Params holds the per-network encoding constants.
type Params struct {
	Name string

	// Version bytes for Base58Check payloads.
	PubKeyHash byte
	ScriptHash byte
	WIF        byte

	// Bech32HRP is the human-readable prefix for the bech32-style address
	// form. Empty for networks without one.
	Bech32HRP string
}

var registry = map[Coin]Params{
	Bitcoin: {
		Name:       "bitcoin",
		PubKeyHash: 0x00,
		ScriptHash: 0x05,
		WIF:        0x80,
		Bech32HRP:  "bc",
	},
	Litecoin: {
		Name:       "litecoin",
		PubKeyHash: 0x30,
		ScriptHash: 0x32,
		WIF:        0xB0,
		Bech32HRP:  "ltc",
	},
	Dash: {
		Name:       "dash",
		PubKeyHash: 0x4C,
		ScriptHash: 0x10,
		WIF:        0xCC,
	},
	BitcoinCash: {
		Name:       "bitcoin-cash",
		PubKeyHash: 0x00,
		ScriptHash: 0x05,
		WIF:        0x80,
		Bech32HRP:  "bitcoincash",
	},
	Ethereum: {
		Name: "ethereum",
	},
}

// ParamsFor returns the parameter set for c. The second return value is
// false for a coin outside the closed set.
func ParamsFor(c Coin) (Params, bool) {
	p, ok := registry[c]
	return p, ok
}

// Coins lists the supported networks in declaration order.
func Coins() []Coin {
	return []Coin{Bitcoin, Litecoin, Dash, BitcoinCash, Ethereum}
}

// FromName resolves a lowercase network name.
func FromName(name string) (Coin, bool) {
	for _, c := range Coins() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}
