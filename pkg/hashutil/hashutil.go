// Package hashutil implements the digest and MAC primitives shared by key
// derivation, address encoding and transaction signing.
//
// All functions are pure and total over well-formed byte inputs. The two
// parameterized primitives (HmacSha512, Pbkdf2Sha512) treat out-of-range
// parameters as programming faults and panic instead of truncating silently:
// nothing in this module ever reaches them with attacker-controlled
// parameters beyond the data bytes themselves.
//
// Primitives:
//   - HMAC-SHA512      (BIP32 master key and child derivation)
//   - PBKDF2-SHA512    (seed stretching, 2048 iterations per BIP39)
//   - Keccak-256       (account-based chain addresses, pre-NIST padding)
//   - double SHA-256   (Base58Check checksums, legacy sighash)
//   - RIPEMD-160       (pay-to-hash address payloads)
package hashutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
	"golang.org/x/crypto/sha3"
)

// Pbkdf2Iterations is the iteration count used for seed stretching.
const Pbkdf2Iterations = 2048

// HmacSha512 computes HMAC-SHA512 over data with the given key.
// Panics on an empty key: every caller in this module supplies a fixed
// protocol constant or a 32-byte chain code.
func HmacSha512(key, data []byte) [64]byte {
	if len(key) == 0 {
		panic("hashutil: empty HMAC key")
	}
	mac := hmac.New(sha512.New, key)
	mac.Write(data)

	var digest [64]byte
	copy(digest[:], mac.Sum(nil))
	return digest
}

// Pbkdf2Sha512 derives keyLen bytes from password and salt using
// PBKDF2-HMAC-SHA512. Panics on a non-positive iteration count.
func Pbkdf2Sha512(password, salt []byte, iterations, keyLen int) []byte {
	if iterations < 1 {
		panic("hashutil: PBKDF2 iteration count must be positive")
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha512.New)
}

// Keccak256 computes the legacy (pre-NIST-padding) Keccak-256 digest.
func Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// DoubleSha256 computes SHA256(SHA256(data)).
func DoubleSha256(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Checksum returns the first 4 bytes of DoubleSha256(data), the Base58Check
// error-detection trailer.
func Checksum(data []byte) [4]byte {
	digest := DoubleSha256(data)

	var cksum [4]byte
	copy(cksum[:], digest[:4])
	return cksum
}

// Ripemd160 computes the RIPEMD-160 digest of data.
func Ripemd160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)

	var digest [20]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// Seed stretches a recovery phrase and optional passphrase into a 64-byte
// seed (PBKDF2-HMAC-SHA512, 2048 iterations, "mnemonic"+passphrase salt).
// Phrase generation and word-list validation live outside this module.
func Seed(phrase, passphrase string) []byte {
	salt := append([]byte("mnemonic"), []byte(passphrase)...)
	return Pbkdf2Sha512([]byte(phrase), salt, Pbkdf2Iterations, 64)
}
