// Package xhash collects the fixed-output-length hash functions used
// throughout this module: the general-purpose digest suite needed by
// the KES hash-algorithm parameter, and the handful of composite
// digests (SHA-256d, Hash160) Cardano's wire formats build on top of
// them.
package xhash

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for Hash160 compatibility
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of msg.
func SHA256(msg []byte) []byte {
	h := sha256.Sum256(msg)
	return h[:]
}

// SHA512 returns the SHA-512 digest of msg.
func SHA512(msg []byte) []byte {
	h := sha512.Sum512(msg)
	return h[:]
}

// SHA256d returns SHA-256(SHA-256(msg)).
func SHA256d(msg []byte) []byte {
	first := sha256.Sum256(msg)
	second := sha256.Sum256(first[:])
	return second[:]
}

// SHA3256 returns the SHA3-256 digest of msg.
func SHA3256(msg []byte) []byte {
	h := sha3.Sum256(msg)
	return h[:]
}

// SHA3512 returns the SHA3-512 digest of msg.
func SHA3512(msg []byte) []byte {
	h := sha3.Sum512(msg)
	return h[:]
}

// Keccak256 returns the (pre-standardisation) Keccak-256 digest of msg.
func Keccak256(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	return h.Sum(nil)
}

// RIPEMD160 returns the RIPEMD-160 digest of msg.
func RIPEMD160(msg []byte) []byte {
	h := ripemd160.New()
	h.Write(msg)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD-160(SHA-256(msg)).
func Hash160(msg []byte) []byte {
	return RIPEMD160(SHA256(msg))
}

// Blake2b224 returns the 28-byte (224-bit) Blake2b digest of msg.
func Blake2b224(msg []byte) []byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		panic("xhash: blake2b-224 initialisation failed: " + err.Error())
	}
	h.Write(msg)
	return h.Sum(nil)
}

// Blake2b256 returns the 32-byte (256-bit) Blake2b digest of msg.
func Blake2b256(msg []byte) []byte {
	h := blake2b.Sum256(msg)
	return h[:]
}

// Blake2b512 returns the 64-byte (512-bit) Blake2b digest of msg.
func Blake2b512(msg []byte) []byte {
	h := blake2b.Sum512(msg)
	return h[:]
}
