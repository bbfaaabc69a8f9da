package vrf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/cardano-base/cardano-crypto-go/dsign"
)

// deriveKeyPair builds a 64-byte VRF secret key (seed || public key)
// from a 32-byte seed, the same way dsign derives Ed25519 keys, since
// the VRF and DSIGN components share the same key-expansion algorithm.
func deriveKeyPair(t *testing.T, seedByte byte) (*[SecretKeySize]byte, *[PublicKeySize]byte) {
	t.Helper()

	var seed [dsign.SeedSize]byte
	for i := range seed {
		seed[i] = seedByte
	}
	sk := dsign.GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()

	var secretKey [SecretKeySize]byte
	copy(secretKey[:32], seed[:])
	copy(secretKey[32:], vk.RawSerialize())

	var publicKey [PublicKeySize]byte
	copy(publicKey[:], vk.RawSerialize())

	return &secretKey, &publicKey
}

func TestProveVerifyRoundTrip(t *testing.T) {
	sk, pk := deriveKeyPair(t, 0x00)
	msg := []byte("hello VRF")

	proof, err := Prove(sk, msg)
	require.NoError(t, err)
	require.Len(t, proof, ProofSize)

	output, err := Verify(pk, proof, msg)
	require.NoError(t, err)
	require.Len(t, output, OutputSize)

	expected, err := ProofToOutput(proof)
	require.NoError(t, err)
	require.Equal(t, expected[:], output[:])
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	sk, pk := deriveKeyPair(t, 0x01)

	proof, err := Prove(sk, []byte("original"))
	require.NoError(t, err)

	_, err = Verify(pk, proof, []byte("tampered"))
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestProveIsDeterministic(t *testing.T) {
	sk, _ := deriveKeyPair(t, 0x2a)
	msg := []byte("determinism check")

	p1, err := Prove(sk, msg)
	require.NoError(t, err)
	p2, err := Prove(sk, msg)
	require.NoError(t, err)
	require.Equal(t, p1[:], p2[:])
}

// TestZeroKeyEmptyMessageGoldenVector pins CardanoHashToCurve's
// Elligator2 behaviour (including the double use of the top bit
// described by internal/curve25519ed.CardanoHashToCurve) against a
// fixed, externally-reproduced reference triple for the all-zero seed
// and the empty message, rather than only checking Prove/Verify
// self-consistency.
func TestZeroKeyEmptyMessageGoldenVector(t *testing.T) {
	const (
		pkHex    = "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"
		proofHex = "3af639535e4eca74dd777e0df983987b6b2c172363f6fdb442011883bc5c5b307e00299477c8702369ce2a4196ac3ac8fec3c4c28471386e5e74a9bcca7bca19741c0447c0b7c857b8137432fac44904"
		betaHex  = "64ce2d39a78eec9920d1f0cd2212380907e9415c59e67e7440a7a312430dca32ed746d894b5676c21a1eb63c77f59b44c2bceec92624652ea073c14cd6622bee"
	)

	var seed [dsign.SeedSize]byte
	sk := dsign.GenKeyFromSeedBytes(&seed)
	vk := sk.DeriveVerificationKey()
	require.Equal(t, pkHex, hex.EncodeToString(vk.RawSerialize()))

	var secretKey [SecretKeySize]byte
	copy(secretKey[32:], vk.RawSerialize())

	var publicKey [PublicKeySize]byte
	copy(publicKey[:], vk.RawSerialize())

	proof, err := Prove(&secretKey, nil)
	require.NoError(t, err)
	require.Equal(t, proofHex, hex.EncodeToString(proof[:]))

	output, err := Verify(&publicKey, proof, nil)
	require.NoError(t, err)
	require.Equal(t, betaHex, hex.EncodeToString(output[:]))

	fromProof, err := ProofToOutput(proof)
	require.NoError(t, err)
	require.Equal(t, output[:], fromProof[:])
}

func TestVerifyRejectsMalformedPublicKey(t *testing.T) {
	sk, _ := deriveKeyPair(t, 0x03)
	msg := []byte("msg")

	proof, err := Prove(sk, msg)
	require.NoError(t, err)

	var badPk [PublicKeySize]byte
	for i := range badPk {
		badPk[i] = 0xff
	}
	_, err = Verify(&badPk, proof, msg)
	require.Error(t, err)
}
