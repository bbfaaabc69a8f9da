package kes

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func testSeed(b byte) []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = b
	}
	return seed
}

func TestSingleSignVerifyRoundTrip(t *testing.T) {
	s := Single()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x11))
	require.NoError(t, err)

	vk := s.DeriveVerificationKey(sk)
	sig, err := s.Sign(sk, 0, []byte("msg"))
	require.NoError(t, err)
	require.Len(t, sig, s.SigSize)

	require.NoError(t, s.Verify(vk, 0, []byte("msg"), sig))
	require.Error(t, s.Verify(vk, 0, []byte("tampered"), sig))
}

func TestSingleRejectsOutOfRangePeriod(t *testing.T) {
	s := Single()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x22))
	require.NoError(t, err)

	_, err = s.Sign(sk, 1, []byte("msg"))
	require.ErrorIs(t, err, ErrPeriodOutOfRange)
}

// TestSingleGoldenVectorPeriodZero pins Single's period-0 verification
// key and signature to a fixed reference, since a plain Sign/Verify
// round trip would pass even if the underlying Ed25519 wire layout
// drifted from the reference.
func TestSingleGoldenVectorPeriodZero(t *testing.T) {
	const (
		vkHex  = "03a107bff3ce10be1d70dd18e74bc09967e4d6309ba50d5f1ddc8664125531b8"
		sigHex = "5be81ef213321f88983f668e3e995b4bf4e81cd7e6d4fb8c1862eb067a1de3fdf897807f970ef7dd937678ade66f7a1cc2c76e87c705cbfb1b73c7b62ba2990f"
	)

	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	msg := []byte("KES Single Period")

	s := Single()
	sk, err := s.GenKeyFromSeedBytes(seed)
	require.NoError(t, err)

	vk := s.DeriveVerificationKey(sk)
	require.Equal(t, vkHex, hex.EncodeToString(vk))

	sig, err := s.Sign(sk, 0, msg)
	require.NoError(t, err)
	require.Equal(t, sigHex, hex.EncodeToString(sig))

	require.NoError(t, s.Verify(vk, 0, msg, sig))
}

func TestSingleUpdateExhaustsKey(t *testing.T) {
	s := Single()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x33))
	require.NoError(t, err)

	next, ok, err := s.Update(sk, 0)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, next)
}
