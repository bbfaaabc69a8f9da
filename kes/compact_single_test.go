package kes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactSingleSignVerifyRoundTrip(t *testing.T) {
	s := CompactSingle()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x44))
	require.NoError(t, err)

	vk := s.DeriveVerificationKey(sk)
	sig, err := s.Sign(sk, 0, []byte("msg"))
	require.NoError(t, err)
	require.Len(t, sig, s.SigSize)

	require.NoError(t, s.Verify(vk, 0, []byte("msg"), sig))

	recovered := s.RecoverVerificationKey(0, sig)
	require.Equal(t, vk, recovered)
}

func TestCompactSingleRejectsWrongVK(t *testing.T) {
	s := CompactSingle()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x55))
	require.NoError(t, err)
	other, err := s.GenKeyFromSeedBytes(testSeed(0x56))
	require.NoError(t, err)

	sig, err := s.Sign(sk, 0, []byte("msg"))
	require.NoError(t, err)

	wrongVK := s.DeriveVerificationKey(other)
	require.ErrorIs(t, s.Verify(wrongVK, 0, []byte("msg"), sig), ErrVerificationFailed)
}
