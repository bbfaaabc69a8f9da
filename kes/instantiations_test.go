package kes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumInstantiationPeriodCounts(t *testing.T) {
	require.Equal(t, 1, Sum0().TotalPeriods)
	require.Equal(t, 2, Sum1().TotalPeriods)
	require.Equal(t, 4, Sum2().TotalPeriods)
	require.Equal(t, 8, Sum3().TotalPeriods)
	require.Equal(t, 128, Sum7().TotalPeriods)
}

func TestCompactSumInstantiationPeriodCounts(t *testing.T) {
	require.Equal(t, 1, CompactSum0().TotalPeriods)
	require.Equal(t, 2, CompactSum1().TotalPeriods)
	require.Equal(t, 128, CompactSum7().TotalPeriods)
}

func TestSum3SignVerifyAtEveryPeriod(t *testing.T) {
	s := Sum3()
	sk, err := s.GenKeyFromSeedBytes(testSeed(0x81))
	require.NoError(t, err)
	vk := s.DeriveVerificationKey(sk)
	require.Equal(t, 8, s.TotalPeriods)

	for period := 0; period < 8; period++ {
		msg := []byte{byte(period), byte(period + 1)}
		sig, err := s.Sign(sk, period, msg)
		require.NoError(t, err, "period %d", period)
		require.NoError(t, s.Verify(vk, period, msg, sig), "period %d", period)

		_, ok, err := s.Update(sk, period)
		require.NoError(t, err)
		require.Equal(t, period < 7, ok)
	}
}
