package curve25519ed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityIsIdentity(t *testing.T) {
	id := NewIdentityPoint()
	require.EqualValues(t, 1, id.IsIdentity())
}

func TestGeneratorCompressDecompressRoundTrip(t *testing.T) {
	g := Generator()
	require.EqualValues(t, 0, g.IsIdentity())

	var compressed [PointSize]byte
	copy(compressed[:], g.CompressedBytes())

	decoded, err := new(Point).SetCompressedBytes(&compressed)
	require.NoError(t, err)
	require.EqualValues(t, 1, g.Equal(decoded))
}

func TestAddDoubleConsistency(t *testing.T) {
	g := Generator()

	var sum, dbl Point
	sum.Add(g, g)
	dbl.Double(g)
	require.EqualValues(t, 1, sum.Equal(&dbl))
}

func TestScalarMultByZeroIsIdentity(t *testing.T) {
	var zero [ScalarSize]byte
	result := new(Point).ScalarMultBase(&zero)
	require.EqualValues(t, 1, result.IsIdentity())
}

func TestScalarMultByOneIsGenerator(t *testing.T) {
	var one [ScalarSize]byte
	one[0] = 1
	result := new(Point).ScalarMultBase(&one)
	require.EqualValues(t, 1, result.Equal(Generator()))
}

func TestScalarMultByTwoMatchesDouble(t *testing.T) {
	var two [ScalarSize]byte
	two[0] = 2
	result := new(Point).ScalarMultBase(&two)

	var dbl Point
	dbl.Double(Generator())
	require.EqualValues(t, 1, result.Equal(&dbl))
}

func TestCofactorClearingOfGenerator(t *testing.T) {
	var cleared Point
	cleared.MultiplyByCofactor(Generator())
	require.EqualValues(t, 0, cleared.IsSmallOrder())
}

func TestNegateRoundTrips(t *testing.T) {
	g := Generator()
	var neg, back Point
	neg.Negate(g)
	back.Negate(&neg)
	require.EqualValues(t, 1, back.Equal(g))
}

func TestHashToCurveProducesValidSubgroupPoint(t *testing.T) {
	var r [32]byte
	for i := range r {
		r[i] = byte(i * 11)
	}

	h, err := CardanoHashToCurve(&r)
	require.NoError(t, err)
	require.EqualValues(t, 0, h.IsIdentity())
}
