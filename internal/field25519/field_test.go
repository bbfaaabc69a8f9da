package field25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOne(t *testing.T) {
	var z, o Element
	z.Zero()
	o.One()

	require.EqualValues(t, 1, z.IsZero())
	require.EqualValues(t, 0, o.IsZero())
}

func TestAddSubtractNegate(t *testing.T) {
	var a, b, sum, diff, negA Element
	a.MustRandomize()
	b.MustRandomize()

	sum.Add(&a, &b)
	diff.Subtract(&sum, &b)
	require.EqualValues(t, 1, diff.Equal(&a))

	negA.Negate(&a)
	var shouldBeZero Element
	shouldBeZero.Add(&a, &negA)
	require.EqualValues(t, 1, shouldBeZero.IsZero())
}

func TestMultiplyInvert(t *testing.T) {
	var a, inv, product Element
	a.MustRandomize()

	inv.Invert(&a)
	product.Multiply(&a, &inv)

	var one Element
	one.One()
	require.EqualValues(t, 1, product.Equal(&one))
}

func TestSquareMatchesMultiply(t *testing.T) {
	var a, sq, mul Element
	a.MustRandomize()

	sq.Square(&a)
	mul.Multiply(&a, &a)
	require.EqualValues(t, 1, sq.Equal(&mul))
}

func TestBytesRoundTrip(t *testing.T) {
	var a Element
	a.MustRandomize()

	var buf [ElementSize]byte
	copy(buf[:], a.Bytes())

	var b Element
	b.SetCanonicalBytes(&buf)
	require.EqualValues(t, 1, a.Equal(&b))
}

func TestConditionalSelect(t *testing.T) {
	a := NewElementFromUint64(1)
	b := NewElementFromUint64(2)

	var sel Element
	sel.ConditionalSelect(a, b, 0)
	require.EqualValues(t, 1, sel.Equal(a))

	sel.ConditionalSelect(a, b, 1)
	require.EqualValues(t, 1, sel.Equal(b))
}

func TestIsSquareAndSqrt(t *testing.T) {
	var a, sq Element
	a.MustRandomize()
	sq.Square(&a)

	require.EqualValues(t, 1, sq.IsSquare())

	var root Element
	_, ok := root.Sqrt(&sq)
	require.EqualValues(t, 1, ok)

	var rootSq Element
	rootSq.Square(&root)
	require.EqualValues(t, 1, rootSq.Equal(&sq))
}

func TestSqrtM1SquaresToNegativeOne(t *testing.T) {
	var sq, one, negOne Element
	sq.Square(sqrtM1)
	one.One()
	negOne.Negate(&one)
	require.EqualValues(t, 1, sq.Equal(&negOne))
}

func TestIsOdd(t *testing.T) {
	one := NewElementFromUint64(1)
	two := NewElementFromUint64(2)
	require.EqualValues(t, 1, one.IsOdd())
	require.EqualValues(t, 0, two.IsOdd())
}
