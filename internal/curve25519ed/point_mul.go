package curve25519ed

import (
	"sync"

	"gitlab.com/cardano-base/cardano-crypto-go/internal/field25519"
)

// ScalarMult sets p = scalar*a, where scalar is a 32-byte little-endian
// unsigned integer (not required to be reduced modulo L — in
// particular, a clamped Ed25519 seed scalar, whose top bits exceed L,
// is used directly), and returns p. The computation is a fixed,
// 4-bit-window double-and-add ladder: every window of every scalar
// touches every table entry, so the sequence of field operations does
// not depend on scalar's value.
func (p *Point) ScalarMult(a *Point, scalar *[ScalarSize]byte) *Point {
	tbl := newLookupTable(a)

	acc := NewIdentityPoint()
	var sel Point
	for window := 63; window >= 0; window-- {
		if window != 63 {
			acc.Double(acc)
			acc.Double(acc)
			acc.Double(acc)
			acc.Double(acc)
		}

		idx := nibbleAt(scalar[:], window)
		tbl.Select(&sel, idx)
		acc.Add(acc, &sel)
	}

	return p.Set(acc)
}

// ScalarMultBase sets p = scalar*G, where G is the Ed25519 base point,
// and returns p.
func (p *Point) ScalarMultBase(scalar *[ScalarSize]byte) *Point {
	return p.ScalarMult(Generator(), scalar)
}

// nibbleAt returns the 4-bit window at the given index (0 = least
// significant nibble) of the little-endian byte string src.
func nibbleAt(src []byte, i int) uint64 {
	byteIdx := i / 2
	if byteIdx >= len(src) {
		return 0
	}
	if i%2 == 0 {
		return uint64(src[byteIdx] & 0x0f)
	}
	return uint64(src[byteIdx] >> 4)
}

var (
	generatorOnce  sync.Once
	generatorPoint Point
)

// Generator returns the Ed25519 base point G, with y = 4/5 and the
// even (sign bit 0) square root of x, as fixed by RFC 8032.
func Generator() *Point {
	generatorOnce.Do(func() {
		var y, ySq, u, v, one, x, invFive field25519.Element
		one.One()
		invFive.Invert(field25519.NewElementFromUint64(5))
		y.Multiply(field25519.NewElementFromUint64(4), &invFive)

		ySq.Square(&y)
		u.Subtract(&ySq, &one)
		v.Multiply(&ySq, feD)
		v.Add(&v, &one)

		if ok := x.SqrtRatio(&u, &v); ok != 1 {
			panic("curve25519ed: base point is not on the curve")
		}
		x.ConditionalNegate(x.IsOdd())

		generatorPoint.x.Set(&x)
		generatorPoint.y.Set(&y)
		generatorPoint.z.One()
		generatorPoint.t.Multiply(&x, &y)
	})
	return &generatorPoint
}
