// Package curve25519ed implements the twisted Edwards curve used by
// Ed25519 (-x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19), a = -1), its
// birationally-equivalent Montgomery form (used by X25519 and by the
// Cardano-compatible Elligator2 hash-to-curve), and scalar arithmetic
// modulo the group order L.
//
// Points use extended projective coordinates (X, Y, Z, T), with
// x = X/Z, y = Y/Z, x*y = T/Z.  Addition and doubling use the complete
// formulas for a = -1 twisted Edwards curves (Hisil-Wong-Carter-Dawson,
// "Twisted Edwards Curves Revisited"), so every public entry point
// below is well-defined for every input, including the identity.
package curve25519ed

import (
	"errors"

	"gitlab.com/cardano-base/cardano-crypto-go/internal/disalloweq"
	"gitlab.com/cardano-base/cardano-crypto-go/internal/field25519"
)

// PointSize is the size of a compressed Edwards point in bytes.
const PointSize = 32

var (
	// feD = -121665/121666 mod p.
	feD = func() *field25519.Element {
		var num, den, d field25519.Element
		num.Negate(field25519.NewElementFromUint64(121665))
		den.Invert(field25519.NewElementFromUint64(121666))
		d.Multiply(&num, &den)
		return &d
	}()

	// feD2 = 2*d mod p.
	feD2 = func() *field25519.Element {
		var d2 field25519.Element
		d2.Add(feD, feD)
		return &d2
	}()

	errInvalidPoint = errors.New("curve25519ed: invalid point encoding")
)

// Point is a point on the Ed25519 twisted Edwards curve, in extended
// projective coordinates.
type Point struct {
	_ disalloweq.DisallowEqual

	x, y, z, t field25519.Element
}

// NewIdentityPoint returns a new Point set to the identity element.
func NewIdentityPoint() *Point {
	return new(Point).Identity()
}

// Identity sets p = the identity element (0, 1) and returns p.
func (p *Point) Identity() *Point {
	p.x.Zero()
	p.y.One()
	p.z.One()
	p.t.Zero()
	return p
}

// Set sets p = a and returns p.
func (p *Point) Set(a *Point) *Point {
	p.x.Set(&a.x)
	p.y.Set(&a.y)
	p.z.Set(&a.z)
	p.t.Set(&a.t)
	return p
}

// IsIdentity returns 1 iff p is the identity element, 0 otherwise.
//
// Since Z is always non-zero, p is the identity iff X == 0 and Y == Z,
// without needing to compute an inverse.
func (p *Point) IsIdentity() uint64 {
	return p.x.IsZero() & p.y.Equal(&p.z)
}

// Negate sets p = -a and returns p.
func (p *Point) Negate(a *Point) *Point {
	p.x.Negate(&a.x)
	p.y.Set(&a.y)
	p.z.Set(&a.z)
	p.t.Negate(&a.t)
	return p
}

// ConditionalSelect sets p = a iff ctrl == 0, p = b otherwise, and
// returns p.  ctrl MUST be 0 or 1.
func (p *Point) ConditionalSelect(a, b *Point, ctrl uint64) *Point {
	p.x.ConditionalSelect(&a.x, &b.x, ctrl)
	p.y.ConditionalSelect(&a.y, &b.y, ctrl)
	p.z.ConditionalSelect(&a.z, &b.z, ctrl)
	p.t.ConditionalSelect(&a.t, &b.t, ctrl)
	return p
}

// Equal returns 1 iff p == a (as points, irrespective of the projective
// representative), 0 otherwise.
func (p *Point) Equal(a *Point) uint64 {
	var lx, rx, ly, ry field25519.Element
	lx.Multiply(&p.x, &a.z)
	rx.Multiply(&a.x, &p.z)
	ly.Multiply(&p.y, &a.z)
	ry.Multiply(&a.y, &p.z)
	return lx.Equal(&rx) & ly.Equal(&ry)
}

// Add sets p = a + b and returns p, using the complete addition formula
// for a = -1 twisted Edwards curves in extended coordinates.
func (p *Point) Add(a, b *Point) *Point {
	var A, B, C, D, E, F, G, H field25519.Element

	A.Subtract(&a.y, &a.x)
	var t1 field25519.Element
	t1.Subtract(&b.y, &b.x)
	A.Multiply(&A, &t1)

	B.Add(&a.y, &a.x)
	t1.Add(&b.y, &b.x)
	B.Multiply(&B, &t1)

	C.Multiply(&a.t, feD2)
	C.Multiply(&C, &b.t)

	D.Multiply(&a.z, &b.z)
	D.Add(&D, &D)

	E.Subtract(&B, &A)
	F.Subtract(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)

	p.x.Multiply(&E, &F)
	p.y.Multiply(&G, &H)
	p.t.Multiply(&E, &H)
	p.z.Multiply(&F, &G)

	return p
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	var A, B, C, Dd, E, G, Fc, H field25519.Element

	A.Square(&a.x)
	B.Square(&a.y)
	C.Square(&a.z)
	C.Add(&C, &C)
	Dd.Negate(&A)

	var sum field25519.Element
	sum.Add(&a.x, &a.y)
	E.Square(&sum)
	E.Subtract(&E, &A)
	E.Subtract(&E, &B)

	G.Add(&Dd, &B)
	Fc.Subtract(&G, &C)
	H.Subtract(&Dd, &B)

	p.x.Multiply(&E, &Fc)
	p.y.Multiply(&G, &H)
	p.t.Multiply(&E, &H)
	p.z.Multiply(&Fc, &G)

	return p
}

// CompressedBytes returns the canonical 32-byte little-endian
// compressed encoding of p: the y-coordinate with the top bit of the
// last byte replaced by the sign (parity) of the x-coordinate.
func (p *Point) CompressedBytes() []byte {
	var zInv, x, y field25519.Element
	zInv.Invert(&p.z)
	x.Multiply(&p.x, &zInv)
	y.Multiply(&p.y, &zInv)

	dst := y.Bytes()
	sign := byte(x.IsOdd())
	dst[31] = (dst[31] & 0x7f) | (sign << 7)
	return dst
}

// SetCompressedBytes sets p = the point encoded by src, and returns
// (p, nil) on success or (nil, error) if src is not the encoding of a
// point on the curve.
func (p *Point) SetCompressedBytes(src *[PointSize]byte) (*Point, error) {
	sign := uint64(src[31] >> 7)

	var yBytes [field25519.ElementSize]byte
	copy(yBytes[:], src[:])
	yBytes[31] &= 0x7f

	var y field25519.Element
	if _, err := y.SetCanonicalBytesChecked(&yBytes); err != nil {
		return nil, errInvalidPoint
	}

	var ySq, u, v, one field25519.Element
	one.One()
	ySq.Square(&y)
	u.Subtract(&ySq, &one)     // u = y^2 - 1
	v.Multiply(&ySq, feD)      // v = d*y^2 + 1
	v.Add(&v, &one)

	var x field25519.Element
	if ok := x.SqrtRatio(&u, &v); ok != 1 {
		return nil, errInvalidPoint
	}
	x.ConditionalNegate(x.IsOdd() ^ sign)

	p.x.Set(&x)
	p.y.Set(&y)
	p.z.One()
	p.t.Multiply(&x, &y)

	return p, nil
}

// IsSmallOrder returns 1 iff p has order dividing the cofactor (8), 0
// otherwise.
func (p *Point) IsSmallOrder() uint64 {
	var eight Point
	eight.Double(p)
	eight.Double(&eight)
	eight.Double(&eight)
	return eight.IsIdentity()
}

// MultiplyByCofactor sets p = 8*a (clearing the cofactor) and returns p.
func (p *Point) MultiplyByCofactor(a *Point) *Point {
	p.Double(a)
	p.Double(p)
	p.Double(p)
	return p
}
