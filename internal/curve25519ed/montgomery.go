package curve25519ed

import (
	"gitlab.com/cardano-base/cardano-crypto-go/internal/disalloweq"
	"gitlab.com/cardano-base/cardano-crypto-go/internal/field25519"
)

// montgomeryA is the Montgomery curve coefficient A for Curve25519:
// v^2 = u^3 + A*u^2 + u, A = 486662.
var montgomeryA = field25519.NewElementFromUint64(486662)

// MontgomeryPoint is a point (u, v) on the birationally-equivalent
// Montgomery form of Curve25519.
type MontgomeryPoint struct {
	_ disalloweq.DisallowEqual

	u, v field25519.Element
}

// U returns the u-coordinate of p.
func (p *MontgomeryPoint) U() *field25519.Element { return &p.u }

// V returns the v-coordinate of p.
func (p *MontgomeryPoint) V() *field25519.Element { return &p.v }

// Elligator2 maps a uniform field element r to a point on the
// Montgomery curve, following Bernstein et al.'s Elligator 2
// construction specialised to Curve25519 (non-square multiplier 2).
// It returns (p, 1) always: the map is total over the field (the one
// division, by 1+2r^2, is well-defined because our field's Invert
// returns zero for a zero input rather than panicking, which simply
// routes that single input through the "square" branch below, since
// IsSquare counts zero as a square, giving u = 0). The
// returned v's sign is chosen so that v's parity matches r's parity,
// an explicit, arbitrary-but-deterministic convention.
func Elligator2(r *field25519.Element) (*MontgomeryPoint, uint64) {
	var negA, one, rr2, d1, d1Inv, d, dSq, au, inner, eps field25519.Element
	negA.Negate(montgomeryA)
	one.One()

	rr2.Square(r)
	rr2.Add(&rr2, &rr2) // 2r^2
	d1.Add(&rr2, &one)  // 1 + 2r^2
	d1Inv.Invert(&d1)
	d.Multiply(&negA, &d1Inv) // d = -A / (1 + 2r^2)

	dSq.Square(&d)
	au.Multiply(montgomeryA, &d)
	inner.Add(&dSq, &au)
	inner.Add(&inner, &one)
	eps.Multiply(&d, &inner) // eps = d^3 + A*d^2 + d

	epsIsSquare := eps.IsSquare()

	var zero, atemp, u field25519.Element
	atemp.ConditionalSelect(montgomeryA, &zero, epsIsSquare) // A if non-square, 0 if square
	u.Add(&d, &atemp)
	u.ConditionalNegate(1 ^ epsIsSquare)

	var u2, u3, aU2, rhs, v field25519.Element
	u2.Square(&u)
	u3.Multiply(&u2, &u)
	aU2.Multiply(montgomeryA, &u2)
	rhs.Add(&u3, &aU2)
	rhs.Add(&rhs, &u)

	v.Sqrt(&rhs)
	v.ConditionalNegate(v.IsOdd() ^ r.IsOdd())

	return &MontgomeryPoint{u: u, v: v}, 1
}

// toEdwardsY returns the Edwards y-coordinate birationally equivalent
// to the Montgomery u-coordinate u: y = (u-1)/(u+1).
func toEdwardsY(u *field25519.Element) field25519.Element {
	var one, num, den, denInv, y field25519.Element
	one.One()
	num.Subtract(u, &one)
	den.Add(u, &one)
	denInv.Invert(&den)
	y.Multiply(&num, &denInv)
	return y
}
