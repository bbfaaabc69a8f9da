package field25519

// Fixed, public exponents used to derive field-level constants and to
// compute inverses/square-roots.  Because these exponents never depend
// on caller-supplied data, exponentiating by them is constant-time with
// respect to the (secret) base, even though the control flow depends on
// the (public, fixed) exponent bits.
var (
	// invExponent = p - 2 = 2^255 - 21.
	invExponent = mustHexBytes("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeb")

	// sqrtCandidateExponent = (p + 3) / 8 = 2^252 - 2.
	sqrtCandidateExponent = mustHexBytes("0ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe")

	// sqrtM1Exponent = (p - 1) / 4 = 2^253 - 5.
	sqrtM1Exponent = mustHexBytes("1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffb")
)

// sqrtM1 is a fixed square root of -1 modulo p, derived at init time as
// 2^((p-1)/4).
var sqrtM1 = func() *Element {
	two := NewElementFromUint64(2)
	return NewElement().pow(two, sqrtM1Exponent)
}()

func mustHexBytes(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := range b {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		b[i] = hi<<4 | lo
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		panic("field25519: invalid hex constant")
	}
}

// pow sets fe = base^exponent, where exponent is a fixed, public,
// big-endian byte string, and returns fe.  Left-to-right square-and-
// multiply: the sequence of squarings and multiplications depends only
// on exponent (public and fixed per call site), never on base.
func (fe *Element) pow(base *Element, exponent []byte) *Element {
	var acc Element
	acc.One()

	for _, b := range exponent {
		for bit := 7; bit >= 0; bit-- {
			acc.Square(&acc)
			if (b>>uint(bit))&1 == 1 {
				acc.Multiply(&acc, base)
			}
		}
	}

	return fe.Set(&acc)
}

// Invert sets fe = 1/a and returns fe.  If a is zero, the result is
// zero (0^(p-2) == 0), matching the well-defined but degenerate
// Fermat's-little-theorem behaviour.
func (fe *Element) Invert(a *Element) *Element {
	return fe.pow(a, invExponent)
}

// IsSquare returns 1 iff fe is a quadratic residue modulo p (including
// zero), 0 otherwise.
func (fe *Element) IsSquare() uint64 {
	// Euler's criterion: fe^((p-1)/2) is 1 for non-zero squares, and
	// p-1 (i.e. -1) for non-residues.
	var t Element
	t.pow(fe, sqrtM1Exponent) // fe^((p-1)/4)
	t.Square(&t)              // fe^((p-1)/2)

	var one Element
	one.One()

	return t.Equal(&one) | fe.IsZero()
}

// Sqrt sets fe = sqrt(a) and returns (fe, 1) if a is a square modulo p,
// or leaves fe unspecified and returns (fe, 0) if it is not.  When a
// square root exists, the specific root returned (of the two) is the
// one produced by the p≡5(mod 8) algorithm below; callers that need a
// particular sign must apply ConditionalNegate based on IsOdd.
func (fe *Element) Sqrt(a *Element) (*Element, uint64) {
	// p ≡ 5 (mod 8) square-root algorithm (as used by Ed25519/X25519):
	//   candidate = a^((p+3)/8)
	//   if candidate^2 == a:      root = candidate
	//   if candidate^2 == -a:     root = candidate * sqrtM1
	//   else:                     no root exists
	var candidate Element
	candidate.pow(a, sqrtCandidateExponent)

	var candidateSq Element
	candidateSq.Square(&candidate)

	var negA Element
	negA.Negate(a)

	isRoot := candidateSq.Equal(a)
	isNegRoot := candidateSq.Equal(&negA)

	var adjusted Element
	adjusted.Multiply(&candidate, sqrtM1)
	candidate.ConditionalSelect(&candidate, &adjusted, isNegRoot)

	fe.Set(&candidate)
	return fe, isRoot | isNegRoot
}

// SqrtRatio sets fe to a square root of u/v if one exists, following
// the ristretto255/decaf-style convention used by Elligator2: it
// returns 1 if u/v is square (fe is a correct root) and 0 otherwise (fe
// is instead set to a square root of i*u/v, where i = sqrtM1, matching
// the standard "invsqrt" fallback used by hash-to-curve constructions).
func (fe *Element) SqrtRatio(u, v *Element) uint64 {
	var vInv, uov Element
	vInv.Invert(v)
	uov.Multiply(u, &vInv)

	_, ok := fe.Sqrt(&uov)
	if ok == 1 {
		return 1
	}

	var iuov Element
	iuov.Multiply(&uov, sqrtM1)
	fe.Sqrt(&iuov)
	return 0
}
