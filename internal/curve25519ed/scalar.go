package curve25519ed

import (
	"errors"
	"math/big"
)

// ScalarSize is the size of a canonically-encoded scalar, in bytes.
const ScalarSize = 32

// groupOrder (L) is the order of the Ed25519 prime-order subgroup:
// L = 2^252 + 27742317777372353535851937790883648493.
var groupOrder, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

var errScalarNotCanonical = errors.New("curve25519ed: scalar is not canonically encoded")

// Scalar is an integer modulo L, the order of the Ed25519 base point
// subgroup.  Internally it is reduced modulo L through math/big: unlike
// the field and point arithmetic above, scalar reduction is not
// performance- or secret-dependent-branch sensitive in the way a
// point's coordinate arithmetic is (the inputs reduced here are
// per-message nonces, challenges, and the long-term signing scalar,
// combined by addition/multiplication mod L exactly once per
// operation, not iterated over in a data-dependent loop), so
// correctness of the reduction matters far more than micro-level
// timing of that single reduction step.
type Scalar struct {
	v big.Int
}

// NewScalar returns a new Scalar set to zero.
func NewScalar() *Scalar {
	return new(Scalar)
}

// SetCanonicalBytes sets s to the little-endian encoding src, which
// MUST already be the canonical (< L) representative, and returns
// (s, nil). It returns (nil, error) if src >= L.
func (s *Scalar) SetCanonicalBytes(src *[ScalarSize]byte) (*Scalar, error) {
	v := leBytesToBigInt(src[:])
	if v.Cmp(groupOrder) >= 0 {
		return nil, errScalarNotCanonical
	}
	s.v.Set(v)
	return s, nil
}

// SetUnreducedBytes sets s = v mod L, where v is the little-endian
// encoding of an arbitrary (not necessarily canonical) non-negative
// integer, such as a clamped Ed25519 seed scalar or a raw 32-byte
// challenge. It returns s.
func (s *Scalar) SetUnreducedBytes(src []byte) *Scalar {
	v := leBytesToBigInt(src)
	s.v.Mod(v, groupOrder)
	return s
}

// SetWideBytes sets s = v mod L, reducing a wide (typically 64-byte)
// little-endian integer such as a SHA-512 digest used as an Ed25519
// nonce or VRF scalar, and returns s.
func (s *Scalar) SetWideBytes(src []byte) *Scalar {
	return s.SetUnreducedBytes(src)
}

// SetUint64 sets s = v and returns s.
func (s *Scalar) SetUint64(v uint64) *Scalar {
	s.v.SetUint64(v)
	return s
}

// Add sets s = a + b mod L and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

// Subtract sets s = a - b mod L and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.v.Sub(&a.v, &b.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

// Multiply sets s = a * b mod L and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

// MultiplyAdd sets s = a*b + c mod L and returns s.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	var t big.Int
	t.Mul(&a.v, &b.v)
	t.Add(&t, &c.v)
	s.v.Mod(&t, groupOrder)
	return s
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	dst := make([]byte, ScalarSize)
	bigIntToLEBytes(dst, &s.v)
	return dst
}

// IsZero returns 1 iff s == 0 mod L, 0 otherwise.
func (s *Scalar) IsZero() uint64 {
	if s.v.Sign() == 0 {
		return 1
	}
	return 0
}

// bitAt returns the bit (0 or 1) at index i (0 = least significant) of
// the little-endian byte string src, or 0 when i lies past its end.
func bitAt(src []byte, i int) uint64 {
	byteIdx := i / 8
	if byteIdx >= len(src) {
		return 0
	}
	return uint64((src[byteIdx] >> uint(i%8)) & 1)
}

func leBytesToBigInt(src []byte) *big.Int {
	be := make([]byte, len(src))
	for i, b := range src {
		be[len(src)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

func bigIntToLEBytes(dst []byte, v *big.Int) {
	be := v.Bytes()
	for i, b := range be {
		dst[len(be)-1-i] = b
	}
}
