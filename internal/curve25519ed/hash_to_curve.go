package curve25519ed

import "gitlab.com/cardano-base/cardano-crypto-go/internal/field25519"

// CardanoHashToCurve maps a 32-byte uniform value r (as produced by
// hashing the VRF suite/framing bytes, public key and message) to a
// point in the prime-order subgroup, reproducing libsodium's
// cardano_ge25519_from_uniform byte-for-byte:
//
//  1. the top bit of r[31] is extracted and then masked off before the
//     remaining bytes are decoded as a field element and run through
//     Elligator2;
//  2. the resulting Montgomery u-coordinate is converted to an Edwards
//     point by setting the compressed y encoding's sign bit to that
//     same extracted bit;
//  3. the point is then conditionally negated using that same bit
//     again.
//
// Steps 2 and 3 both consuming the same bit is not a simplification
// bug: it is the exact, intentional behaviour of the reference
// construction and must be preserved, not "fixed".
func CardanoHashToCurve(r *[32]byte) (*Point, error) {
	sign := uint64(r[31] >> 7)

	var masked [field25519.ElementSize]byte
	copy(masked[:], r[:])
	masked[31] &= 0x7f

	var rfe field25519.Element
	rfe.SetCanonicalBytes(&masked)

	mp, _ := Elligator2(&rfe)
	y := toEdwardsY(&mp.u)

	yBytes := y.Bytes()
	var compressed [PointSize]byte
	copy(compressed[:], yBytes)
	compressed[31] = (compressed[31] & 0x7f) | byte(sign<<7)

	var h Point
	if _, err := h.SetCompressedBytes(&compressed); err != nil {
		return nil, err
	}

	if sign == 1 {
		h.Negate(&h)
	}

	var result Point
	result.MultiplyByCofactor(&h)
	return &result, nil
}
