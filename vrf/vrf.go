// Package vrf implements the Cardano-compatible Verifiable Random
// Function: draft-03 of the IETF ECVRF construction, specialised with
// the Elligator2-based hash-to-curve and cofactor-clearing behaviour
// of Cardano's libsodium fork, producing byte-exact 80-byte proofs and
// 64-byte verifiable outputs.
package vrf

import (
	"crypto/sha512"
	"crypto/subtle"
	"errors"

	"gitlab.com/cardano-base/cardano-crypto-go/internal/curve25519ed"
)

// Suite and framing bytes fixed by the draft-03 construction.
const (
	suite = 0x04
	one   = 0x01
	two   = 0x02
	three = 0x03
)

// Sizes, in bytes, of the VRF's fixed-length values.
const (
	SecretKeySize      = 64
	PublicKeySize      = 32
	ProofSize          = 80
	OutputSize         = 64
	challengeShortSize = 16
)

// Error kinds returned by Prove and Verify, matching spec component E.
var (
	ErrInvalidPublicKey   = errors.New("vrf: invalid public key")
	ErrInvalidProof       = errors.New("vrf: malformed proof")
	ErrInvalidScalar      = errors.New("vrf: scalar is not canonically encoded")
	ErrInvalidPoint       = errors.New("vrf: point is not on the curve")
	ErrVerificationFailed = errors.New("vrf: verification failed")
)

// Prove computes the VRF proof for msg under the 64-byte secret key sk
// (32-byte seed || 32-byte public key), following the nine-step
// algorithm of spec component E.
func Prove(sk *[SecretKeySize]byte, msg []byte) (*[ProofSize]byte, error) {
	az := sha512.Sum512(sk[:32])
	az[0] &= 248
	az[31] = (az[31] & 0x7f) | 0x40

	var xBytes [curve25519ed.ScalarSize]byte
	copy(xBytes[:], az[:32])

	pk := sk[32:64]

	rHash := sha512.New()
	rHash.Write([]byte{suite, one})
	rHash.Write(pk)
	rHash.Write(msg)
	rDigest := rHash.Sum(nil)

	var rBytes [32]byte
	copy(rBytes[:], rDigest[:32])

	H, err := curve25519ed.CardanoHashToCurve(&rBytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	hCompressed := H.CompressedBytes()

	Gamma := new(curve25519ed.Point).ScalarMult(H, &xBytes)
	gammaCompressed := Gamma.CompressedBytes()

	nonceHash := sha512.New()
	nonceHash.Write(az[32:64])
	nonceHash.Write(hCompressed)
	nonceDigest := nonceHash.Sum(nil)

	var k curve25519ed.Scalar
	k.SetWideBytes(nonceDigest)
	var kBytes [curve25519ed.ScalarSize]byte
	copy(kBytes[:], k.Bytes())

	kB := new(curve25519ed.Point).ScalarMultBase(&kBytes)
	kH := new(curve25519ed.Point).ScalarMult(H, &kBytes)

	cHash := sha512.New()
	cHash.Write([]byte{suite, two})
	cHash.Write(hCompressed)
	cHash.Write(gammaCompressed)
	cHash.Write(kB.CompressedBytes())
	cHash.Write(kH.CompressedBytes())
	cDigest := cHash.Sum(nil)

	var cScalarBytes [curve25519ed.ScalarSize]byte
	copy(cScalarBytes[:challengeShortSize], cDigest[:challengeShortSize])
	var c curve25519ed.Scalar
	if _, err := c.SetCanonicalBytes(&cScalarBytes); err != nil {
		return nil, ErrInvalidScalar
	}

	var x curve25519ed.Scalar
	x.SetUnreducedBytes(xBytes[:])

	var s curve25519ed.Scalar
	s.MultiplyAdd(&c, &x, &k)

	var proof [ProofSize]byte
	copy(proof[:32], gammaCompressed)
	copy(proof[32:48], cDigest[:challengeShortSize])
	copy(proof[48:80], s.Bytes())

	return &proof, nil
}

// Verify checks proof against msg under the 32-byte public key pk, and
// returns the 64-byte VRF output on success.
func Verify(pk *[PublicKeySize]byte, proof *[ProofSize]byte, msg []byte) (*[OutputSize]byte, error) {
	var gammaCompressed [curve25519ed.PointSize]byte
	copy(gammaCompressed[:], proof[:32])
	Gamma, err := new(curve25519ed.Point).SetCompressedBytes(&gammaCompressed)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	cShort := proof[32:48]

	var sCanonical [curve25519ed.ScalarSize]byte
	copy(sCanonical[:], proof[48:80])
	s, err := new(curve25519ed.Scalar).SetCanonicalBytes(&sCanonical)
	if err != nil {
		return nil, ErrInvalidScalar
	}

	var pkArr [curve25519ed.PointSize]byte
	copy(pkArr[:], pk[:])
	Y, err := new(curve25519ed.Point).SetCompressedBytes(&pkArr)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	rHash := sha512.New()
	rHash.Write([]byte{suite, one})
	rHash.Write(pk[:])
	rHash.Write(msg)
	rDigest := rHash.Sum(nil)
	var rBytes [32]byte
	copy(rBytes[:], rDigest[:32])

	H, err := curve25519ed.CardanoHashToCurve(&rBytes)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	hCompressed := H.CompressedBytes()

	var cScalarBytes [curve25519ed.ScalarSize]byte
	copy(cScalarBytes[:challengeShortSize], cShort)
	var c curve25519ed.Scalar
	if _, err := c.SetCanonicalBytes(&cScalarBytes); err != nil {
		return nil, ErrInvalidScalar
	}

	var sBytesArr [curve25519ed.ScalarSize]byte
	copy(sBytesArr[:], s.Bytes())
	sB := new(curve25519ed.Point).ScalarMultBase(&sBytesArr)

	var cBytesArr [curve25519ed.ScalarSize]byte
	copy(cBytesArr[:], c.Bytes())
	cY := new(curve25519ed.Point).ScalarMult(Y, &cBytesArr)
	var negCY curve25519ed.Point
	negCY.Negate(cY)
	U := new(curve25519ed.Point).Add(sB, &negCY)

	sH := new(curve25519ed.Point).ScalarMult(H, &sBytesArr)
	cGamma := new(curve25519ed.Point).ScalarMult(Gamma, &cBytesArr)
	var negCGamma curve25519ed.Point
	negCGamma.Negate(cGamma)
	V := new(curve25519ed.Point).Add(sH, &negCGamma)

	cPrimeHash := sha512.New()
	cPrimeHash.Write([]byte{suite, two})
	cPrimeHash.Write(hCompressed)
	cPrimeHash.Write(Gamma.CompressedBytes())
	cPrimeHash.Write(U.CompressedBytes())
	cPrimeHash.Write(V.CompressedBytes())
	cPrimeDigest := cPrimeHash.Sum(nil)

	if subtle.ConstantTimeCompare(cPrimeDigest[:challengeShortSize], cShort) != 1 {
		return nil, ErrVerificationFailed
	}

	var cofactorGamma curve25519ed.Point
	cofactorGamma.MultiplyByCofactor(Gamma)

	betaHash := sha512.New()
	betaHash.Write([]byte{suite, three})
	betaHash.Write(cofactorGamma.CompressedBytes())
	betaDigest := betaHash.Sum(nil)

	var beta [OutputSize]byte
	copy(beta[:], betaDigest)
	return &beta, nil
}

// ProofToOutput returns the VRF output implied by proof without
// re-verifying it against a message. Callers that have not already
// called Verify on this exact (pk, proof, msg) triple must not treat
// the result as trustworthy.
func ProofToOutput(proof *[ProofSize]byte) (*[OutputSize]byte, error) {
	var gammaCompressed [curve25519ed.PointSize]byte
	copy(gammaCompressed[:], proof[:32])
	Gamma, err := new(curve25519ed.Point).SetCompressedBytes(&gammaCompressed)
	if err != nil {
		return nil, ErrInvalidPoint
	}

	var cofactorGamma curve25519ed.Point
	cofactorGamma.MultiplyByCofactor(Gamma)

	betaHash := sha512.New()
	betaHash.Write([]byte{suite, three})
	betaHash.Write(cofactorGamma.CompressedBytes())
	betaDigest := betaHash.Sum(nil)

	var beta [OutputSize]byte
	copy(beta[:], betaDigest)
	return &beta, nil
}
