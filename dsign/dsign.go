// Package dsign implements Ed25519 (RFC 8032) digital signatures: the
// plain heap-resident variant used for verification keys and most
// testing, and (in dsign_mlocked.go) a locked-memory variant for
// long-lived signing keys.
package dsign

import (
	"crypto/sha512"
	"errors"

	"gitlab.com/cardano-base/cardano-crypto-go/internal/curve25519ed"
)

// Sizes, in bytes, of the raw serialised forms of each type below.
const (
	SeedSize              = 32
	VerificationKeySize   = 32
	SignatureSize         = 64
	expandedSecretKeySize = 64
)

var (
	// ErrInvalidSignature is returned by VerifyBytes when the signature does
	// not verify under the given key and message.
	ErrInvalidSignature = errors.New("dsign: invalid signature")
	// ErrInvalidVerificationKey is returned when a verification key does
	// not decode to a valid curve point.
	ErrInvalidVerificationKey = errors.New("dsign: invalid verification key")
)

// SigningKey is a heap-resident Ed25519 signing key: the 32-byte seed
// followed by the 32-byte public key, exactly as spec component D
// describes ("store (seed || A)").
type SigningKey struct {
	seed [SeedSize]byte
	vk   [VerificationKeySize]byte
}

// VerificationKey is an Ed25519 public key.
type VerificationKey struct {
	bytes [VerificationKeySize]byte
}

// Signature is a raw 64-byte Ed25519 signature (R || S).
type Signature struct {
	bytes [SignatureSize]byte
}

// expandSeed computes az = SHA-512(seed), clamps it per RFC 8032, and
// returns the clamped 64-byte digest alongside A = clamped-scalar * B.
func expandSeed(seed *[SeedSize]byte) (az [expandedSecretKeySize]byte, a *curve25519ed.Point) {
	h := sha512.Sum512(seed[:])
	az = h
	az[0] &= 248
	az[31] = (az[31] & 0x7f) | 0x40

	var scalarBytes [curve25519ed.ScalarSize]byte
	copy(scalarBytes[:], az[:32])

	a = new(curve25519ed.Point).ScalarMultBase(&scalarBytes)
	return az, a
}

// GenKeyFromSeedBytes derives a SigningKey from a 32-byte seed.
func GenKeyFromSeedBytes(seed *[SeedSize]byte) *SigningKey {
	_, a := expandSeed(seed)

	sk := &SigningKey{seed: *seed}
	copy(sk.vk[:], a.CompressedBytes())
	return sk
}

// DeriveVerificationKey returns sk's verification key.
func (sk *SigningKey) DeriveVerificationKey() *VerificationKey {
	return &VerificationKey{bytes: sk.vk}
}

// RawSerialize returns the 32-byte seed. Signing keys are never
// serialised in their expanded form.
func (sk *SigningKey) RawSerialize() []byte {
	out := make([]byte, SeedSize)
	copy(out, sk.seed[:])
	return out
}

// SignBytes signs msg with sk, following RFC 8032's deterministic
// Ed25519 signing algorithm. There is no context parameter: signing
// always uses the empty context.
func SignBytes(sk *SigningKey, msg []byte) *Signature {
	az, a := expandSeed(&sk.seed)
	prefix := az[32:]

	rHash := sha512.New()
	rHash.Write(prefix)
	rHash.Write(msg)
	rDigest := rHash.Sum(nil)

	var rScalar curve25519ed.Scalar
	rScalar.SetWideBytes(rDigest)
	rBytes := [curve25519ed.ScalarSize]byte{}
	copy(rBytes[:], rScalar.Bytes())

	R := new(curve25519ed.Point).ScalarMultBase(&rBytes)
	rCompressed := R.CompressedBytes()

	kHash := sha512.New()
	kHash.Write(rCompressed)
	kHash.Write(a.CompressedBytes())
	kHash.Write(msg)
	kDigest := kHash.Sum(nil)

	var kScalar curve25519ed.Scalar
	kScalar.SetWideBytes(kDigest)

	var aScalar curve25519ed.Scalar
	aScalar.SetUnreducedBytes(az[:32])

	var sScalar curve25519ed.Scalar
	sScalar.MultiplyAdd(&kScalar, &aScalar, &rScalar)

	var sig Signature
	copy(sig.bytes[:32], rCompressed)
	copy(sig.bytes[32:], sScalar.Bytes())
	return &sig
}

// VerifyBytes verifies sig against msg under vk.
func VerifyBytes(vk *VerificationKey, msg []byte, sig *Signature) error {
	var vkArr [curve25519ed.PointSize]byte
	copy(vkArr[:], vk.bytes[:])
	A, err := new(curve25519ed.Point).SetCompressedBytes(&vkArr)
	if err != nil {
		return ErrInvalidVerificationKey
	}

	var rArr [curve25519ed.PointSize]byte
	copy(rArr[:], sig.bytes[:32])
	R, err := new(curve25519ed.Point).SetCompressedBytes(&rArr)
	if err != nil {
		return ErrInvalidSignature
	}

	var sCanonical [curve25519ed.ScalarSize]byte
	copy(sCanonical[:], sig.bytes[32:])
	sScalar, err := new(curve25519ed.Scalar).SetCanonicalBytes(&sCanonical)
	if err != nil {
		return ErrInvalidSignature
	}

	kHash := sha512.New()
	kHash.Write(sig.bytes[:32])
	kHash.Write(vk.bytes[:])
	kHash.Write(msg)
	kDigest := kHash.Sum(nil)

	var kScalar curve25519ed.Scalar
	kScalar.SetWideBytes(kDigest)

	sBytesArr := [curve25519ed.ScalarSize]byte{}
	copy(sBytesArr[:], sScalar.Bytes())
	lhs := new(curve25519ed.Point).ScalarMultBase(&sBytesArr)

	kBytesArr := [curve25519ed.ScalarSize]byte{}
	copy(kBytesArr[:], kScalar.Bytes())
	kA := new(curve25519ed.Point).ScalarMult(A, &kBytesArr)

	rhs := new(curve25519ed.Point).Add(R, kA)

	if lhs.Equal(rhs) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// RawSerialize returns vk's 32-byte encoding.
func (vk *VerificationKey) RawSerialize() []byte {
	out := make([]byte, VerificationKeySize)
	copy(out, vk.bytes[:])
	return out
}

// NewVerificationKey parses a 32-byte verification key. It does not
// check that the bytes decode to a valid curve point; use VerifyBytes
// or SetCompressedBytes for that.
func NewVerificationKey(raw []byte) (*VerificationKey, error) {
	if len(raw) != VerificationKeySize {
		return nil, ErrInvalidVerificationKey
	}
	var vk VerificationKey
	copy(vk.bytes[:], raw)
	return &vk, nil
}

// RawSerialize returns sig's 64-byte encoding.
func (sig *Signature) RawSerialize() []byte {
	out := make([]byte, SignatureSize)
	copy(out, sig.bytes[:])
	return out
}

// NewSignature parses a 64-byte signature.
func NewSignature(raw []byte) (*Signature, error) {
	if len(raw) != SignatureSize {
		return nil, errors.New("dsign: signature must be 64 bytes")
	}
	var sig Signature
	copy(sig.bytes[:], raw)
	return &sig, nil
}
