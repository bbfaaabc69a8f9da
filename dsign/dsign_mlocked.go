package dsign

import (
	"crypto/sha512"

	"gitlab.com/cardano-base/cardano-crypto-go/directserialise"
	"gitlab.com/cardano-base/cardano-crypto-go/internal/curve25519ed"
	"gitlab.com/cardano-base/cardano-crypto-go/mlock"
)

// MLockedSigningKey is the locked-memory counterpart of SigningKey: it
// stores only the 32-byte seed, behind an mlock.SizedBytes allocation,
// and exposes the seed solely through direct-serialise-style pointer
// callbacks. The verification key is cached alongside it in ordinary
// memory, since it is public.
type MLockedSigningKey struct {
	seed *mlock.SizedBytes[[SeedSize]byte]
	vk   [VerificationKeySize]byte
}

// GenMLockedKeyFromSeedBytes derives a locked signing key from a
// 32-byte seed. The caller-supplied seed is copied into locked memory
// and is not retained by the caller's copy, which callers should
// forget themselves (e.g. by overwriting it) once this call returns.
func GenMLockedKeyFromSeedBytes(seed *[SeedSize]byte) (*MLockedSigningKey, error) {
	_, a := expandSeed(seed)

	locked, err := mlock.NewSized[[SeedSize]byte]()
	if err != nil {
		return nil, err
	}
	copy(locked.Bytes(), seed[:])

	msk := &MLockedSigningKey{seed: locked}
	copy(msk.vk[:], a.CompressedBytes())
	return msk, nil
}

// GenMLockedKeyFromDirectDeserialise reconstructs a locked signing key
// by pulling its 32-byte seed through a directserialise.Puller, e.g.
// from another locked buffer that is itself being torn down. The pull
// writes straight into locked memory; the seed is then copied into a
// local array only to derive the verification key, and that copy is
// zeroed before returning.
func GenMLockedKeyFromDirectDeserialise(pull directserialise.Puller) (*MLockedSigningKey, error) {
	locked, err := mlock.NewSized[[SeedSize]byte]()
	if err != nil {
		return nil, err
	}

	var pullErr error
	locked.WithPointer(func(ptr *byte, n int) {
		pullErr = pull(ptr, n)
	})
	if pullErr != nil {
		locked.Destroy()
		return nil, pullErr
	}

	var seed [SeedSize]byte
	copy(seed[:], locked.Bytes())
	_, a := expandSeed(&seed)
	for i := range seed {
		seed[i] = 0
	}

	msk := &MLockedSigningKey{seed: locked}
	copy(msk.vk[:], a.CompressedBytes())
	return msk, nil
}

// DeriveVerificationKey returns msk's verification key.
func (msk *MLockedSigningKey) DeriveVerificationKey() *VerificationKey {
	return &VerificationKey{bytes: msk.vk}
}

// Clone returns a copy of msk backed by a fresh locked allocation.
func (msk *MLockedSigningKey) Clone() (*MLockedSigningKey, error) {
	cloned, err := msk.seed.Clone()
	if err != nil {
		return nil, err
	}
	return &MLockedSigningKey{seed: cloned, vk: msk.vk}, nil
}

// ForgetSigningKey zeroes and unlocks msk's seed. Calling any other
// method on msk after ForgetSigningKey is a programming error.
func (msk *MLockedSigningKey) ForgetSigningKey() {
	msk.seed.Destroy()
}

// DirectSerialise invokes push with a pointer to msk's 32-byte seed,
// implementing directserialise.DirectSerialise.
func (msk *MLockedSigningKey) DirectSerialise(push directserialise.Pusher) error {
	var callErr error
	msk.seed.WithPointer(func(ptr *byte, n int) {
		callErr = push(ptr, n)
	})
	return callErr
}

// SerialisedSize implements directserialise.SizeOf.
func (msk *MLockedSigningKey) SerialisedSize() int { return SeedSize }

// SignBytes signs msg with the locked signing key msk.
func (msk *MLockedSigningKey) SignBytes(msg []byte) *Signature {
	var seed [SeedSize]byte
	copy(seed[:], msk.seed.Bytes())

	az, a := expandSeed(&seed)
	prefix := az[32:]

	rHash := sha512.New()
	rHash.Write(prefix)
	rHash.Write(msg)
	rDigest := rHash.Sum(nil)

	var rScalar curve25519ed.Scalar
	rScalar.SetWideBytes(rDigest)
	var rBytes [curve25519ed.ScalarSize]byte
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

	// seed and az both carry key material derived from the locked seed;
	// clear the local copies before returning.
	for i := range seed {
		seed[i] = 0
	}
	for i := range az {
		az[i] = 0
	}

	var sig Signature
	copy(sig.bytes[:32], rCompressed)
	copy(sig.bytes[32:], sScalar.Bytes())
	return &sig
}
