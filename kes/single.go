package kes

import (
	"crypto/subtle"

	"gitlab.com/cardano-base/cardano-crypto-go/dsign"
)

// Single is the one-period KES scheme: an Ed25519 key that can only
// sign at period 0. Its signing key is kept in locked memory.
func Single() Scheme[*dsign.MLockedSigningKey] {
	gen := func(seed []byte) (*dsign.MLockedSigningKey, error) {
		var s [dsign.SeedSize]byte
		copy(s[:], seed)
		msk, err := dsign.GenMLockedKeyFromSeedBytes(&s)
		if err != nil {
			return nil, err
		}
		GlobalMetrics.recordKeyGenerated()
		return msk, nil
	}

	deriveVK := func(sk *dsign.MLockedSigningKey) []byte {
		return sk.DeriveVerificationKey().RawSerialize()
	}

	sign := func(sk *dsign.MLockedSigningKey, period int, msg []byte) ([]byte, error) {
		if period != 0 {
			return nil, ErrPeriodOutOfRange
		}
		GlobalMetrics.recordSign()
		return sk.SignBytes(msg).RawSerialize(), nil
	}

	verify := func(vk []byte, period int, msg []byte, sig []byte) error {
		if period != 0 {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		vkObj, err := dsign.NewVerificationKey(vk)
		if err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		sigObj, err := dsign.NewSignature(sig)
		if err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		if err := dsign.VerifyBytes(vkObj, msg, sigObj); err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		GlobalMetrics.recordVerify(true)
		return nil
	}

	update := func(sk *dsign.MLockedSigningKey, currentPeriod int) (*dsign.MLockedSigningKey, bool, error) {
		sk.ForgetSigningKey()
		GlobalMetrics.recordUpdate()
		return nil, false, nil
	}

	forget := func(sk *dsign.MLockedSigningKey) {
		sk.ForgetSigningKey()
	}

	return Scheme[*dsign.MLockedSigningKey]{
		TotalPeriods:          1,
		VKSize:                dsign.VerificationKeySize,
		SigSize:               dsign.SignatureSize,
		GenKeyFromSeedBytes:   gen,
		DeriveVerificationKey: deriveVK,
		Sign:                  sign,
		Verify:                verify,
		Update:                update,
		Forget:                forget,
	}
}

// ctEqual reports whether a and b are equal, in constant time, and
// also requires them to have equal length (subtle.ConstantTimeCompare
// already returns 0 on length mismatch, but this spells out the intent
// at call sites that gate a VerificationFailed on it).
func ctEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
