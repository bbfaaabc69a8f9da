package kes

import "gitlab.com/cardano-base/cardano-crypto-go/dsign"

// CompactSingle is Single, but the wire signature embeds its own
// verification key (dsign_sig || vk), so a CompactSum built on top of
// it never needs to store that key separately.
func CompactSingle() CompactScheme[*dsign.MLockedSigningKey] {
	base := Single()
	sigSize := dsign.SignatureSize + dsign.VerificationKeySize

	sign := func(sk *dsign.MLockedSigningKey, period int, msg []byte) ([]byte, error) {
		if period != 0 {
			return nil, ErrPeriodOutOfRange
		}
		dsignSig := sk.SignBytes(msg).RawSerialize()
		vk := sk.DeriveVerificationKey().RawSerialize()

		out := make([]byte, 0, sigSize)
		out = append(out, dsignSig...)
		out = append(out, vk...)
		GlobalMetrics.recordSign()
		return out, nil
	}

	recoverVK := func(_ int, sig []byte) []byte {
		return sig[dsign.SignatureSize:]
	}

	verify := func(vk []byte, period int, msg []byte, sig []byte) error {
		if period != 0 || len(sig) != sigSize {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		embeddedVK := recoverVK(period, sig)
		if !ctEqual(embeddedVK, vk) {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}

		vkObj, err := dsign.NewVerificationKey(embeddedVK)
		if err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		sigObj, err := dsign.NewSignature(sig[:dsign.SignatureSize])
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

	base.Sign = sign
	base.Verify = verify
	base.SigSize = sigSize

	return CompactScheme[*dsign.MLockedSigningKey]{
		Scheme:                 base,
		RecoverVerificationKey: recoverVK,
	}
}
