package kes

import "gitlab.com/cardano-base/cardano-crypto-go/xhash"

// CompactSum is Sum, but each signature carries only the sibling
// verification key instead of both: the on-path child vk is recovered
// from the child signature itself via child.RecoverVerificationKey,
// which is what CompactSingle (and any CompactSum built on it) makes
// possible.
func CompactSum[C any](child CompactScheme[C], hashAlg xhash.Algorithm) CompactScheme[*SumSigningKey[C]] {
	base := Sum(child.Scheme, hashAlg)
	childPeriods := child.TotalPeriods
	vkSize := hashAlg.OutputSize()

	sign := func(sk *SumSigningKey[C], period int, msg []byte) ([]byte, error) {
		if period < 0 || period >= 2*childPeriods {
			return nil, ErrPeriodOutOfRange
		}

		var childSig, sibling []byte
		var err error
		if period < childPeriods {
			childSig, err = child.Sign(sk.child, period, msg)
			sibling = sk.vkRight
		} else {
			childSig, err = child.Sign(sk.child, period-childPeriods, msg)
			sibling = sk.vkLeft
		}
		if err != nil {
			return nil, err
		}

		out := make([]byte, 0, len(childSig)+vkSize)
		out = append(out, childSig...)
		out = append(out, sibling...)
		GlobalMetrics.recordSign()
		return out, nil
	}

	childSigSize := child.SigSize
	sigSize := childSigSize + vkSize

	// onPathVK reconstructs the parent vk from a CompactSum signature:
	// the child signature recovers its own (on-path) vk, which combines
	// with the stored sibling vk in left/right order depending on which
	// half of the period range was signed.
	onPathVK := func(period int, sig []byte) (childVK, parentVK []byte) {
		childSig := sig[:childSigSize]
		sibling := sig[childSigSize:]
		childVK = child.RecoverVerificationKey(period%childPeriods, childSig)

		if period < childPeriods {
			parentVK = hashAlg.HashConcat(childVK, sibling)
		} else {
			parentVK = hashAlg.HashConcat(sibling, childVK)
		}
		return childVK, parentVK
	}

	verify := func(vk []byte, period int, msg []byte, sig []byte) error {
		if period < 0 || period >= 2*childPeriods || len(sig) != sigSize {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}

		childVK, parentVK := onPathVK(period, sig)
		if !ctEqual(parentVK, vk) {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}

		if err := child.Verify(childVK, period%childPeriods, msg, sig[:childSigSize]); err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		GlobalMetrics.recordVerify(true)
		return nil
	}

	recoverVK := func(period int, sig []byte) []byte {
		_, parentVK := onPathVK(period, sig)
		return parentVK
	}

	base.Sign = sign
	base.Verify = verify
	base.SigSize = sigSize

	return CompactScheme[*SumSigningKey[C]]{
		Scheme:                 base,
		RecoverVerificationKey: recoverVK,
	}
}
