package kes

import (
	"gitlab.com/cardano-base/cardano-crypto-go/mlock"
	"gitlab.com/cardano-base/cardano-crypto-go/xhash"
)

// SumSigningKey is the signing key for a Sum (or CompactSum) scheme
// built over a child scheme C: the currently-active child key, the
// locked seed for the not-yet-generated sibling subtree, and both
// subtree verification keys (needed to reconstruct the parent vk and,
// for Sum, to include in every signature).
type SumSigningKey[C any] struct {
	child C

	// nextSeed is nil once the right subtree has been generated (i.e.
	// once the key has evolved past period T-1).
	nextSeed *mlock.SizedBytes[[32]byte]

	vkLeft  []byte
	vkRight []byte
}

// Sum extends child to a scheme twice its size, by hashing together two
// independently-seeded child subtrees: periods [0, T) are signed by the
// left subtree, periods [T, 2T) by the right one, where T =
// child.TotalPeriods. A Sum signature carries both subtree
// verification keys alongside the child signature, so verification
// never needs anything beyond the parent vk.
func Sum[C any](child Scheme[C], hashAlg xhash.Algorithm) Scheme[*SumSigningKey[C]] {
	childPeriods := child.TotalPeriods
	vkSize := hashAlg.OutputSize()

	gen := func(seed []byte) (*SumSigningKey[C], error) {
		leftSeed, rightSeed := hashAlg.ExpandSeed(seed)

		leftChild, err := child.GenKeyFromSeedBytes(leftSeed)
		if err != nil {
			return nil, err
		}
		vkLeft := child.DeriveVerificationKey(leftChild)

		// The right subtree is not needed until period T: derive its vk
		// now, then keep only its seed (locked) and forget the transient
		// child key.
		rightChild, err := child.GenKeyFromSeedBytes(rightSeed)
		if err != nil {
			child.Forget(leftChild)
			return nil, err
		}
		vkRight := child.DeriveVerificationKey(rightChild)
		child.Forget(rightChild)

		lockedNextSeed, err := mlock.NewSized[[32]byte]()
		if err != nil {
			child.Forget(leftChild)
			return nil, err
		}
		copy(lockedNextSeed.Bytes(), rightSeed)

		for i := range leftSeed {
			leftSeed[i] = 0
		}
		for i := range rightSeed {
			rightSeed[i] = 0
		}

		GlobalMetrics.recordKeyGenerated()
		return &SumSigningKey[C]{
			child:    leftChild,
			nextSeed: lockedNextSeed,
			vkLeft:   vkLeft,
			vkRight:  vkRight,
		}, nil
	}

	deriveVK := func(sk *SumSigningKey[C]) []byte {
		return hashAlg.HashConcat(sk.vkLeft, sk.vkRight)
	}

	sign := func(sk *SumSigningKey[C], period int, msg []byte) ([]byte, error) {
		if period < 0 || period >= 2*childPeriods {
			return nil, ErrPeriodOutOfRange
		}

		var childSig []byte
		var err error
		if period < childPeriods {
			childSig, err = child.Sign(sk.child, period, msg)
		} else {
			childSig, err = child.Sign(sk.child, period-childPeriods, msg)
		}
		if err != nil {
			return nil, err
		}

		out := make([]byte, 0, len(childSig)+2*vkSize)
		out = append(out, childSig...)
		out = append(out, sk.vkLeft...)
		out = append(out, sk.vkRight...)
		GlobalMetrics.recordSign()
		return out, nil
	}

	childSigSize := child.SigSize
	verify := func(vk []byte, period int, msg []byte, sig []byte) error {
		if period < 0 || period >= 2*childPeriods || len(sig) != childSigSize+2*vkSize {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}

		childSig := sig[:childSigSize]
		vkLeft := sig[childSigSize : childSigSize+vkSize]
		vkRight := sig[childSigSize+vkSize:]

		if !ctEqual(hashAlg.HashConcat(vkLeft, vkRight), vk) {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}

		var err error
		if period < childPeriods {
			err = child.Verify(vkLeft, period, msg, childSig)
		} else {
			err = child.Verify(vkRight, period-childPeriods, msg, childSig)
		}
		if err != nil {
			GlobalMetrics.recordVerify(false)
			return ErrVerificationFailed
		}
		GlobalMetrics.recordVerify(true)
		return nil
	}

	update := func(sk *SumSigningKey[C], currentPeriod int) (*SumSigningKey[C], bool, error) {
		nextPeriod := currentPeriod + 1

		if nextPeriod >= 2*childPeriods {
			forgetSum(child, sk)
			GlobalMetrics.recordUpdate()
			return nil, false, nil
		}

		switch {
		case nextPeriod < childPeriods:
			updatedChild, ok, err := child.Update(sk.child, currentPeriod)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, ErrPeriodOutOfRange
			}
			sk.child = updatedChild

		case nextPeriod == childPeriods:
			child.Forget(sk.child)

			var seed [32]byte
			copy(seed[:], sk.nextSeed.Bytes())
			sk.nextSeed.Destroy()
			sk.nextSeed = nil

			rightChild, err := child.GenKeyFromSeedBytes(seed[:])
			for i := range seed {
				seed[i] = 0
			}
			if err != nil {
				return nil, false, err
			}
			sk.child = rightChild

		default: // childPeriods < nextPeriod < 2*childPeriods
			updatedChild, ok, err := child.Update(sk.child, currentPeriod-childPeriods)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, ErrPeriodOutOfRange
			}
			sk.child = updatedChild
		}

		GlobalMetrics.recordUpdate()
		return sk, true, nil
	}

	forget := func(sk *SumSigningKey[C]) {
		forgetSum(child, sk)
	}

	return Scheme[*SumSigningKey[C]]{
		TotalPeriods:          2 * childPeriods,
		VKSize:                vkSize,
		SigSize:               child.SigSize + 2*vkSize,
		GenKeyFromSeedBytes:   gen,
		DeriveVerificationKey: deriveVK,
		Sign:                  sign,
		Verify:                verify,
		Update:                update,
		Forget:                forget,
	}
}

func forgetSum[C any](child Scheme[C], sk *SumSigningKey[C]) {
	child.Forget(sk.child)
	if sk.nextSeed != nil {
		sk.nextSeed.Destroy()
		sk.nextSeed = nil
	}
}
