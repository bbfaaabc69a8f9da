package kes

import (
	"gitlab.com/cardano-base/cardano-crypto-go/dsign"
	"gitlab.com/cardano-base/cardano-crypto-go/xhash"
)

// Sum0 through Sum7 are the standard depth-0..7 Sum instantiations,
// each doubling the period count of the one below it (Sum0 has 1
// period, Sum7 has 128). Cardano block-producing keys use Sum6 or
// Sum7 depending on era.
func Sum0() Scheme[*dsign.MLockedSigningKey] { return Single() }

func Sum1() Scheme[*SumSigningKey[*dsign.MLockedSigningKey]] {
	return Sum(Sum0(), xhash.Blake2b256Algorithm)
}

func Sum2() Scheme[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]] {
	return Sum(Sum1(), xhash.Blake2b256Algorithm)
}

func Sum3() Scheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]] {
	return Sum(Sum2(), xhash.Blake2b256Algorithm)
}

func Sum4() Scheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]] {
	return Sum(Sum3(), xhash.Blake2b256Algorithm)
}

func Sum5() Scheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]] {
	return Sum(Sum4(), xhash.Blake2b256Algorithm)
}

func Sum6() Scheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]]] {
	return Sum(Sum5(), xhash.Blake2b256Algorithm)
}

func Sum7() Scheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]]]] {
	return Sum(Sum6(), xhash.Blake2b256Algorithm)
}

// CompactSum0 through CompactSum7 mirror Sum0..Sum7 but use the
// compact encoding, halving per-signature overhead for deep trees.
func CompactSum0() CompactScheme[*dsign.MLockedSigningKey] { return CompactSingle() }

func CompactSum1() CompactScheme[*SumSigningKey[*dsign.MLockedSigningKey]] {
	return CompactSum(CompactSum0(), xhash.Blake2b256Algorithm)
}

func CompactSum2() CompactScheme[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]] {
	return CompactSum(CompactSum1(), xhash.Blake2b256Algorithm)
}

func CompactSum3() CompactScheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]] {
	return CompactSum(CompactSum2(), xhash.Blake2b256Algorithm)
}

func CompactSum4() CompactScheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]] {
	return CompactSum(CompactSum3(), xhash.Blake2b256Algorithm)
}

func CompactSum5() CompactScheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]] {
	return CompactSum(CompactSum4(), xhash.Blake2b256Algorithm)
}

func CompactSum6() CompactScheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]]] {
	return CompactSum(CompactSum5(), xhash.Blake2b256Algorithm)
}

func CompactSum7() CompactScheme[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*SumSigningKey[*dsign.MLockedSigningKey]]]]]]]] {
	return CompactSum(CompactSum6(), xhash.Blake2b256Algorithm)
}
