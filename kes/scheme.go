// Package kes implements the Key-Evolving Signature framework used by
// Cardano's block-production keys: a single-period Ed25519 leaf, and
// the binary-tree Sum/CompactSum composition that extends any scheme
// to 2^d periods.
//
// Rust represents "the set of supported KES algorithms is fixed at
// build time" with a sealed trait hierarchy. Go has no typeclass
// deriving story to imitate that with, so this package uses generics
// instead: Scheme[SK] is a value-level descriptor (closures for each
// operation) parameterised over its signing-key type, and Sum/CompactSum
// are themselves generic over their child's signing-key type, so e.g.
// Sum2 = Sum(Sum(Single())) still type-checks with SK inferred at each
// level, without a runtime registry.
package kes

import "errors"

// Error kinds, matching spec component F's failure semantics.
var (
	ErrVerificationFailed = errors.New("kes: verification failed")
	ErrPeriodOutOfRange   = errors.New("kes: period out of range")
)

// Scheme is a KES instantiation, described entirely as a set of
// closures over a signing-key type SK. Every field must be set by a
// constructor (Single, CompactSingle, Sum, CompactSum) before use.
type Scheme[SK any] struct {
	// TotalPeriods is the total number of signing periods this scheme
	// supports (a positive, compile-time-fixed count for any concrete
	// instantiation).
	TotalPeriods int

	// VKSize and SigSize are the raw wire sizes of verification keys
	// and signatures produced by this scheme.
	VKSize  int
	SigSize int

	GenKeyFromSeedBytes   func(seed []byte) (SK, error)
	DeriveVerificationKey func(sk SK) []byte
	Sign                  func(sk SK, period int, msg []byte) ([]byte, error)
	Verify                func(vk []byte, period int, msg []byte, sig []byte) error

	// Update evolves sk from currentPeriod to currentPeriod+1. ok is
	// false when currentPeriod was already the scheme's last period: sk
	// has been forgotten and the returned key is nil.
	Update func(sk SK, currentPeriod int) (next SK, ok bool, err error)

	// Forget destroys sk's locked key material immediately, without
	// evolving it. Used for transient keys and early-exit paths.
	Forget func(sk SK)
}

// CompactScheme is a Scheme whose signatures additionally allow the
// on-path verification key to be recovered directly from the
// signature, which is what lets CompactSum omit storing it alongside
// its sibling.
type CompactScheme[SK any] struct {
	Scheme[SK]

	// RecoverVerificationKey returns the verification key that sig (at
	// the given period) was produced against, without needing it
	// supplied separately.
	RecoverVerificationKey func(period int, sig []byte) []byte
}
