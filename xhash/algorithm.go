package xhash

// Algorithm is a hash algorithm parameterising the KES binary hash
// tree: its output size, a plain digest function, a (possibly
// specialised) concatenated-digest function, and a seed-expansion
// function used to derive a node's two children from its seed.
type Algorithm interface {
	// OutputSize returns the digest size in bytes.
	OutputSize() int

	// Hash returns the digest of msg.
	Hash(msg []byte) []byte

	// HashConcat returns the digest of a||b. The default
	// implementation is Hash(append(a, b...)); algorithms may
	// override this with a streaming equivalent.
	HashConcat(a, b []byte) []byte

	// ExpandSeed splits seed into a pair of child seeds:
	// Hash(0x01||seed), Hash(0x02||seed).
	ExpandSeed(seed []byte) (left, right []byte)
}

const (
	expandSeedLeftPrefix  = 0x01
	expandSeedRightPrefix = 0x02
)

type blake2bAlgorithm struct {
	size int
	hash func([]byte) []byte
}

// Blake2b256Algorithm is the KES hash algorithm backed by 32-byte Blake2b
// digests, matching the Sum/CompactSum instantiations used by the
// Cardano Praos/Genesis KES trees.
var Blake2b256Algorithm Algorithm = blake2bAlgorithm{size: 32, hash: Blake2b256}

// Blake2b512Algorithm is the KES hash algorithm backed by 64-byte
// Blake2b digests.
var Blake2b512Algorithm Algorithm = blake2bAlgorithm{size: 64, hash: Blake2b512}

func (a blake2bAlgorithm) OutputSize() int { return a.size }

func (a blake2bAlgorithm) Hash(msg []byte) []byte {
	return a.hash(msg)
}

func (a blake2bAlgorithm) HashConcat(x, y []byte) []byte {
	buf := make([]byte, 0, len(x)+len(y))
	buf = append(buf, x...)
	buf = append(buf, y...)
	return a.hash(buf)
}

func (a blake2bAlgorithm) ExpandSeed(seed []byte) ([]byte, []byte) {
	left := make([]byte, 0, len(seed)+1)
	left = append(left, expandSeedLeftPrefix)
	left = append(left, seed...)

	right := make([]byte, 0, len(seed)+1)
	right = append(right, expandSeedRightPrefix)
	right = append(right, seed...)

	return a.hash(left), a.hash(right)
}
