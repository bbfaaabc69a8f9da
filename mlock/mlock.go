// Package mlock provides page-locked ("mlocked") memory for secret
// key material: allocations that the OS is asked not to swap to disk,
// and that are overwritten with zeroes before being released.
//
// Locking happens over a regular Go-heap allocation rather than a
// dedicated mmap region. That is weaker than a true guard-paged
// allocator (no over/underflow guard pages, no separate protected
// mapping), but it composes with Go's garbage collector, which never
// relocates a heap object once it has escaped to the heap — the one
// property this package actually depends on.
package mlock

import (
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"gitlab.com/cardano-base/cardano-crypto-go/internal/disalloweq"
)

// Sentinel errors identifying the three ways an mlocked allocation can
// fail, matching spec component A's declared failure kinds.
var (
	ErrAllocationFailed = errors.New("mlock: allocation failed")
	ErrLockFailed       = errors.New("mlock: mlock(2) failed")
	ErrRandomFailed     = errors.New("mlock: random fill failed")
)

// Bytes is a variable-length, page-locked byte buffer.
type Bytes struct {
	_ disalloweq.DisallowEqual

	buf       []byte
	destroyed bool
}

// New allocates a new zeroed, page-locked buffer of n bytes.
func New(n int) (*Bytes, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size", ErrAllocationFailed)
	}
	buf := make([]byte, n)
	if n > 0 {
		if err := unix.Mlock(buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLockFailed, err)
		}
	}
	return &Bytes{buf: buf}, nil
}

// NewRandom allocates a new page-locked buffer of n bytes filled with
// cryptographically secure random bytes.
func NewRandom(n int) (*Bytes, error) {
	lb, err := New(n)
	if err != nil {
		return nil, err
	}
	if err := lb.FillRandom(); err != nil {
		lb.Destroy()
		return nil, err
	}
	return lb, nil
}

// FillRandom overwrites lb's contents with fresh random bytes.
func (lb *Bytes) FillRandom() error {
	if _, err := rand.Read(lb.buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomFailed, err)
	}
	return nil
}

// Len returns the size of lb in bytes.
func (lb *Bytes) Len() int { return len(lb.buf) }

// Bytes returns the underlying buffer. The returned slice aliases lb's
// storage and must not outlive lb.
func (lb *Bytes) Bytes() []byte { return lb.buf }

// Clone returns a copy of lb backed by a fresh locked allocation: the
// clone never shares storage with lb.
func (lb *Bytes) Clone() (*Bytes, error) {
	clone, err := New(len(lb.buf))
	if err != nil {
		return nil, err
	}
	copy(clone.buf, lb.buf)
	return clone, nil
}

// WithPointer invokes f with a pointer to lb's first byte and its
// length, for interop with direct-serialise-style APIs. f must not
// retain the pointer past the call.
func (lb *Bytes) WithPointer(f func(ptr *byte, n int)) {
	var ptr *byte
	if len(lb.buf) > 0 {
		ptr = &lb.buf[0]
	}
	f(ptr, len(lb.buf))
	runtime.KeepAlive(lb.buf)
}

// Destroy overwrites lb's contents with zeroes, unlocks the
// underlying pages, and marks lb as unusable. Destroy is idempotent
// and safe to call multiple times.
func (lb *Bytes) Destroy() {
	if lb.destroyed {
		return
	}
	for i := range lb.buf {
		lb.buf[i] = 0
	}
	runtime.KeepAlive(lb.buf)
	if len(lb.buf) > 0 {
		_ = unix.Munlock(lb.buf)
	}
	lb.destroyed = true
	lb.buf = nil
}
