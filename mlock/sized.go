package mlock

import "unsafe"

// FixedSize is satisfied by the fixed-length byte array types used to
// parameterise SizedBytes: every type this package instantiates
// SizedBytes with is itself just "N bytes", so its size can be read
// off the zero value through unsafe.Sizeof rather than threading N
// through as a second, non-type parameter.
type FixedSize interface {
	~[16]byte | ~[32]byte | ~[64]byte | ~[128]byte
}

// SizedBytes is a page-locked buffer whose length is fixed by the type
// parameter A, e.g. SizedBytes[[32]byte] for a 32-byte seed. It wraps
// Bytes to give call sites a statically-sized, array-shaped view
// without reintroducing a separately-tracked length field.
type SizedBytes[A FixedSize] struct {
	inner *Bytes
}

// NewSized allocates a new zeroed, page-locked SizedBytes[A].
func NewSized[A FixedSize]() (*SizedBytes[A], error) {
	var zero A
	inner, err := New(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return &SizedBytes[A]{inner: inner}, nil
}

// NewSizedRandom allocates a new page-locked SizedBytes[A] filled with
// random bytes.
func NewSizedRandom[A FixedSize]() (*SizedBytes[A], error) {
	sb, err := NewSized[A]()
	if err != nil {
		return nil, err
	}
	if err := sb.inner.FillRandom(); err != nil {
		sb.Destroy()
		return nil, err
	}
	return sb, nil
}

// Array returns a pointer to sb's contents, typed as *A. The pointer
// aliases sb's storage and must not outlive sb.
func (sb *SizedBytes[A]) Array() *A {
	return (*A)(unsafe.Pointer(&sb.inner.Bytes()[0]))
}

// Bytes returns sb's contents as a byte slice aliasing its storage.
func (sb *SizedBytes[A]) Bytes() []byte {
	return sb.inner.Bytes()
}

// Clone returns a copy of sb backed by a fresh locked allocation.
func (sb *SizedBytes[A]) Clone() (*SizedBytes[A], error) {
	clonedInner, err := sb.inner.Clone()
	if err != nil {
		return nil, err
	}
	return &SizedBytes[A]{inner: clonedInner}, nil
}

// WithPointer invokes f with a pointer to sb's first byte and its
// length.
func (sb *SizedBytes[A]) WithPointer(f func(ptr *byte, n int)) {
	sb.inner.WithPointer(f)
}

// Destroy overwrites sb's contents with zeroes and unlocks its pages.
func (sb *SizedBytes[A]) Destroy() {
	sb.inner.Destroy()
}
