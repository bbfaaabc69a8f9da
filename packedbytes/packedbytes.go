// Package packedbytes provides a fixed-size byte container genericised
// over its length (Go's generics standing in for Rust's const
// generics), plus the small SignableRepresentation adapter that lets
// arbitrary message types be handed to KES/DSIGN sign and verify
// without every call site re-deriving "what bytes does this message
// signs as".
package packedbytes

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unsafe"
)

// Size is satisfied by the fixed-length array types PackedBytes is
// instantiated over.
type Size interface {
	~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte | ~[8]byte |
		~[16]byte | ~[32]byte | ~[64]byte | ~[80]byte | ~[128]byte
}

// PackedBytes is a fixed-size byte array of length N, with ordering
// and XOR defined element-wise.
//
// N's array types differ in length, so they share no core type the
// compiler will let a generic function index or range over directly
// (the same obstacle mlock.SizedBytes works around); data is therefore
// kept as a plain []byte sized from N's zero value via
// unsafe.Sizeof, the same trick.
type PackedBytes[N Size] struct {
	data []byte
}

// New wraps data as a PackedBytes.
func New[N Size](data N) PackedBytes[N] {
	var pb PackedBytes[N]
	pb.data = make([]byte, int(unsafe.Sizeof(data)))
	copy(pb.data, (*[1 << 30]byte)(unsafe.Pointer(&data))[:len(pb.data):len(pb.data)])
	return pb
}

// Pack copies len(N) bytes starting at offset out of b into a new
// PackedBytes, failing if b is too short.
func Pack[N Size](b []byte, offset int) (PackedBytes[N], error) {
	var zero N
	n := int(unsafe.Sizeof(zero))
	if offset < 0 || offset+n > len(b) {
		return PackedBytes[N]{}, fmt.Errorf("packedbytes: slice too short: need %d bytes at offset %d, have %d", n, offset, len(b))
	}
	pb := PackedBytes[N]{data: make([]byte, n)}
	copy(pb.data, b[offset:offset+n])
	return pb, nil
}

// PackExact is Pack restricted to b having exactly len(N) bytes.
func PackExact[N Size](b []byte) (PackedBytes[N], error) {
	var zero N
	n := int(unsafe.Sizeof(zero))
	if len(b) != n {
		return PackedBytes[N]{}, fmt.Errorf("packedbytes: length mismatch: expected %d, got %d", n, len(b))
	}
	pb := PackedBytes[N]{data: make([]byte, n)}
	copy(pb.data, b)
	return pb, nil
}

// Len returns N, the packed length in bytes.
func (p *PackedBytes[N]) Len() int {
	return len(p.data)
}

// AsSlice returns a mutable view of p's bytes, aliasing its storage.
func (p *PackedBytes[N]) AsSlice() []byte {
	return p.data
}

// Array returns a copy of p's underlying array.
func (p PackedBytes[N]) Array() N {
	var out N
	copy((*[1 << 30]byte)(unsafe.Pointer(&out))[:len(p.data):len(p.data)], p.data)
	return out
}

// Equal reports whether p and q hold the same bytes.
func (p PackedBytes[N]) Equal(q PackedBytes[N]) bool {
	return bytes.Equal(p.data, q.data)
}

// Compare returns -1, 0, or 1 per bytes.Compare, giving PackedBytes a
// lexicographic total order.
func (p PackedBytes[N]) Compare(q PackedBytes[N]) int {
	return bytes.Compare(p.data, q.data)
}

// Hex returns p's lowercase hex encoding.
func (p PackedBytes[N]) Hex() string {
	return hex.EncodeToString(p.data)
}

// String implements fmt.Stringer.
func (p PackedBytes[N]) String() string {
	return fmt.Sprintf("PackedBytes(%d, 0x%s)", len(p.data), p.Hex())
}

// XOR returns the element-wise XOR of p and q. Both must have the same
// length (guaranteed when both instantiate the same N).
func XOR[N Size](p, q PackedBytes[N]) PackedBytes[N] {
	out := PackedBytes[N]{data: make([]byte, len(p.data))}
	for i := range out.data {
		out.data[i] = p.data[i] ^ q.data[i]
	}
	return out
}
