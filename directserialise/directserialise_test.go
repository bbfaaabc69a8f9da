package directserialise

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func unsafeBytes(ptr *byte, n int) []byte {
	return unsafe.Slice(ptr, n)
}

func copyInto(ptr *byte, src []byte) {
	copy(unsafe.Slice(ptr, len(src)), src)
}

type fixedBytes struct {
	data [8]byte
}

func (f *fixedBytes) DirectSerialise(push Pusher) error {
	return push(&f.data[0], len(f.data))
}

func (f *fixedBytes) DirectDeserialise(pull Puller) error {
	return pull(&f.data[0], len(f.data))
}

func (f *fixedBytes) SerialisedSize() int { return len(f.data) }

func TestSerialiseSizedRoundTrip(t *testing.T) {
	src := &fixedBytes{data: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	var collected []byte

	err := SerialiseSized[*fixedBytes](src, func(ptr *byte, n int) error {
		collected = append(collected, unsafeBytes(ptr, n)...)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, src.data[:], collected)

	dst := &fixedBytes{}
	i := 0
	err = DeserialiseSized[*fixedBytes](dst, func(outPtr *byte, n int) error {
		copyInto(outPtr, collected[i:i+n])
		i += n
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, src.data, dst.data)
}

func TestSerialiseSizedDetectsMismatch(t *testing.T) {
	bad := &lyingSize{fixedBytes: fixedBytes{data: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}}

	err := SerialiseSized[*lyingSize](bad, func(ptr *byte, n int) error {
		return nil
	})
	var sizeErr *SizeCheck
	require.ErrorAs(t, err, &sizeErr)
}

type lyingSize struct {
	fixedBytes
}

func (l *lyingSize) SerialisedSize() int { return len(l.data) + 1 }
