package cborx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeUint64(t *testing.T) {
	out, err := Serialize(uint64(42))
	require.NoError(t, err)
	require.Equal(t, []byte{0x18, 0x2a}, out)

	got, err := DecodeFull[uint64]("u64", out)
	require.NoError(t, err)
	require.Equal(t, uint64(42), got)
}

func TestSerializeEmptyArray(t *testing.T) {
	out, err := Serialize([]uint32{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, out)

	got, err := DecodeFull[[]uint32]("empty", out)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeFullRejectsTrailingBytes(t *testing.T) {
	out, err := Serialize(uint64(42))
	require.NoError(t, err)
	out = append(out, 0xff)

	_, err = DecodeFull[uint64]("u64", out)
	var leftover *Leftover
	require.ErrorAs(t, err, &leftover)
	require.Equal(t, 1, leftover.LeftoverLen)
}

type point struct {
	X int64 `cbor:"x"`
	Y int64 `cbor:"y"`
}

func TestRoundTripStruct(t *testing.T) {
	p := point{X: -7, Y: 100}
	out, err := Serialize(p)
	require.NoError(t, err)

	got, err := DecodeFull[point]("point", out)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestNestedCBORRoundTrip(t *testing.T) {
	p := point{X: 1, Y: 2}
	wrapped, err := EncodeNestedCBOR(p)
	require.NoError(t, err)

	got, err := DecodeNestedCBOR[point](wrapped)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestNestedCBORRejectsWrongTag(t *testing.T) {
	plain, err := Serialize(uint64(5))
	require.NoError(t, err)

	_, err = DecodeNestedCBORBytes(plain)
	require.Error(t, err)
}
