// Package cborx is a thin canonical-CBOR layer over fxamacker/cbor: a
// single encode mode (definite-length, sorted map keys), a decode mode
// that rejects any trailing bytes instead of silently ignoring them,
// and semantic-tag-24 nesting helpers for "CBOR inside CBOR" fields.
package cborx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// nestedCBORTag is the semantic tag (RFC 8949 §3.4.5.1) marking a
// byte-string payload as itself being CBOR.
const nestedCBORTag = 24

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cborx: building canonical encode mode: %v", err))
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("cborx: building decode mode: %v", err))
	}
}

// Leftover reports that decode_full consumed one well-formed item but
// bytes remained after it.
type Leftover struct {
	Label       string
	LeftoverLen int
}

func (e *Leftover) Error() string {
	return fmt.Sprintf("cborx: %d leftover byte(s) after decoding %q", e.LeftoverLen, e.Label)
}

// NestedTag reports that a nested-CBOR payload did not carry the
// expected semantic tag.
type NestedTag struct {
	Expected uint64
	Found    uint64
}

func (e *NestedTag) Error() string {
	return fmt.Sprintf("cborx: expected tag %d, found %d", e.Expected, e.Found)
}

// ErrNestedPayload is returned when a tag-24 value's content is not a
// byte string.
var ErrNestedPayload = errors.New("cborx: nested CBOR payload is not a byte string")

// Serialize encodes v as canonical CBOR: definite-length items, and
// sorted keys when v (or a nested value) is a map.
func Serialize(v any) ([]byte, error) {
	out, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cborx: encode: %w", err)
	}
	return out, nil
}

// DecodeFull decodes data into a value of type T, failing with
// *Leftover if any byte of data remains unconsumed.
func DecodeFull[T any](label string, data []byte) (T, error) {
	var v T
	_, err := DecodeFullDecoder(label, data, &v)
	return v, err
}

// DecodeFullDecoder decodes data into out, failing with *Leftover if
// any byte of data remains unconsumed after the single well-formed
// item data is expected to hold. It returns the number of bytes that
// item occupied.
//
// A cbor.Decoder is used rather than decMode.Unmarshal because
// Unmarshal's contract requires data to hold exactly one item;
// Decoder is the mode built for reading one item at a time off a
// stream, which is what detecting trailing bytes needs. The Decoder
// reads ahead from its reader, so the item's length is taken from
// NumBytesRead rather than from what is left in the reader.
func DecodeFullDecoder(label string, data []byte, out any) (int, error) {
	dec := decMode.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(out); err != nil {
		return 0, fmt.Errorf("cborx: decode %q: %w", label, err)
	}

	consumed := dec.NumBytesRead()
	if consumed < len(data) {
		return consumed, &Leftover{Label: label, LeftoverLen: len(data) - consumed}
	}
	return consumed, nil
}

// EncodeNestedCBOR encodes v, then wraps the result in semantic tag 24
// as a byte-string payload, so it can be embedded as an opaque field
// inside another CBOR structure.
func EncodeNestedCBOR(v any) ([]byte, error) {
	inner, err := Serialize(v)
	if err != nil {
		return nil, err
	}
	return Serialize(cbor.Tag{Number: nestedCBORTag, Content: inner})
}

// DecodeNestedCBORBytes unwraps a tag-24 byte string and returns its
// raw (still-encoded) payload, without decoding it further.
func DecodeNestedCBORBytes(data []byte) ([]byte, error) {
	var tag cbor.Tag
	if err := decMode.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("cborx: decode nested wrapper: %w", err)
	}
	if tag.Number != nestedCBORTag {
		return nil, &NestedTag{Expected: nestedCBORTag, Found: tag.Number}
	}
	payload, ok := tag.Content.([]byte)
	if !ok {
		return nil, ErrNestedPayload
	}
	return payload, nil
}

// DecodeNestedCBOR unwraps a tag-24 byte string and decodes its
// payload as a value of type T.
func DecodeNestedCBOR[T any](data []byte) (T, error) {
	var zero T
	payload, err := DecodeNestedCBORBytes(data)
	if err != nil {
		return zero, err
	}
	return DecodeFull[T]("nested", payload)
}
