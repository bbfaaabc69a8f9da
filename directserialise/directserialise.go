// Package directserialise defines the pointer-callback protocol used
// to move locked secret material between buffers without ever copying
// it through an intermediate, unlocked Go slice.
package directserialise

import (
	"errors"
	"fmt"
)

// SizeCheck reports that a direct-serialise transfer moved a different
// number of bytes than the caller expected.
type SizeCheck struct {
	Expected int
	Actual   int
}

func (e *SizeCheck) Error() string {
	return fmt.Sprintf("directserialise: expected %d bytes, moved %d", e.Expected, e.Actual)
}

// ErrPushFailed is wrapped around any error returned by a push
// callback, to distinguish transport failures from protocol ones.
var ErrPushFailed = errors.New("directserialise: push callback failed")

// Pusher is the callback an implementation of DirectSerialise invokes
// with a pointer to (part of) its internal storage and a byte count.
// It must not retain ptr past the call.
type Pusher func(ptr *byte, n int) error

// Puller is the callback an implementation of DirectDeserialise
// invokes to fill a pointer to (part of) its internal storage. It must
// not retain outPtr past the call.
type Puller func(outPtr *byte, n int) error

// DirectSerialise is implemented by types that can write their bytes
// through a pushing callback without constructing an intermediate
// owned buffer. Locked secrets implement this to avoid ever holding
// their plaintext in regular, unlocked memory.
type DirectSerialise interface {
	DirectSerialise(push Pusher) error
}

// DirectDeserialise is implemented by types that can fill their
// internal storage directly from a pulling callback.
type DirectDeserialise interface {
	DirectDeserialise(pull Puller) error
}

// SizeOf is implemented by DirectSerialise/DirectDeserialise types
// that know their own serialised size, enabling the *Sized helpers'
// bounds check.
type SizeOf interface {
	SerialisedSize() int
}

// SerialiseSized calls v.DirectSerialise, then fails with *SizeCheck
// if the number of bytes the callback observed differs from
// v.SerialisedSize().
func SerialiseSized[T interface {
	DirectSerialise
	SizeOf
}](v T, push Pusher) error {
	expected := v.SerialisedSize()
	moved := 0

	err := v.DirectSerialise(func(ptr *byte, n int) error {
		moved += n
		return push(ptr, n)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPushFailed, err)
	}
	if moved != expected {
		return &SizeCheck{Expected: expected, Actual: moved}
	}
	return nil
}

// DeserialiseSized calls v.DirectDeserialise, then fails with
// *SizeCheck if the number of bytes the callback observed differs
// from v.SerialisedSize().
func DeserialiseSized[T interface {
	DirectDeserialise
	SizeOf
}](v T, pull Puller) error {
	expected := v.SerialisedSize()
	moved := 0

	err := v.DirectDeserialise(func(outPtr *byte, n int) error {
		moved += n
		return pull(outPtr, n)
	})
	if err != nil {
		return err
	}
	if moved != expected {
		return &SizeCheck{Expected: expected, Actual: moved}
	}
	return nil
}
