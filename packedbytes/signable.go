package packedbytes

// SignableRepresentation is implemented by message types that know how
// to turn themselves into the exact bytes a DSIGN or KES signature is
// computed over, so sign/verify call sites never need to re-derive
// that encoding themselves.
type SignableRepresentation interface {
	SignableRepresentation() []byte
}

// RawBytes is the trivial SignableRepresentation: a message that is
// already exactly the bytes to sign.
type RawBytes []byte

// SignableRepresentation returns b itself.
func (b RawBytes) SignableRepresentation() []byte { return []byte(b) }

// SignableRepresentation implements SignableRepresentation for
// PackedBytes, returning its packed bytes directly.
func (p PackedBytes[N]) SignableRepresentation() []byte {
	return append([]byte(nil), p.data...)
}
