package basexml

// Encoding is a BaseXML variant. Values are immutable and safe for concurrent
// use; the option methods return modified copies.
type Encoding struct {
	compact bool
	strict  bool
}

// StdEncoding is the reference encoding: full 9 byte tail and permissive
// decoding.
var StdEncoding = &Encoding{}

// WithCompactTermination returns an encoding that ends a final chunk of one or
// two bytes with a single group before the termination sequence, saving three
// bytes. Decoders accept both forms regardless of this option.
func (enc Encoding) WithCompactTermination() *Encoding {
	enc.compact = true
	return &enc
}

// Strict returns an encoding whose decoder rejects groups matching no layout
// with ErrMalformedGroup.
func (enc Encoding) Strict() *Encoding {
	enc.strict = true
	return &enc
}

// Compact reports whether WithCompactTermination is in effect.
func (enc *Encoding) Compact() bool {
	return enc.compact
}

// IsStrict reports whether Strict is in effect.
func (enc *Encoding) IsStrict() bool {
	return enc.strict
}

// EncodedLen returns the length of the encoding of n source bytes.
func (enc *Encoding) EncodedLen(n int) int {
	full := n / BlockSize * EncodedBlockSize
	switch r := n % BlockSize; {
	case r == 0:
		return full
	case enc.compact && r <= 2:
		return full + GroupSize + MarkerSize
	default:
		return full + EncodedBlockSize + MarkerSize
	}
}

// MaxDecodedLen returns the maximum number of bytes decoded from n encoded
// bytes.
func (enc *Encoding) MaxDecodedLen(n int) int {
	return n / EncodedBlockSize * BlockSize
}

// EncodedLen returns the length of the StdEncoding encoding of n bytes.
func EncodedLen(n int) int {
	return StdEncoding.EncodedLen(n)
}

// MaxDecodedLen returns the maximum number of bytes decoded from n encoded
// bytes.
func MaxDecodedLen(n int) int {
	return StdEncoding.MaxDecodedLen(n)
}
