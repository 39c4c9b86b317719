package basexml

import (
	"fmt"
	"slices"
)

// framer runs the decode state machine one Group24 at a time.
//
// A complete chunk is withheld until the next group shows whether it is the
// last one, in which case the termination sequence tells how many of its
// bytes are real.
type framer struct {
	enc    *Encoding
	offset int64 // of the next group in the encoded stream

	half int // 1 while the second group of a chunk is expected
	cur  [BlockSize]byte

	held    [BlockSize]byte
	hasHeld bool

	done bool
}

func newFramer(enc *Encoding, offset int64) *framer {
	return &framer{enc: enc, offset: offset}
}

// next consumes the Group24 at the start of src and returns the decoded bytes
// it releases. The returned slice is valid until the next call.
func (f *framer) next(src []byte) ([]byte, error) {
	if isMarker(src) {
		return f.terminate(src[1])
	}

	var out []byte
	if f.half == 0 && f.hasHeld {
		out = f.held[:]
		f.hasHeld = false
	}
	if err := f.enc.decodeGroup(&f.cur, f.half, src); err != nil {
		return out, f.errorf(err)
	}
	f.offset += GroupSize

	if f.half == 0 {
		f.half = 1
		return out, nil
	}
	f.half = 0
	f.held = f.cur
	f.hasHeld = true
	return out, nil
}

func (f *framer) terminate(lenByte byte) ([]byte, error) {
	r := int(lenByte & 0x0F)
	var out []byte
	switch {
	case r < 1 || r > 4:
		return nil, f.errorf(fmt.Errorf("%w: length %d", ErrIllegalTermination, r))
	case f.half == 1 && r <= 2:
		// Compact form: only the first group of the last chunk was written.
		out = f.cur[:r]
	case f.half == 0 && f.hasHeld:
		out = f.held[:r]
		f.hasHeld = false
	default:
		return nil, f.errorf(fmt.Errorf("%w: nothing to terminate", ErrIllegalTermination))
	}
	f.offset += MarkerSize
	f.done = true
	return out, nil
}

// finish handles the end of the encoded stream. partial is the number of
// bytes left over after the last complete group.
func (f *framer) finish(partial int) ([]byte, error) {
	if f.done {
		return nil, nil
	}
	if partial > 0 || f.half != 0 {
		return nil, f.errorf(ErrUnexpectedEnd)
	}
	f.done = true
	if !f.hasHeld {
		return nil, nil
	}
	f.hasHeld = false
	return f.held[:], nil
}

func (f *framer) errorf(err error) error {
	return fmt.Errorf("%w at offset %d", err, f.offset)
}

// Decode decodes src into dst, which must hold MaxDecodedLen(len(src)) bytes,
// and returns the number of bytes written. Decoding stops after the
// termination sequence; anything following it is ignored. On error n counts
// the bytes decoded before the problem.
func (enc *Encoding) Decode(dst, src []byte) (int, error) {
	return newFramer(enc, 0).decode(dst, src)
}

// decode runs all of src through the state machine, writing to dst.
func (f *framer) decode(dst, src []byte) (n int, err error) {
	for len(src) >= GroupSize && !f.done {
		out, err := f.next(src[:GroupSize])
		n += copy(dst[n:n+len(out)], out)
		if err != nil {
			return n, err
		}
		src = src[GroupSize:]
	}
	if f.done {
		return n, nil
	}
	out, err := f.finish(len(src))
	n += copy(dst[n:n+len(out)], out)
	return n, err
}

// AppendDecode appends the decoding of src to dst and returns the extended
// buffer. On error the bytes decoded so far are kept.
func (enc *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	m := enc.MaxDecodedLen(len(src))
	dst = slices.Grow(dst, m)
	n, err := enc.Decode(dst[len(dst):][:m], src)
	return dst[:len(dst)+n], err
}

// DecodeString returns the bytes represented by s.
func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	return enc.AppendDecode(nil, []byte(s))
}

// DecodeString returns the bytes represented by the StdEncoding encoded s.
func DecodeString(s string) ([]byte, error) {
	return StdEncoding.DecodeString(s)
}

// Decode returns the bytes represented by the StdEncoding encoded src.
func Decode(src []byte) ([]byte, error) {
	return StdEncoding.AppendDecode(nil, src)
}
