package basexml

import "fmt"

const (
	ampersand = '&'
	tab       = '\t'
)

// forbidden lists the bytes encoded data never contains.
var forbidden = [256]bool{
	0x00:      true,
	'\n':      true,
	'\r':      true,
	'<':       true,
	'>':       true,
	ampersand: true,
}

// guard replaces '&' with TAB. The layouts never produce TAB, so the swap is
// reversible.
func guard(c byte) byte {
	if c == ampersand {
		return tab
	}
	return c
}

func unguard(c byte) byte {
	if c == tab {
		return ampersand
	}
	return c
}

// putGroup writes the 24-bit value v as 3 guarded bytes.
func putGroup(dst []byte, v uint32) {
	_ = dst[2]
	dst[0] = guard(byte(v >> 16))
	dst[1] = guard(byte(v >> 8))
	dst[2] = guard(byte(v))
}

// readGroup reads 3 guarded bytes back into a 24-bit value.
func readGroup(src []byte) uint32 {
	_ = src[2]
	return uint32(unguard(src[0]))<<16 | uint32(unguard(src[1]))<<8 | uint32(unguard(src[2]))
}

// IsForbidden reports whether c may never appear in encoded data.
func IsForbidden(c byte) bool {
	return forbidden[c]
}

// Validate checks that encoded holds none of the bytes XML 1.0 character data
// rejects or interprets. The returned error wraps ErrForbiddenByte.
func Validate(encoded []byte) error {
	for i, c := range encoded {
		if forbidden[c] {
			return &ForbiddenByteError{Offset: int64(i), Byte: c}
		}
	}
	return nil
}

// ForbiddenByteError locates the first forbidden byte found by Validate.
type ForbiddenByteError struct {
	Offset int64
	Byte   byte
}

func (e *ForbiddenByteError) Error() string {
	return fmt.Sprintf("%v: 0x%02X at offset %d", ErrForbiddenByte, e.Byte, e.Offset)
}

func (e *ForbiddenByteError) Unwrap() error {
	return ErrForbiddenByte
}
