package basexml

import "slices"

const (
	markerByte    = 0x3F // '?'
	markerLenBase = 0x30 // '0'
)

// Encode encodes src into dst, which must hold EncodedLen(len(src)) bytes,
// and returns the number of bytes written.
func (enc *Encoding) Encode(dst, src []byte) int {
	n := 0
	for len(src) >= BlockSize {
		EncodeBlock(dst[n:], src[:BlockSize])
		n += EncodedBlockSize
		src = src[BlockSize:]
	}
	if len(src) > 0 {
		n += enc.encodeTail(dst[n:], src)
	}
	return n
}

// encodeTail writes the last, partial chunk and the termination sequence.
func (enc *Encoding) encodeTail(dst, src []byte) int {
	var unit [EncodedBlockSize]byte
	EncodeBlock(unit[:], src)

	n := EncodedBlockSize
	if enc.compact && len(src) <= 2 {
		n = GroupSize
	}
	copy(dst[:n], unit[:n])
	return n + putMarker(dst[n:], len(src))
}

func putMarker(dst []byte, r int) int {
	_ = dst[MarkerSize-1]
	dst[0] = markerByte
	dst[1] = markerLenBase | byte(r)
	dst[2] = markerByte
	return MarkerSize
}

// isMarker reports whether the group at the start of src has the shape of a
// termination sequence. No packed group has it.
func isMarker(src []byte) bool {
	return src[0] == markerByte && src[2] == markerByte
}

// AppendEncode appends the encoding of src to dst and returns the extended
// buffer.
func (enc *Encoding) AppendEncode(dst, src []byte) []byte {
	n := enc.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	enc.Encode(dst[len(dst):][:n], src)
	return dst[:len(dst)+n]
}

// EncodeToString returns the encoding of src as a string.
func (enc *Encoding) EncodeToString(src []byte) string {
	buf := make([]byte, enc.EncodedLen(len(src)))
	enc.Encode(buf, src)
	return string(buf)
}

// Encode returns the StdEncoding encoding of src.
func Encode(src []byte) []byte {
	return StdEncoding.AppendEncode(nil, src)
}
