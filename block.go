package basexml

import "fmt"

const (
	// BlockSize is the number of source bytes in one chunk.
	BlockSize = 5
	// EncodedBlockSize is the number of encoded bytes for one chunk.
	EncodedBlockSize = 6
	// GroupSize is the number of encoded bytes for one 20-bit group.
	GroupSize = 3
	// MarkerSize is the length of the termination sequence.
	MarkerSize = 3
)

// splitChunk cuts a chunk into its two 20-bit groups.
func splitChunk(c *[BlockSize]byte) (g1, g2 uint32) {
	g1 = uint32(c[0])<<12 | uint32(c[1])<<4 | uint32(c[2])>>4
	g2 = uint32(c[2]&0x0F)<<16 | uint32(c[3])<<8 | uint32(c[4])
	return g1, g2
}

// putHalf stores group g as the first (half 0) or second (half 1) part of c.
// Half 0 clears the low nibble of c[2] which half 1 fills in.
func putHalf(c *[BlockSize]byte, half int, g uint32) {
	if half == 0 {
		c[0] = byte(g >> 12)
		c[1] = byte(g >> 4)
		c[2] = byte(g<<4) & 0xF0
		return
	}
	c[2] |= byte(g>>16) & 0x0F
	c[3] = byte(g >> 8)
	c[4] = byte(g)
}

// EncodeBlock encodes src, holding 1 to BlockSize bytes, into the first
// EncodedBlockSize bytes of dst. A short src is padded with zero bytes.
func EncodeBlock(dst, src []byte) {
	var c [BlockSize]byte
	copy(c[:], src)
	_ = dst[EncodedBlockSize-1]

	g1, g2 := splitChunk(&c)
	v1, _ := packGroup(g1)
	v2, _ := packGroup(g2)
	putGroup(dst[0:GroupSize], v1)
	putGroup(dst[GroupSize:EncodedBlockSize], v2)
}

// DecodeBlock decodes one EncodedBlockSize unit of src into the first
// BlockSize bytes of dst.
func DecodeBlock(dst, src []byte) {
	_ = StdEncoding.DecodeBlock(dst, src)
}

// DecodeBlock decodes one EncodedBlockSize unit of src into the first
// BlockSize bytes of dst. It fails only for a strict encoding, when a group
// matches no layout.
func (enc *Encoding) DecodeBlock(dst, src []byte) error {
	var c [BlockSize]byte
	_ = src[EncodedBlockSize-1]
	for half := 0; half < 2; half++ {
		if err := enc.decodeGroup(&c, half, src[half*GroupSize:]); err != nil {
			return err
		}
	}
	copy(dst[:BlockSize], c[:])
	return nil
}

// decodeGroup unpacks the Group24 at the start of src into half of c.
func (enc *Encoding) decodeGroup(c *[BlockSize]byte, half int, src []byte) error {
	v := readGroup(src)
	g, l := unpackGroup(v)
	if l == LayoutNone && enc.strict {
		return fmt.Errorf("%w: %06X", ErrMalformedGroup, v)
	}
	putHalf(c, half, g)
	return nil
}
