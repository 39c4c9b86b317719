package enc

import (
	"fmt"
	"github.com/kriswebdev/basexml"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// BaseXMLEncoder encodes 5 bytes to 6 characters which are all legal in XML 1.0 character data.
type BaseXMLEncoder struct {
	// Encoding selects the variant; nil means basexml.StdEncoding.
	Encoding *basexml.Encoding
}

func (b *BaseXMLEncoder) encoding() *basexml.Encoding {
	if b.Encoding == nil {
		return basexml.StdEncoding
	}
	return b.Encoding
}

func (b *BaseXMLEncoder) Name() string {
	return "BaseXML"
}

func (b *BaseXMLEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *BaseXMLEncoder) Code() byte {
	return 'X'
}

func (b *BaseXMLEncoder) Encode(data []byte) []byte {
	return b.encoding().AppendEncode(nil, data)
}

func (b *BaseXMLEncoder) Decode(data []byte) ([]byte, error) {
	res, err := b.encoding().AppendDecode(nil, data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *BaseXMLEncoder) Ratio() float64 {
	return float64(basexml.EncodedBlockSize) / float64(basexml.BlockSize)
}

func (b *BaseXMLEncoder) TestPatterns() [][]byte {
	// One group per layout, the '&' guard and both tail lengths around a chunk.
	return [][]byte{
		{0x01, 0xE3, 0xC0, 0x1E, 0x00},
		{0x00, 0x03, 0xC1, 0x02, 0x00},
		{0x00, 0x00, 0x01, 0x00, 0x00},
		{0x10, 0x00, 0x01, 0x00, 0x20},
		{0x11, 0x00, 0x00, 0x01, 0x80},
		{0x00, 0x18, 0x00, 0x00, 0x00},
		[]byte("A"),
		[]byte("ABCDEF"),
	}
}
