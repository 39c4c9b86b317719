package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters, using the btoa / PostScript alphabet.
// The alphabet contains '&', '<' and '>', so the output is not safe in XML.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) []byte {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return dst[:n]
}

func (b *Base85Encoder) Decode(data []byte) ([]byte, error) {
	// 'z' expands four zero bytes into five characters
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	str := make([]byte, 85)
	// 33 (!) through 117 (u)
	for k := range str {
		str[k] = byte(k + 33)
	}

	return [][]byte{
		str,
	}
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}
