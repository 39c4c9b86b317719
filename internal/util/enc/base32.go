package enc

import (
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters (RFC 4648, padded).
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) []byte {
	dst := make([]byte, base32.StdEncoding.EncodedLen(len(data)))
	base32.StdEncoding.Encode(dst, data)
	return dst
}

func (b *Base32Encoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, base32.StdEncoding.DecodedLen(len(data)))
	n, err := base32.StdEncoding.Decode(dst, data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:n], nil
}

func (b *Base32Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(cb32 + "===="),
	}
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
