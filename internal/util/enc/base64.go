package enc

import (
	"encoding/base64"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters (RFC 4648, padded). This is what XML
// schemas use for `xs:base64Binary`.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) []byte {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(dst, data)
	return dst
}

func (b *Base64Encoder) Decode(data []byte) ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(dst, data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:n], nil
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(cb64),
	}
}
