package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
	"sync"
)

const (

	/*
	 * Seven bit values are mapped to letters, digits and the printable part of
	 * ISO-8859-1, which keeps the control characters and the XML markup
	 * characters out of the output.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert [256]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		for i, v := range []byte(cb128) {
			cb128Invert[v] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

// Encode packs the input into 7-bit values, most significant bit first, and maps
// every value through the alphabet.
func (b *Base128Encoder) Encode(src []byte) []byte {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		dst = append(dst, bufByte|(val>>whichByte))

		// Keep the remaining low bits, aligned to the top of the next 7-bit value
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return escape128(dst)
}

func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v&0x7F]
	}
	return res
}

func unescape128(src []byte) []byte {
	setupCb128Invert()
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128Invert[v]
	}
	return res
}

func (b *Base128Encoder) Decode(data []byte) ([]byte, error) {
	src := unescape128(data)
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}

func (b *Base128Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("aA-Aaahhh-Drink-mal-ein-J\344germeister-"),
		[]byte("aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te"),
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ"),
		[]byte("aA0123456789\274\275\276\277\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317"),
	}
}
