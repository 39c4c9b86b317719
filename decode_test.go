package basexml

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_Vectors(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.encoded)
			require.NoError(t, err)
			require.Equal(t, string(tt.decoded), string(got))

			if tt.compact != nil {
				got, err = Decode(tt.compact)
				require.NoError(t, err)
				require.Equal(t, string(tt.decoded), string(got))
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	compact := StdEncoding.WithCompactTermination()
	for size := 0; size < 300; size++ {
		data := make([]byte, size)
		_, _ = rand.Read(data)

		got, err := Decode(Encode(data))
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, data, append([]byte{}, got...), "size=%d", size)

		got, err = compact.DecodeString(compact.EncodeToString(data))
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, data, append([]byte{}, got...), "size=%d", size)
	}
}

func TestDecode_Errors(t *testing.T) {
	unit := []byte{0x50, 0x28, 0x24, 0x45, 0xC6, 0x94} // "ABCDE"
	join := func(parts ...[]byte) []byte {
		var out []byte
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		name    string
		encoded []byte
		want    error
		decoded string
	}{
		{"zero length nibble", join(unit, []byte{0x3F, 0x30, 0x3F}), ErrIllegalTermination, ""},
		{"length nibble too large", join(unit, []byte{0x3F, 0x35, 0x3F}), ErrIllegalTermination, ""},
		{"marker first", []byte{0x3F, 0x31, 0x3F}, ErrIllegalTermination, ""},
		{"compact marker with long tail", join(unit, unit[:3], []byte{0x3F, 0x33, 0x3F}), ErrIllegalTermination, "ABCDE"},
		{"partial group", join(unit, []byte{0x50}), ErrUnexpectedEnd, ""},
		{"partial unit", join(unit, unit[:3]), ErrUnexpectedEnd, "ABCDE"},
		{"half chunk only", unit[:3], ErrUnexpectedEnd, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.encoded)
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, tt.decoded, string(got))
		})
	}
}

func TestDecode_ErrorOffset(t *testing.T) {
	_, err := DecodeString("\x50\x28\x24\x45\xC6\x94\x3F\x39\x3F")
	require.ErrorIs(t, err, ErrIllegalTermination)
	require.Contains(t, err.Error(), "at offset 6")
}

func TestDecode_StopsAtMarker(t *testing.T) {
	encoded := append(Encode([]byte("abc")), "garbage<&>"...)
	got, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestDecode_LengthNibbleIgnoresHighBits(t *testing.T) {
	encoded := Encode([]byte("abc"))
	encoded[len(encoded)-2] = 0x43 // 'C', low nibble 3
	got, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestDecode_Permissive(t *testing.T) {
	malformed := []byte{0xFF, 0xFF, 0xFF, 0x20, 0x20, 0x40}

	got, err := Decode(malformed)
	require.NoError(t, err)
	require.Equal(t, make([]byte, BlockSize), got)

	_, err = StdEncoding.Strict().Decode(make([]byte, BlockSize), malformed)
	require.ErrorIs(t, err, ErrMalformedGroup)
	require.Contains(t, err.Error(), "FFFFFF")
	require.Contains(t, err.Error(), "at offset 0")
}

func TestDecode_StrictAcceptsValidData(t *testing.T) {
	strict := StdEncoding.Strict()
	for _, tt := range vectors {
		got, err := strict.AppendDecode(nil, tt.encoded)
		require.NoError(t, err, tt.name)
		require.Equal(t, string(tt.decoded), string(got), tt.name)
	}
}

func TestDecode_AcceptsTab(t *testing.T) {
	// TAB stands for '&' inside a group.
	got, err := Decode([]byte{0x20, 0x09, 0x40, 0x20, 0x20, 0x40})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x18, 0x00, 0x00, 0x00}, got)
}

func TestDecodeBlock(t *testing.T) {
	dst := make([]byte, BlockSize)
	DecodeBlock(dst, []byte{0x50, 0x28, 0x24, 0x45, 0xC6, 0x94})
	require.Equal(t, "ABCDE", string(dst))

	err := StdEncoding.Strict().DecodeBlock(dst, []byte{0x50, 0x28, 0x24, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, ErrMalformedGroup)
}

func TestMaxDecodedLen(t *testing.T) {
	for n := 0; n < 100; n++ {
		data := make([]byte, n)
		for _, enc := range []*Encoding{StdEncoding, StdEncoding.WithCompactTermination()} {
			require.GreaterOrEqual(t, enc.MaxDecodedLen(enc.EncodedLen(n)), n)
		}
		got, err := Decode(Encode(data))
		require.NoError(t, err)
		require.Len(t, got, n)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate([]byte("plain text\twith tab")))

	err := Validate([]byte("a<b"))
	require.ErrorIs(t, err, ErrForbiddenByte)
	var fe *ForbiddenByteError
	require.ErrorAs(t, err, &fe)
	require.EqualValues(t, 1, fe.Offset)
	require.Equal(t, byte('<'), fe.Byte)

	for _, c := range []byte{0x00, '\r', '\n', '<', '>', '&'} {
		require.True(t, IsForbidden(c), "0x%02X", c)
	}
	require.False(t, IsForbidden('\t'))
	require.False(t, IsForbidden(0x80))
}
