package basexml

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func randomBytes(seed byte, n int) []byte {
	rnd := rand.New(rand.NewChaCha8([32]byte{seed}))
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rnd.Uint32())
	}
	return data
}

func TestEncoder_MatchesEncode(t *testing.T) {
	for _, size := range []int{0, 1, 4, 5, 6, 1019, 1020, 1021, 5000, 70001} {
		data := randomBytes(1, size)
		for _, step := range []int{1, 3, 7, 1000, size + 1} {
			var buf bytes.Buffer
			w := NewEncoder(&buf)
			for rest := data; len(rest) > 0; {
				n := min(step, len(rest))
				written, err := w.Write(rest[:n])
				require.NoError(t, err)
				require.Equal(t, n, written)
				rest = rest[n:]
			}
			require.NoError(t, w.Close())
			require.Equal(t, Encode(data), buf.Bytes(), "size=%d step=%d", size, step)
		}
	}
}

func TestEncoder_Compact(t *testing.T) {
	var buf bytes.Buffer
	w := StdEncoding.WithCompactTermination().NewEncoder(&buf)
	_, err := w.Write([]byte("A"))
	require.NoError(t, err)
	require.Zero(t, buf.Len())
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xC8, 0x80, 0x20, 0x3F, 0x31, 0x3F}, buf.Bytes())
}

func TestEncoder_WriteAfterClose(t *testing.T) {
	w := NewEncoder(io.Discard)
	require.NoError(t, w.Close())
	_, err := w.Write([]byte("x"))
	require.Error(t, err)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestEncoder_WriteError(t *testing.T) {
	boom := errors.New("disk full")
	w := NewEncoder(failingWriter{err: boom})

	_, err := w.Write([]byte("ABCDEFGHIJ"))
	require.ErrorIs(t, err, boom)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "write", ioErr.Op)

	// Sticky.
	_, err = w.Write([]byte("K"))
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, w.Close(), boom)
}

func TestDecoder_MatchesDecode(t *testing.T) {
	readers := map[string]func(io.Reader) io.Reader{
		"plain":    func(r io.Reader) io.Reader { return r },
		"one byte": iotest.OneByteReader,
		"half":     iotest.HalfReader,
		"data err": iotest.DataErrReader,
	}
	for _, size := range []int{0, 1, 2, 3, 4, 5, 6, 854, 855, 856, 5000, 70001} {
		data := randomBytes(2, size)
		encoded := Encode(data)
		for name, wrap := range readers {
			got, err := io.ReadAll(wrap(NewDecoder(bytes.NewReader(encoded))))
			require.NoError(t, err, "size=%d reader=%s", size, name)
			require.Equal(t, data, append([]byte{}, got...), "size=%d reader=%s", size, name)

			got, err = io.ReadAll(NewDecoder(wrap(bytes.NewReader(encoded))))
			require.NoError(t, err, "size=%d source=%s", size, name)
			require.Equal(t, data, append([]byte{}, got...), "size=%d source=%s", size, name)
		}
	}
}

func TestDecoder_StopsReadingAfterMarker(t *testing.T) {
	encoded := Encode([]byte("abc"))
	r := io.MultiReader(bytes.NewReader(encoded), iotest.ErrReader(errors.New("read past marker")))
	got, err := io.ReadAll(NewDecoder(iotest.OneByteReader(r)))
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestDecoder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    error
	}{
		{"illegal termination", "\x50\x28\x24\x45\xC6\x94\x3F\x36\x3F", ErrIllegalTermination},
		{"unexpected end", "\x50\x28\x24\x45\xC6", ErrUnexpectedEnd},
		{"marker first", "\x3F\x32\x3F", ErrIllegalTermination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := io.ReadAll(NewDecoder(strings.NewReader(tt.encoded)))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecoder_ReadError(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(bytes.NewReader(Encode([]byte("ABCDEFGHIJ"))), iotest.ErrReader(boom))
	got, err := io.ReadAll(NewDecoder(r))
	require.ErrorIs(t, err, boom)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "read", ioErr.Op)
	// The last chunk stays withheld until the stream ends cleanly.
	require.Equal(t, "ABCDE", string(got))
}

func TestDecoder_Strict(t *testing.T) {
	r := StdEncoding.Strict().NewDecoder(bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0x20, 0x20, 0x40}))
	_, err := io.ReadAll(r)
	require.ErrorIs(t, err, ErrMalformedGroup)
}

func TestStream_Pipe(t *testing.T) {
	data := randomBytes(3, 123457)
	pr, pw := io.Pipe()
	go func() {
		w := NewEncoder(pw)
		_, err := w.Write(data)
		if err == nil {
			err = w.Close()
		}
		_ = pw.CloseWithError(err)
	}()

	got, err := io.ReadAll(NewDecoder(pr))
	require.NoError(t, err)
	require.Equal(t, data, got)
}
