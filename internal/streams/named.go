package streams

import (
	"fmt"
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream (a file name, "stdin" or a request id) which will be returned when outputting the
// stream with `%v`. Closing it is safe to repeat.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

func (nr *NamedReader) WriteTo(w io.Writer) (int64, error) {
	if o, ok := nr.ReadCloserClosed.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, nr.ReadCloserClosed, make([]byte, BufferSize))
}

// String returns the name of this reader, followed by the name of the first named stream it wraps
func (nr *NamedReader) String() string {
	var s io.ReadCloser = nr.ReadCloserClosed
	for {
		t, ok := s.(UnwrappedReadCloser)
		if !ok {
			return nr.name
		}
		s = t.Unwrap()
		if v, ok := s.(fmt.Stringer); ok {
			return nr.name + "->" + v.String()
		}
	}
}

func (nr *NamedReader) Unwrap() io.ReadCloser {
	return nr.ReadCloserClosed
}

// NamedWriter is the io.WriteCloser counterpart of NamedReader.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (nw *NamedWriter) ReadFrom(r io.Reader) (int64, error) {
	if o, ok := nw.WriteCloserClosed.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(nw.WriteCloserClosed, r, make([]byte, BufferSize))
}

func (nw *NamedWriter) String() string {
	var s io.WriteCloser = nw.WriteCloserClosed
	for {
		t, ok := s.(UnwrappedWriteCloser)
		if !ok {
			return nw.name
		}
		s = t.Unwrap()
		if v, ok := s.(fmt.Stringer); ok {
			return nw.name + "->" + v.String()
		}
	}
}

func (nw *NamedWriter) Unwrap() io.WriteCloser {
	return nw.WriteCloserClosed
}
