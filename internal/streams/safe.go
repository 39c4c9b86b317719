package streams

import (
	"io"
)

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if sr, ok := wrapped.(*SafeReader); ok {
		return sr
	}
	return &SafeReader{ReadCloser: wrapped}
}

func (sr *SafeReader) WriteTo(w io.Writer) (int64, error) {
	if o, ok := sr.ReadCloser.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, sr.ReadCloser, make([]byte, BufferSize))
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (sr *SafeReader) Close() error {
	if sr.closed {
		return nil
	}
	sr.closed = true
	return LogClose(sr.ReadCloser)
}

// Closed will return `true` if SafeReader.Close has been called at least once
func (sr *SafeReader) Closed() bool {
	return sr.closed
}

// Unwrap returns the embedded io.ReadCloser
func (sr *SafeReader) Unwrap() io.ReadCloser {
	return sr.ReadCloser
}

// SafeWriter is the io.WriteCloser counterpart of SafeReader. Only the first `Close()` reaches the
// wrapped writer; its error is returned so that a failed flush of an output file is not lost.
type SafeWriter struct {
	io.WriteCloser
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if sw, ok := wrapped.(*SafeWriter); ok {
		return sw
	}
	return &SafeWriter{WriteCloser: wrapped}
}

func (sw *SafeWriter) ReadFrom(r io.Reader) (int64, error) {
	if o, ok := sw.WriteCloser.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(sw.WriteCloser, r, make([]byte, BufferSize))
}

func (sw *SafeWriter) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true
	return LogClose(sw.WriteCloser)
}

func (sw *SafeWriter) Closed() bool {
	return sw.closed
}

func (sw *SafeWriter) Unwrap() io.WriteCloser {
	return sw.WriteCloser
}
