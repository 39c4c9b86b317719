package streams

import (
	"io"
)

// BufferSize is the size of the buffers used when copying between an input and an output. It is a
// multiple of both the BaseXML block (5 bytes) and the encoded block (6 bytes).
const BufferSize = 30 * 1024

// Closed is an interface which defines if a method to check if a stream is closed or not
type Closed interface {
	Closed() bool
}

type ReadCloserClosed interface {
	io.ReadCloser
	Closed
}

type WriteCloserClosed interface {
	io.WriteCloser
	Closed
}

type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}
