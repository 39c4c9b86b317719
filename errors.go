package basexml

import "errors"

// Declare the decoding errors. Decoders wrap them with the offset at which the
// problem was found, so compare with errors.Is.
var (
	ErrIllegalTermination = errors.New("basexml: illegal termination sequence")
	ErrUnexpectedEnd      = errors.New("basexml: unexpected end of encoded stream")
	ErrMalformedGroup     = errors.New("basexml: encoded group matches no layout")
	ErrForbiddenByte      = errors.New("basexml: forbidden byte in encoded data")
)

var errEncoderClosed = errors.New("basexml: write to closed encoder")

// IOError reports a failure of the reader or writer wrapped by a streaming
// encoder or decoder.
type IOError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *IOError) Error() string {
	return "basexml: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
