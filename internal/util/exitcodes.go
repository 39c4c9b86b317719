package util

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jessevdk/go-flags"
	"github.com/kriswebdev/basexml"
)

// Exit codes of the basexml executable.
const (
	ErrSyntax             = 1
	ErrFileOpen           = 2
	ErrFileIO             = 3
	ErrOutputClose        = 4
	ErrIllegalTermination = 5
	ErrTooManyArgs        = 6
	ErrUnexpectedEnd      = 7
	ErrMalformedGroup     = 8
	ErrGeneric            = 99
)

var messages = map[int]string{
	ErrSyntax:             "Syntax Error -- check help (-h) for usage.",
	ErrFileOpen:           "File Error Opening/Creating Files.",
	ErrFileIO:             "File I/O Error -- Note: output file not removed.",
	ErrOutputClose:        "Error on output file close.",
	ErrIllegalTermination: "BaseXML illegal input - Illegal BaseXML termination sequence.",
	ErrTooManyArgs:        "Syntax: Too many arguments.",
	ErrUnexpectedEnd:      "BaseXML illegal input - Unexpected end of decoding stream.",
	ErrMalformedGroup:     "BaseXML illegal input - Group does not match any layout.",
	ErrGeneric:            "Unexpected error.",
}

// Message returns the "basexml:00N:..." text for an exit code.
func Message(code int) string {
	msg, ok := messages[code]
	if !ok {
		return "basexml:000:Invalid Message Code."
	}
	return fmt.Sprintf("basexml:%03d:%s", code, msg)
}

// CodedError attaches an exit code to an error.
type CodedError struct {
	Code int
	Err  error
}

// WithCode wraps err with the given exit code. A nil error stays nil.
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCode classifies err. Help requests map to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coded *CodedError
	var flagsError *flags.Error
	var ioError *basexml.IOError
	var pathError *fs.PathError

	switch {
	case errors.As(err, &coded):
		return coded.Code
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return ErrSyntax
	case errors.Is(err, basexml.ErrIllegalTermination):
		return ErrIllegalTermination
	case errors.Is(err, basexml.ErrUnexpectedEnd):
		return ErrUnexpectedEnd
	case errors.Is(err, basexml.ErrMalformedGroup):
		return ErrMalformedGroup
	case errors.As(err, &ioError), errors.As(err, &pathError):
		return ErrFileIO
	default:
		return ErrGeneric
	}
}
