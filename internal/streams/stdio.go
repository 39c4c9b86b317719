package streams

import (
	"io"
	"os"

	"github.com/kriswebdev/basexml/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StdStream is the name which selects the standard input or output instead of a file.
const StdStream = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// isStd returns true if the name refers to standard input/output
func isStd(name string) bool {
	return name == "" || name == StdStream
}

// OpenInput opens the named file for reading. An empty name or "-" selects stdin, which is never
// closed. Failures carry the util.ErrFileOpen exit code.
func OpenInput(name string) (*NamedReader, error) {
	if isStd(name) {
		return NewNamedReader(io.NopCloser(os.Stdin), "stdin"), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, util.WithCode(util.ErrFileOpen, errors.WithStack(err))
	}
	log.Debugf("Opened input %v", name)
	return NewNamedReader(f, name), nil
}

// CreateOutput creates (or truncates) the named file. An empty name or "-" selects stdout.
func CreateOutput(name string) (*NamedWriter, error) {
	if isStd(name) {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, "stdout"), nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, util.WithCode(util.ErrFileOpen, errors.WithStack(err))
	}
	log.Debugf("Created output %v", name)
	return NewNamedWriter(f, name), nil
}
