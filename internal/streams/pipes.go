package streams

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PipeDebugEnv enables tracing of the piped data to the log when set to "1".
const PipeDebugEnv = "BASEXML_PIPE_DEBUG"

type logWriter struct {
	Name func() string
}

func (l *logWriter) Write(p []byte) (n int, err error) {
	log.Debugf("%v: %q", l.Name(), p)
	return len(p), nil
}

// readError marks errors coming from the source side of a Pipe
type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

type sourceReader struct {
	io.Reader
}

func (s sourceReader) Read(p []byte) (int, error) {
	n, err := s.Reader.Read(p)
	if err != nil && err != io.EOF {
		err = &readError{err: err}
	}
	return n, err
}

// Pipe copies everything from `r` into `w` with a buffer of BufferSize. When the PipeDebugEnv environment variable
// is set, the data passing through is written to the debug log.
//
// Errors returned by `r` are wrapped, so IsReadError can tell them apart from errors of `w`.
func Pipe(w io.Writer, r io.Reader) (int64, error) {
	var reader io.Reader = sourceReader{r}
	var writer = w

	if os.Getenv(PipeDebugEnv) == "1" {
		reader = io.TeeReader(reader, &logWriter{Name: func() string {
			return fmt.Sprintf("Read [%v]->%v", streamName(r), streamName(w))
		}})
		writer = io.MultiWriter(w, &logWriter{Name: func() string {
			return fmt.Sprintf("Wrote %v->[%v]", streamName(r), streamName(w))
		}})
	}

	log.Tracef("Piping data %v -> %v", streamName(r), streamName(w))
	// Wrapping hides ReaderFrom/WriterTo from io.CopyBuffer, so the buffer is always used
	n, err := io.CopyBuffer(struct{ io.Writer }{writer}, struct{ io.Reader }{reader}, make([]byte, BufferSize))
	return n, err
}

// streamName describes a stream for the log without printing its contents. Arbitrary
// Stringers are skipped, a *bytes.Buffer would return all of its data.
func streamName(v interface{}) string {
	switch s := v.(type) {
	case *NamedReader:
		return s.String()
	case *NamedWriter:
		return s.String()
	case interface{ Name() string }:
		return s.Name()
	}
	return fmt.Sprintf("%T", v)
}

// IsReadError reports whether the error returned by Pipe came from its reader.
func IsReadError(err error) bool {
	var re *readError
	return errors.As(err, &re)
}

// TryClose tries closing a stream and just reports to log if it fails
func TryClose(closer io.Closer) {
	if closer == nil {
		return
	}

	if c, ok := closer.(Closed); ok && c.Closed() {
		return
	}

	if err := closer.Close(); err != nil && !strings.Contains(err.Error(), "file already closed") {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close stream: %v", err)
	}
}

// LogClose closes the stream, logging and returning the error if there is one
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok && c.Closed() {
		return nil
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	log.Tracef("%v successfully closed", closer)
	return nil
}
