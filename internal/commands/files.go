// Package commands holds what the transcoding sub-commands share: the positional file arguments
// and the classification of the errors they return.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/kriswebdev/basexml/internal/streams"
	"github.com/kriswebdev/basexml/internal/util"
	"github.com/pkg/errors"
)

// Files are the positional arguments of `encode` and `decode`.
type Files struct {
	Input  string `positional-arg-name:"input"  description:"Input file. Omit or use '-' for stdin."`
	Output string `positional-arg-name:"output" description:"Output file. Omit or use '-' for stdout."`
}

// Open opens the input and creates the output. Arguments left over by the parser are a syntax error.
func (f *Files) Open(rest []string) (*streams.NamedReader, *streams.NamedWriter, error) {
	if len(rest) > 0 {
		return nil, nil, util.WithCode(util.ErrTooManyArgs, errors.Errorf("unexpected arguments: %v", strings.Join(rest, " ")))
	}

	in, err := streams.OpenInput(f.Input)
	if err != nil {
		return nil, nil, err
	}
	out, err := streams.CreateOutput(f.Output)
	if err != nil {
		streams.TryClose(in)
		return nil, nil, err
	}
	return in, out, nil
}

// Close closes both streams. A failure closing the output is reported with util.ErrOutputClose.
func Close(in *streams.NamedReader, out *streams.NamedWriter) error {
	var errs error
	if err := in.Close(); err != nil {
		errs = multierror.Append(errs, util.WithCode(util.ErrFileIO, errors.Wrapf(err, "could not close %v", in)))
	}
	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, util.WithCode(util.ErrOutputClose, errors.Wrapf(err, "could not close %v", out)))
	}
	return errs
}

// Finish closes the streams after a transcoding run. The error of the run wins over the close errors.
func Finish(in *streams.NamedReader, out *streams.NamedWriter, err error) error {
	closeErr := Close(in, out)
	if err != nil {
		return err
	}
	return closeErr
}

// IOFailure gives the util.ErrFileIO exit code to errors which would otherwise be reported as
// unexpected, such as a failing pipe.
func IOFailure(err error) error {
	if err == nil || util.ExitCode(err) != util.ErrGeneric {
		return err
	}
	return util.WithCode(util.ErrFileIO, err)
}

// InterruptContext returns a context which is cancelled on SIGINT or SIGTERM.
func InterruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Ratio formats out/in as a percentage, for the log.
func Ratio(in, out int64) string {
	if in == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(out)*100/float64(in))
}

// WriteAll writes the transcoded buffer and returns the number of bytes written.
func WriteAll(w io.Writer, p []byte) (int64, error) {
	n, err := w.Write(p)
	if err != nil {
		return int64(n), IOFailure(errors.WithStack(err))
	}
	return int64(n), nil
}
