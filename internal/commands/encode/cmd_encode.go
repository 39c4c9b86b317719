package encode

import (
	"context"
	"io"

	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/commands"
	"github.com/kriswebdev/basexml/internal/logging"
	"github.com/kriswebdev/basexml/internal/streams"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes a binary input into BaseXML.
type Command struct {
	args.Codec `yaml:",inline" group:"Codec options"`
	Files      commands.Files `yaml:"-" positional-args:"yes"`
}

func (c *Command) Execute(rest []string) error {
	logging.SetupLogging()

	in, out, err := c.Files.Open(rest)
	if err != nil {
		return err
	}

	ctx, cancel := commands.InterruptContext()
	defer cancel()

	read, written, err := c.Run(ctx, out, in)
	if err == nil {
		log.Infof("Encoded %d bytes of %v into %d bytes (%v) of %v", read, in, written, commands.Ratio(read, written), out)
	}
	return commands.Finish(in, out, err)
}

// Run encodes everything from `r` into `w` and returns the number of bytes read and written.
func (c *Command) Run(ctx context.Context, w io.Writer, r io.Reader) (read int64, written int64, err error) {
	enc := c.Encoding()
	log.Debugf("Encoding with compact=%v, workers=%v", enc.Compact(), c.Workers)

	if c.Streaming() {
		encoder := enc.NewEncoder(w)
		if read, err = streams.Pipe(encoder, r); err != nil {
			return read, 0, commands.IOFailure(errors.WithStack(err))
		}
		if err = encoder.Close(); err != nil {
			return read, 0, commands.IOFailure(errors.WithStack(err))
		}
		return read, int64(enc.EncodedLen(int(read))), nil
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, commands.IOFailure(errors.WithStack(err))
	}
	dst := make([]byte, enc.EncodedLen(len(src)))
	n, err := enc.EncodeParallel(ctx, dst, src, c.Workers)
	if err != nil {
		return int64(len(src)), 0, errors.WithStack(err)
	}
	written, err = commands.WriteAll(w, dst[:n])
	return int64(len(src)), written, err
}
