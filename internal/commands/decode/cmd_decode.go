package decode

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

// Command decodes BaseXML back into binary.
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

	written, err := c.Run(ctx, out, in)
	if err == nil {
		log.Infof("Decoded %v into %d bytes of %v", in, written, out)
	}
	return commands.Finish(in, out, err)
}

// Run decodes `r` into `w` and returns the number of bytes written. When streaming, the output
// may hold a decoded prefix once the input turns out to be illegal. With workers nothing is
// written unless the whole input decodes.
func (c *Command) Run(ctx context.Context, w io.Writer, r io.Reader) (int64, error) {
	enc := c.Encoding()
	log.Debugf("Decoding with strict=%v, workers=%v", enc.IsStrict(), c.Workers)

	if c.Streaming() {
		written, err := streams.Pipe(w, enc.NewDecoder(r))
		if err != nil {
			return written, commands.IOFailure(errors.WithStack(err))
		}
		return written, nil
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return 0, commands.IOFailure(errors.WithStack(err))
	}
	dst := make([]byte, enc.MaxDecodedLen(len(src)))
	n, err := enc.DecodeParallel(ctx, dst, src, c.Workers)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return commands.WriteAll(w, dst[:n])
}
