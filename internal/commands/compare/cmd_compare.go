package compare

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/kriswebdev/basexml"
	"github.com/kriswebdev/basexml/internal/commands"
	"github.com/kriswebdev/basexml/internal/logging"
	"github.com/kriswebdev/basexml/internal/streams"
	"github.com/kriswebdev/basexml/internal/util"
	"github.com/kriswebdev/basexml/internal/util/enc"
	"github.com/kriswebdev/basexml/internal/util/mime"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	Bold  = "\x1b[1m"
	Reset = "\x1b[0m"
)

// Command encodes one input with every registered codec and prints how they fare.
type Command struct {
	Codecs []string `yaml:"codecs" short:"e" long:"codec" env:"BASEXML_CODECS" description:"Codecs to compare, by name or one-letter code, comma separated or repeated. All codecs when not set."`
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input file. Omit or use '-' for stdin."`
	} `yaml:"-" positional-args:"yes"`

	// Out is where the table goes. Defaults to the ANSI-aware stdout.
	Out io.Writer `yaml:"-" no-flag:"true"`
}

// Result is the outcome of one codec.
type Result struct {
	Encoder   enc.Encoder
	Size      int
	XMLSafe   bool
	RoundTrip bool
	Elapsed   time.Duration
}

func (c *Command) Execute(rest []string) error {
	logging.SetupLogging()

	if len(rest) > 0 {
		return util.WithCode(util.ErrTooManyArgs, errors.Errorf("unexpected arguments: %v", strings.Join(rest, " ")))
	}

	encoders, err := c.encoders()
	if err != nil {
		return util.WithCode(util.ErrSyntax, err)
	}

	in, err := streams.OpenInput(c.Args.Input)
	if err != nil {
		return err
	}
	defer streams.TryClose(in)

	data, err := io.ReadAll(in)
	if err != nil {
		return commands.IOFailure(errors.Wrapf(err, "could not read %v", in))
	}
	log.Debugf("Comparing %d codecs on %d bytes of %v", len(encoders), len(data), in)

	out := c.Out
	if out == nil {
		out = ansi.NewAnsiStdout()
	}
	return Print(out, len(data), Compare(data, encoders))
}

func (c *Command) encoders() ([]enc.Encoder, error) {
	if len(c.Codecs) == 0 {
		return enc.All, nil
	}
	encoders := make([]enc.Encoder, 0, len(c.Codecs))
	for _, field := range c.Codecs {
		for _, name := range mime.SplitField(field) {
			e, err := enc.FromName(name)
			if err != nil {
				return nil, errors.Wrapf(err, "known codecs: %v", strings.Join(enc.Names(), ", "))
			}
			encoders = append(encoders, e)
		}
	}
	return encoders, nil
}

// Compare runs every encoder over data.
func Compare(data []byte, encoders []enc.Encoder) []Result {
	results := make([]Result, 0, len(encoders))
	for _, e := range encoders {
		start := time.Now()
		encoded := e.Encode(data)
		decoded, err := e.Decode(encoded)
		r := Result{
			Encoder:   e,
			Size:      len(encoded),
			XMLSafe:   basexml.Validate(encoded) == nil,
			RoundTrip: err == nil && bytes.Equal(decoded, data),
			Elapsed:   time.Since(start),
		}
		if err != nil {
			log.WithError(err).Warnf("%v could not decode its own output", enc.Describe(e))
		}
		results = append(results, r)
	}
	return results
}

// Print writes the results as a table.
func Print(out io.Writer, inputSize int, results []Result) error {
	if _, err := fmt.Fprintf(out, Bold+"%d input bytes"+Reset+"\n", inputSize); err != nil {
		return errors.WithStack(err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODEC\tSIZE\tRATIO\tXML 1.0\tROUND TRIP\tTIME")
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%d\t%v\t%v\t%v\t%v\n",
			enc.Describe(r.Encoder), r.Size, commands.Ratio(int64(inputSize), int64(r.Size)),
			yesNo(r.XMLSafe), yesNo(r.RoundTrip), r.Elapsed.Round(time.Microsecond))
	}
	return errors.WithStack(tw.Flush())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
