package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/commands/compare"
	"github.com/kriswebdev/basexml/internal/commands/decode"
	"github.com/kriswebdev/basexml/internal/commands/encode"
	"github.com/kriswebdev/basexml/internal/commands/serve"
	"github.com/kriswebdev/basexml/internal/commands/version"
	bxFlags "github.com/kriswebdev/basexml/internal/flags"
	"github.com/kriswebdev/basexml/internal/util"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseXML is the main executable
type BaseXML struct {
	parser *flags.Parser
}

// NewBaseXML will create a new instance of BaseXML and initialize the parser
func NewBaseXML(name string) *BaseXML {
	bx := &BaseXML{
		parser: flags.NewNamedParser(name, flags.HelpFlag|flags.PrintErrors),
	}
	bx.parser.LongDescription = "Encodes binary data into text which can be embedded in XML 1.0 documents, " +
		"20% larger than the input."

	bx.setupGeneral()
	bx.addCommand("encode", "Encode binary data", "Encode a file (or stdin) into BaseXML", &encode.Command{})
	bx.addCommand("decode", "Decode BaseXML", "Decode a BaseXML file (or stdin) back into binary", &decode.Command{})
	bx.addCommand("compare", "Compare encodings", "Encode the input with every known codec and compare size, XML safety and round trip", &compare.Command{})
	bx.addCommand("serve", "Run the HTTP service", "Serve /encode, /decode and /validate over HTTP", &serve.Command{})
	bx.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})

	return bx
}

// setupGeneral will configure general options
func (bx *BaseXML) setupGeneral() {
	if _, err := bx.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// addCommand registers a sub-command
func (bx *BaseXML) addCommand(command, short, long string, data interface{}) {
	_, err := bx.parser.AddCommand(command, short, long, data)
	util.MustErrorNilOrExit(errors.WithStack(err))
}

// loadConfiguration is called by the parser when it finds the `--config` option
func (bx *BaseXML) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return bxFlags.NewYamlParser(bx.parser).ParseFile(file)
}

// Run parses the arguments and executes the selected command.
func (bx *BaseXML) Run(arguments []string) error {
	args.General.ConfigurationFile = bx.loadConfiguration
	_, err := bx.parser.ParseArgs(arguments)
	return err
}

// main starts basexml and reads the configuration file
func main() {
	bx := NewBaseXML(path.Base(os.Args[0]))
	util.MustErrorNilOrExit(bx.Run(os.Args[1:]))
}
