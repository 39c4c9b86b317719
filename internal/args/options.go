package args

import (
	"github.com/kriswebdev/basexml"
)

type CallbackOption func(string) error

var General struct {
	Verbose               []bool         `yaml:"verbose"            short:"v" long:"verbose"             env:"VERBOSITY"            description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `yaml:"-"                  short:"c" long:"config"              env:"CONFIG"               description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file"           short:"l" long:"log-file"            env:"LOG_FILE"             description:"Log file (file will be appended). If not set or '-', logs go to stderr."`
	LogFormat             string         `yaml:"log-format"         short:"f" long:"log-format"          env:"LOG_FORMAT"           description:"Log file format (json or text). Defaults to text." choice:"text" choice:"json"`
	LogColor              string         `yaml:"log-color"          short:"C" long:"log-color"           env:"LOG_COLOR"            description:"Should the log output be colored? true, false or auto (default)" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp"           long:"log-full-timestamp"  env:"LOG_FULL_TIMESTAMP"   description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller"            long:"log-report-caller"   env:"LOG_REPORT_CALLER"    description:"If you wish to add the calling method as a field."`
}

// Codec holds the transcoding options shared by the `encode`, `decode` and `serve` commands.
type Codec struct {
	Compact bool `yaml:"compact" long:"compact" env:"BASEXML_COMPACT" description:"End inputs with a 1 or 2 byte tail with a single group. Saves 3 bytes; decoders accept both forms."`
	Strict  bool `yaml:"strict"  long:"strict"  env:"BASEXML_STRICT"  description:"Reject encoded groups which do not match any layout instead of decoding them as zero bits."`
	Workers int  `yaml:"workers" short:"w" long:"workers" env:"BASEXML_WORKERS" description:"Transcode in memory with this many goroutines (negative = one per CPU). If not set, the data is streamed."`
}

// Encoding returns the BaseXML variant selected by the options.
func (c *Codec) Encoding() *basexml.Encoding {
	enc := basexml.StdEncoding
	if c.Compact {
		enc = enc.WithCompactTermination()
	}
	if c.Strict {
		enc = enc.Strict()
	}
	return enc
}

// Streaming reports whether the data should be piped through the streaming encoder / decoder.
func (c *Codec) Streaming() bool {
	return c.Workers == 0
}
