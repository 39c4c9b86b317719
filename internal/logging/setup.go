package logging

import (
	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures logrus from the `General` options. Commands call it first thing in
// `Execute`, after the command line and the configuration file have been parsed.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(util.WithCode(util.ErrFileOpen, errors.WithStack(err)))
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// NewFormatter returns the JSON formatter or the text formatter, depending on the log format.
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	return &log.TextFormatter{
		ForceColors:   ForceColor(color),
		DisableColors: NoColor(color),
		FullTimestamp: fullTimestamp,
	}
}

// ForceColor returns true if the color option explicitly turns colors on
func ForceColor(color string) bool {
	color = strings.TrimSpace(strings.ToLower(color))
	return color == "yes" || color == "true" || color == "1"
}

// NoColor returns true if the color option explicitly turns colors off
func NoColor(color string) bool {
	color = strings.TrimSpace(strings.ToLower(color))
	return color == "no" || color == "false" || color == "0"
}
