package util

import (
	log "github.com/sirupsen/logrus"
)

// exit terminates the process. Tests replace it.
var exit = log.Exit

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the error code
// returned by ExitCode. A help request (`flags.ErrHelp`) exits with 0, as the help has already
// been printed by the parser.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "%s Error: %+v", Message(code), err)
	exit(code)
}
