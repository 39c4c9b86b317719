package server

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/logging"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the chi request logger matching the configured log format.
func GetRequestLogger(address *net.TCPAddr) NextHandlerFunc {
	if args.General.LogFormat == "json" {
		return middleware.RequestLogger(&logging.JSONLogFormatter{
			ServerAddress: address,
		})
	}

	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  &logging.ChiLogWriter{},
		NoColor: logging.NoColor(args.General.LogColor),
	})
}
