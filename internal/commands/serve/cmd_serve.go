package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/kriswebdev/basexml/internal/args"
	"github.com/kriswebdev/basexml/internal/logging"
	"github.com/kriswebdev/basexml/internal/server"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command runs the HTTP transcoding service until interrupted.
type Command struct {
	args.Codec  `yaml:",inline" group:"Codec options"`
	Listen      string `yaml:"listen"        long:"listen"        env:"BASEXML_LISTEN"        description:"Address to listen on, e.g. ':8080'. Defaults to 127.0.0.1:8080."`
	MaxBodySize int64  `yaml:"max-body-size" long:"max-body-size" env:"BASEXML_MAX_BODY_SIZE" description:"Largest body accepted by /decode and /validate, in bytes. Defaults to 64 MiB."`
}

// NewServer creates the server described by the options.
func (c *Command) NewServer() *server.HttpServer {
	srv := server.NewHttpServer(c.Listen, c.Encoding())
	if c.MaxBodySize > 0 {
		srv.MaxBodySize = c.MaxBodySize
	}
	srv.Workers = c.Workers
	return srv
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	srv := c.NewServer()
	return c.Run(srv, interrupted)
}

// Run starts the server and shuts it down when a signal arrives. It returns early if the server
// stops on its own.
func (c *Command) Run(srv *server.HttpServer, interrupted <-chan os.Signal) error {
	if err := srv.Startup(); err != nil {
		return err
	}

	var errs error
	select {
	case sig := <-interrupted:
		log.Debugf("Received %v", sig)
	case err := <-srv.Done():
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	log.Infof("Graceful server shutdown...")
	if err := srv.Shutdown(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v", srv))
	}
	return errs
}
