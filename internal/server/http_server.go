package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/kriswebdev/basexml"
	"github.com/kriswebdev/basexml/internal/util/addr"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultAddress is used when no listen address is configured.
	DefaultAddress = "127.0.0.1:8080"
	// DefaultMaxBodySize limits the bodies which are read into memory.
	DefaultMaxBodySize = 64 << 20

	// ContentType is the media type of BaseXML encoded bodies.
	ContentType = "application/x-basexml"
)

// HttpServer is the BaseXML transcoding service.
type HttpServer struct {
	Address     string
	MaxBodySize int64
	Encoding    *basexml.Encoding
	// Workers is passed to basexml.Encoding.DecodeParallel. 0 decodes sequentially.
	Workers int

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan error
}

func NewHttpServer(address string, encoding *basexml.Encoding) *HttpServer {
	if address == "" {
		address = DefaultAddress
	}
	if encoding == nil {
		encoding = basexml.StdEncoding
	}
	return &HttpServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
		Encoding:    encoding,
		done:        make(chan error, 1),
	}
}

func (hs *HttpServer) String() string {
	if a := hs.Addr(); a != nil {
		return fmt.Sprintf("http://%v", a)
	}
	return fmt.Sprintf("http://%v", hs.Address)
}

// Router creates the routes of the service. The address is only used to enrich the request log.
func (hs *HttpServer) Router(address *net.TCPAddr) chi.Router {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		recoverer,                  // Recover from panics without crashing the server
	)

	router.Post("/encode", hs.handleEncode)
	router.Post("/decode", hs.handleDecode)
	router.Post("/validate", hs.handleValidate)
	router.Get("/version", hs.handleVersion)

	return router
}

// recoverer works like middleware.Recoverer but re-panics http.ErrAbortHandler, so the
// server drops the connection instead of completing a truncated response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			if entry := middleware.GetLogEntry(r); entry != nil {
				entry.Panic(rvr, debug.Stack())
			} else {
				middleware.PrintPrettyStack(rvr)
			}
			w.WriteHeader(http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// Startup starts listening and serves the requests in the background.
func (hs *HttpServer) Startup() error {
	address, err := addr.ResolveHostAddress(hs.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	ln, err := net.Listen("tcp", hs.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", hs.Address)
	}

	srv := &http.Server{
		Handler:           hs.Router(address),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hs.mu.Lock()
	hs.listener, hs.server = ln, srv
	hs.mu.Unlock()

	go func() {
		log.Infof("Starting HTTP server at %v", hs)
		err := srv.Serve(ln)
		if err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
			hs.done <- err
		}
		close(hs.done)
	}()

	return nil
}

// Done is closed when the server stops. It carries the error if serving failed.
func (hs *HttpServer) Done() <-chan error {
	return hs.done
}

// Addr returns the address the server listens on, or nil before Startup.
func (hs *HttpServer) Addr() net.Addr {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.listener == nil {
		return nil
	}
	return hs.listener.Addr()
}

func (hs *HttpServer) Shutdown() error {
	hs.mu.Lock()
	srv := hs.server
	hs.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
