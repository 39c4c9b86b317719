package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/kriswebdev/basexml"
	"github.com/kriswebdev/basexml/internal/streams"
	"github.com/kriswebdev/basexml/internal/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ValidationResult is the response of `POST /validate`.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Size   int    `json:"size"`
	Offset *int64 `json:"offset,omitempty"`
	Byte   string `json:"byte,omitempty"`
}

// encoding applies the `compact` and `strict` query parameters to the configured encoding.
func (hs *HttpServer) encoding(r *http.Request) (*basexml.Encoding, error) {
	enc := hs.Encoding
	query := r.URL.Query()
	if v := query.Get("compact"); v != "" {
		compact, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid compact parameter")
		}
		if compact && !enc.Compact() {
			enc = enc.WithCompactTermination()
		}
	}
	if v := query.Get("strict"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid strict parameter")
		}
		if strict && !enc.IsStrict() {
			enc = enc.Strict()
		}
	}
	return enc, nil
}

// readBody reads the request body up to MaxBodySize. The status code is set for failures.
func (hs *HttpServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, int, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, hs.MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusBadRequest, err
	}
	return data, http.StatusOK, nil
}

func (hs *HttpServer) handleEncode(w http.ResponseWriter, r *http.Request) {
	enc, err := hs.encoding(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// HTTP/1.x closes the request body on the first flush unless both directions stay open.
	if err := http.NewResponseController(w).EnableFullDuplex(); err != nil {
		log.Debugf("Full duplex not available for request %v: %v", middleware.GetReqID(r.Context()), err)
	}

	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	ww.Header().Set("Content-Type", ContentType)

	encoder := enc.NewEncoder(ww)
	n, err := streams.Pipe(encoder, r.Body)
	if err == nil {
		err = encoder.Close()
	}
	if err != nil {
		log.WithError(err).Warnf("Could not encode request %v after %d bytes: %v", middleware.GetReqID(r.Context()), n, err)
		if ww.BytesWritten() > 0 {
			// A cut short body is still valid output, so drop the connection instead.
			panic(http.ErrAbortHandler)
		}
		http.Error(ww, err.Error(), http.StatusBadRequest)
		return
	}
	log.Debugf("Encoded %d bytes into %d bytes", n, ww.BytesWritten())
}

func (hs *HttpServer) handleDecode(w http.ResponseWriter, r *http.Request) {
	enc, err := hs.encoding(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, status, err := hs.readBody(w, r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	dst := make([]byte, enc.MaxDecodedLen(len(data)))
	var n int
	if hs.Workers == 0 {
		n, err = enc.Decode(dst, data)
	} else {
		n, err = enc.DecodeParallel(r.Context(), dst, data, hs.Workers)
	}
	if err != nil {
		log.WithError(err).Debugf("Could not decode request %v: %v", middleware.GetReqID(r.Context()), err)
		http.Error(w, err.Error(), decodeStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(n))
	if _, err := w.Write(dst[:n]); err != nil {
		log.WithError(err).Debugf("Could not write the response: %v", err)
	}
}

// decodeStatus maps BaseXML errors to 422 and everything else (a cancelled request) to 500.
func decodeStatus(err error) int {
	switch {
	case errors.Is(err, basexml.ErrIllegalTermination),
		errors.Is(err, basexml.ErrUnexpectedEnd),
		errors.Is(err, basexml.ErrMalformedGroup):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (hs *HttpServer) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, status, err := hs.readBody(w, r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	result := ValidationResult{Valid: true, Size: len(data)}
	var forbidden *basexml.ForbiddenByteError
	if err := basexml.Validate(data); errors.As(err, &forbidden) {
		result.Valid = false
		result.Offset = &forbidden.Offset
		result.Byte = fmt.Sprintf("0x%02X", forbidden.Byte)
	}
	writeJSON(w, result)
}

func (hs *HttpServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Get())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Debugf("Could not write the response: %v", err)
	}
}
