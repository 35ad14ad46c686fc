// Package server exposes beam analysis over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/units"
	"github.com/alexiusacademia/gobeam/internal/version"
)

// maxBody bounds the size of a beam definition
const maxBody = 1 << 20

// Server serves the analysis API
type Server struct {
	cfg    config.Config
	router *mux.Router
}

// New builds the router with rate limiting on the API routes
func New(cfg config.Config) *Server {
	s := &Server{cfg: cfg, router: mux.NewRouter()}

	limiter := NewIPRateLimiter(rate.Limit(cfg.ServerRate), cfg.ServerBurst)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(logRequests)
	api.HandleFunc("/health", s.health).Methods("GET")

	limited := func(h http.HandlerFunc) http.Handler { return limiter.LimitMiddleware(h) }
	api.Handle("/analyze", limited(s.analyze)).Methods("POST")
	api.Handle("/diagram", limited(s.diagram)).Methods("POST")
	api.Handle("/report/pdf", limited(s.pdf)).Methods("POST")
	api.Handle("/report/xlsx", limited(s.xlsx)).Methods("POST")
	api.Handle("/convert", limited(s.convert)).Methods("GET")

	return s
}

// Handler returns the router wrapped in CORS handling
func (s *Server) Handler() http.Handler {
	return CORS(s.router)
}

// ListenAndServe runs until ctx is cancelled, then drains connections
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ServerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// CORS allows browser clients from any origin
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"duration": time.Since(start),
		}).Debug("Request served")
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	contentType := map[string]string{
		"":    "image/png",
		"png": "image/png",
		"svg": "image/svg+xml",
		"pdf": "application/pdf",
	}[format]
	if contentType == "" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
		return
	}
	if format == "" {
		format = "png"
	}

	res, ok := s.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := diagram.WriteBeamDiagrams(&buf, res, s.cfg.DiagramSamples, "."+format); err != nil {
		writeError(w, http.StatusInternalServerError, "diagram rendering error")
		log.WithError(err).Error("Rendering diagrams")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(buf.Bytes())
}

func (s *Server) pdf(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	opts := report.PDFOptions{Samples: s.cfg.DiagramSamples, Diagrams: true}
	if err := report.WritePDF(&buf, res, opts); err != nil {
		writeError(w, http.StatusInternalServerError, "report generation error")
		log.WithError(err).Error("Rendering PDF report")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam.pdf\"")
	w.Write(buf.Bytes())
}

func (s *Server) xlsx(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, res, s.cfg.DiagramSamples); err != nil {
		writeError(w, http.StatusInternalServerError, "report generation error")
		log.WithError(err).Error("Rendering XLSX report")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam.xlsx\"")
	w.Write(buf.Bytes())
}

// convert handles /api/convert?quantity=length&value=5&from=ft&to=m
func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var value float64
	if _, err := fmt.Sscan(q.Get("value"), &value); err != nil {
		writeError(w, http.StatusBadRequest, "value must be a number")
		return
	}
	out, err := units.Convert(q.Get("quantity"), value, q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quantity": q.Get("quantity"),
		"value":    out,
		"unit":     q.Get("to"),
	})
}

// run decodes and analyzes the request body, writing the error response on failure
func (s *Server) run(w http.ResponseWriter, r *http.Request) (*beam.Result, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return nil, false
	}
	in, err := beam.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	res, err := beam.Analyze(in, s.cfg.BeamOptions())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return nil, false
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
