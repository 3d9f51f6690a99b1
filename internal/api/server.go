// Package api serves the analyzer over HTTP and streams analysis events over
// WebSocket.
package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/AaronLay10/SaiScope/internal/analyzer"
	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/smartai"
	"github.com/AaronLay10/SaiScope/internal/tracer"
	"github.com/AaronLay10/SaiScope/internal/version"
)

// Analyzer is the part of *analyzer.Analyzer the server uses.
type Analyzer interface {
	TraceChain(ctx context.Context, key smartai.GroupKey, startID int64, maxSteps int) (*tracer.Report, error)
	GenerateComments(ctx context.Context, key smartai.GroupKey, style analyzer.Style) (*analyzer.GroupComments, error)
	CommentRows(ctx context.Context, rows []smartai.ScriptRow, entityName string, style analyzer.Style) []analyzer.CommentRow
	CompactGroup(ctx context.Context, key smartai.GroupKey) ([]analyzer.CompactRow, error)
}

// Options configures a Server.
type Options struct {
	Port int
	// Style is used when a request names none.
	Style analyzer.Style
	Auth  *Auth
	TLS   *TLSConfig
}

// Server is the HTTP front of one Analyzer.
type Server struct {
	an      Analyzer
	opts    Options
	started time.Time
}

// NewServer returns a Server for an.
func NewServer(an Analyzer, opts Options) *Server {
	if opts.Style == "" {
		opts.Style = analyzer.StyleCanonical
	}
	return &Server{an: an, opts: opts, started: time.Now()}
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	auth := s.opts.Auth
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /metrics", auth.adminOnly(s.metricsHandler))
	mux.HandleFunc("GET /events", auth.adminOnly(eventsHandler))
	mux.HandleFunc("GET /ws/events", auth.adminOnly(wsEventsHandler))
	mux.HandleFunc("GET /definitions/{kind}", auth.anyRole(definitionsHandler))
	mux.HandleFunc("GET /explain", auth.anyRole(explainHandler))
	mux.HandleFunc("GET /trace", auth.anyRole(s.traceHandler))
	mux.HandleFunc("GET /scripts", auth.anyRole(s.scriptsHandler))
	mux.HandleFunc("GET /comments", auth.anyRole(s.commentsHandler))
	mux.HandleFunc("POST /comments", auth.anyRole(s.commentBatchHandler))
	return logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.opts.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if s.opts.TLS != nil {
		cfg, err := s.opts.TLS.Load()
		if err != nil {
			return err
		}
		srv.TLSConfig = cfg
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s (tls=%v, auth=%v)", srv.Addr, s.opts.TLS != nil, s.opts.Auth.Enabled())
		if srv.TLSConfig != nil {
			errc <- srv.ListenAndServeTLS("", "")
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	events.CloseAllSubscribers()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Hostname  string `json:"hostname"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"ts"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	host, _ := os.Hostname()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   "saiscope",
		Version:   version.Version,
		Hostname:  host,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func eventsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, events.Snapshot())
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// statusFor maps analyzer errors to HTTP statuses.
func statusFor(err error) int {
	var re *smartai.RepositoryError
	switch {
	case smartai.IsNotFound(err), errors.Is(err, tracer.ErrStartNotInGraph):
		return http.StatusNotFound
	case errors.As(err, &re):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack hands the connection to the WebSocket upgrader.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		events.Emit("info", "api.request", "", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
