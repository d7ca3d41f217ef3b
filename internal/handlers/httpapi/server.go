package httpapi

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"text/template"
	"time"

	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"github.com/rs/zerolog"
)

//go:embed opensearch.xml
var openSearchTemplate string

// Options configures a Server.
type Options struct {
	Addr            string
	PublicURL       string // scheme://host[:port] the service is reachable at, no trailing slash
	Title           string
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end of a RedirectService.
type Server struct {
	svc        ports.RedirectService
	opts       Options
	log        zerolog.Logger
	openSearch []byte
	handler    http.Handler
}

// NewServer builds the routes for svc. It panics if svc is nil.
func NewServer(svc ports.RedirectService, opts Options, log zerolog.Logger) (*Server, error) {
	if svc == nil {
		panic("redirect service cannot be nil")
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}

	descriptor, err := renderOpenSearch(opts)
	if err != nil {
		return nil, err
	}

	s := &Server{
		svc:        svc,
		opts:       opts,
		log:        log,
		openSearch: descriptor,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /search", s.handleSearchQuery)
	mux.HandleFunc("GET /search/{args...}", s.handleSearch)
	mux.HandleFunc("GET /opensearch.xml", s.handleOpenSearch)
	mux.HandleFunc("GET /info/healthcheck", handleHealthcheck)

	s.handler = accessLog(log, mux)
	return s, nil
}

// Handler returns the root handler, access logging included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on Options.Addr until ctx is cancelled, then shuts down
// gracefully within Options.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func renderOpenSearch(opts Options) ([]byte, error) {
	tmpl, err := template.New("opensearch.xml").Parse(openSearchTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search descriptor: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Title, PublicURL string }{opts.Title, opts.PublicURL}); err != nil {
		return nil, fmt.Errorf("failed to render search descriptor: %w", err)
	}
	return buf.Bytes(), nil
}
