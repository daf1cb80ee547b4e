package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/svyatk/vitae/internal/identity"
	"github.com/svyatk/vitae/internal/platform/timeouts"
	"github.com/svyatk/vitae/internal/resume"
	"github.com/svyatk/vitae/internal/social"
	"github.com/svyatk/vitae/internal/storage/sqlite"
	"github.com/svyatk/vitae/internal/web/module"
	"github.com/svyatk/vitae/internal/web/session"
)

// sessionPurgeInterval is how often expired session records are deleted.
const sessionPurgeInterval = time.Hour

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	DBPath       string
	PostsPerPage int
	// RememberKey signs remember-me tokens. Empty disables the feature.
	RememberKey []byte
	Logger      *log.Logger
}

// Server hosts the web HTTP server and owns its storage handle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
	sessions   *session.Manager
	logger     *log.Logger
}

// NewServer opens storage, assembles the application services, and builds
// the HTTP server around the composed handler.
func NewServer(cfg Config) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	sessions := session.NewManager(store)
	deps := module.Dependencies{
		Identity: identity.NewService(store),
		Graph:    social.NewGraph(store),
		Feed:     social.NewFeed(store, cfg.PostsPerPage),
		Resume:   resume.NewService(store),
		Sessions: sessions,
		Logger:   logger,
	}
	if len(cfg.RememberKey) > 0 {
		remember, err := session.NewRememberTokens(cfg.RememberKey)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("remember tokens: %w", err)
		}
		deps.Remember = remember
	}

	handler, err := NewHandler(deps)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:    store,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	go s.purgeExpiredSessions(ctx)

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// purgeExpiredSessions deletes expired session records on a fixed cadence.
func (s *Server) purgeExpiredSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sessions.PurgeExpired(ctx); err != nil {
				s.logger.Printf("purge expired sessions: %v", err)
			}
		}
	}
}

// Close releases the storage handle held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Printf("close storage: %v", err)
	}
}
