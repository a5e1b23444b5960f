package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/modules"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/requestmeta"
	"github.com/kaarlekaarle/commons-web/internal/web/session"
	webstatic "github.com/kaarlekaarle/commons-web/internal/web/static"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
	"github.com/kaarlekaarle/commons-web/internal/web/storage/sqlite"
)

const (
	readHeaderTimeout    = 10 * time.Second
	shutdownTimeout      = 10 * time.Second
	sessionPruneInterval = time.Hour
)

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      webstorage.Store
}

// NewServer opens the web store, builds the backend client, and composes the
// module registry into a ready-to-run HTTP server.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open web store: %w", err)
	}
	sessions := session.NewResolver(store)

	var api commons.API
	var recorder *commons.Recorder
	if cfg.DemoMode {
		api = commons.NewFixture()
	} else {
		opts := []commons.Option{commons.WithUnauthorizedHook(sessions.UnauthorizedHook())}
		if cfg.APIDebug {
			recorder = commons.NewRecorder()
			opts = append(opts, commons.WithRecorder(recorder))
		}
		client, err := commons.NewClient(cfg.APIBaseURL, opts...)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("build backend client: %w", err)
		}
		api = client
	}

	deps := modules.Dependencies{
		API:      api,
		Store:    store,
		Sessions: sessions,
		Policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Base:     modulehandler.NewBase(resolveToken(sessions), nil, resolveViewer(sessions)),
		SignedIn: resolveSignedIn(sessions),
	}
	handler, err := Compose(ComposeInput{
		PublicModules:    modules.DefaultPublicModules(deps),
		ProtectedModules: modules.DefaultProtectedModules(deps),
		Sessions:         sessions,
		StaticFS:         webstatic.FS,
		Recorder:         recorder,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	return &Server{
		httpAddr: strings.TrimSpace(cfg.HTTPAddr),
		httpServer: &http.Server{
			Addr:              strings.TrimSpace(cfg.HTTPAddr),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		store: store,
	}, nil
}

// ListenAndServe serves HTTP traffic until the context ends, then performs a
// bounded shutdown so in-flight requests drain before hard close. Expired
// sessions are pruned periodically while the server runs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	pruneCtx, stopPrune := context.WithCancel(ctx)
	defer stopPrune()
	go s.pruneSessions(pruneCtx)

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
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

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := s.store.DeleteExpiredSessions(ctx, now.UTC()); err != nil {
				log.Printf("prune expired sessions: %v", err)
			}
		}
	}
}

// Close releases the web store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close web store: %v", err)
	}
}
