package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/modules"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	"github.com/kaarlekaarle/commons-web/internal/web/session"
)

const staticPrefix = "/static/"

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	PublicModules    []module.Module
	ProtectedModules []module.Module
	Sessions         *session.Resolver
	StaticFS         fs.FS
	// Recorder, when set, exposes recent backend calls at /debug/api.
	Recorder *commons.Recorder
}

// Compose builds the root HTTP handler: module mounts, static assets, and the
// health endpoint, wrapped in the shared middleware chain. Protected modules
// are guarded by session resolution; requests without a live session are
// redirected to login before any module handler runs.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.PublicModules {
		if err := mountModule(root, feature, seen, nil, false); err != nil {
			return nil, err
		}
	}
	guard := requireSession(input.Sessions)
	for _, feature := range input.ProtectedModules {
		if err := mountModule(root, feature, seen, guard, true); err != nil {
			return nil, err
		}
	}

	if input.StaticFS != nil {
		root.Handle(staticPrefix, http.StripPrefix(staticPrefix, http.FileServer(http.FS(input.StaticFS))))
	}

	all := make([]module.Module, 0, len(input.PublicModules)+len(input.ProtectedModules))
	all = append(all, input.PublicModules...)
	all = append(all, input.ProtectedModules...)
	root.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth(all))

	if input.Recorder != nil {
		recorder := input.Recorder
		root.HandleFunc(http.MethodGet+" "+routepath.DebugAPI, func(w http.ResponseWriter, _ *http.Request) {
			_ = httpx.WriteJSON(w, http.StatusOK, recorder.Recent())
		})
	}

	return httpx.Chain(root, httpx.RecoverPanic(), httpx.RequestID()), nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string, wrap httpx.Middleware, protected bool) error {
	if feature == nil {
		return fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if len(mount.Prefixes) == 0 {
		return fmt.Errorf("mount module %q: at least one prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}
	for _, prefix := range mount.Prefixes {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" || !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("mount module %q: invalid prefix %q", feature.ID(), prefix)
		}
		if protected != strings.HasPrefix(prefix, routepath.AppPrefix) {
			group := "public"
			if protected {
				group = "protected"
			}
			return fmt.Errorf("mount module %q: prefix %q does not belong in the %s group", feature.ID(), prefix, group)
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, handler)
	}
	return nil
}

// requireSession resolves the browser session once per request and attaches
// it to the context so downstream token resolution does not hit the store
// again. Unauthenticated requests are redirected to login.
func requireSession(sessions *session.Resolver) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Lookup(r)
			if !ok {
				httpx.WriteRedirect(w, r, routepath.Login)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func handleHealth(mods []module.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		health := modules.Health(mods)
		status := http.StatusOK
		overall := "ok"
		for _, healthy := range health {
			if !healthy {
				status = http.StatusServiceUnavailable
				overall = "degraded"
				break
			}
		}
		_ = httpx.WriteJSON(w, status, map[string]any{
			"status":  overall,
			"modules": health,
		})
	}
}
