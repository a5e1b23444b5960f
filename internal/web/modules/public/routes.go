package public

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	// "GET /{$}" matches the root path only, not every unrouted path.
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Principles, h.handleContent)
	mux.HandleFunc(http.MethodGet+" "+routepath.Actions, h.handleContent)
	mux.HandleFunc(http.MethodGet+" "+routepath.Stories, h.handleContent)
}
