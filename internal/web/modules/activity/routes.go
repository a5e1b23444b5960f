package activity

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppActivity, h.handleIndex)
}
