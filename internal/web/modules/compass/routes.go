package compass

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCompass, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CompassPrefix, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCompassPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCompassAlignmentPattern, h.handleAlignmentFragment)
}
