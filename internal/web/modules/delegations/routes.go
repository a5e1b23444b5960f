package delegations

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDelegations, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DelegationsPrefix, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDelegationsCreate, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppDelegationsCreate, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDelegationsDelete, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppDelegationsDelete, h.handleDelete)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppDelegationsSearch, h.handleSearch)
}
