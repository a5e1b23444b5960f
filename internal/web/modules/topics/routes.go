package topics

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTopics, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TopicsPrefix, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTopicPattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppTopicItemsPattern, h.handleItems)
}
