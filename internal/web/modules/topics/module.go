// Package topics provides topic label browsing with merged, cached poll lists.
package topics

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// Module provides authenticated topic browsing routes.
type Module struct {
	gateway TopicGateway
	cache   webstorage.Store
	base    modulehandler.Base
}

// New returns a topics module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a topics module with explicit gateway, cache, and
// handler dependencies. The cache may be nil; topic pages then skip merging
// with previously fetched summaries.
func NewWithGateway(gateway TopicGateway, cache webstorage.Store, base modulehandler.Base) Module {
	return Module{gateway: gateway, cache: cache, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "topics" }

// Healthy reports whether the topics module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires topic route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.cache), m.base))
	return module.Mount{
		Prefixes: []string{routepath.AppTopics, routepath.TopicsPrefix},
		Handler:  mux,
	}, nil
}
