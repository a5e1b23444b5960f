// Package activity provides the recent community activity feed.
package activity

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides the authenticated activity feed route.
type Module struct {
	gateway ActivityGateway
	base    modulehandler.Base
}

// New returns an activity module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an activity module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ActivityGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "activity" }

// Healthy reports whether the activity module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires the activity feed handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{
		Prefixes: []string{routepath.AppActivity},
		Handler:  mux,
	}, nil
}
