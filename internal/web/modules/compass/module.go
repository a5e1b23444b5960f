// Package compass presents the community's level-a principles as a browsable
// reading surface with alignment tallies.
package compass

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides authenticated principle browsing routes.
type Module struct {
	gateway CompassGateway
	base    modulehandler.Base
}

// New returns a compass module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a compass module with explicit gateway and handler dependencies.
func NewWithGateway(gateway CompassGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "compass" }

// Healthy reports whether the compass module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires compass route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{
		Prefixes: []string{routepath.AppCompass, routepath.CompassPrefix},
		Handler:  mux,
	}, nil
}
