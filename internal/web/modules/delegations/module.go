// Package delegations provides vote delegation management: assigning a
// delegate globally or per topic, revoking, and inspecting the resolved chain.
package delegations

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides authenticated delegation routes.
type Module struct {
	gateway DelegationGateway
	base    modulehandler.Base
}

// New returns a delegations module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a delegations module with explicit gateway and handler dependencies.
func NewWithGateway(gateway DelegationGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "delegations" }

// Healthy reports whether the delegations module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires delegation route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{
		Prefixes: []string{routepath.AppDelegations, routepath.DelegationsPrefix},
		Handler:  mux,
	}, nil
}
