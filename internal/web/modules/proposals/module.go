// Package proposals provides authenticated proposal browsing, authoring,
// voting, and commenting routes.
package proposals

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides authenticated proposal routes.
type Module struct {
	gateway ProposalGateway
	base    modulehandler.Base
}

// New returns a proposals module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a proposals module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ProposalGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "proposals" }

// Healthy reports whether the proposals module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires proposal route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{
		Prefixes: []string{routepath.AppProposals, routepath.ProposalsPrefix},
		Handler:  mux,
	}, nil
}
