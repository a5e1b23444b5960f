// Package public provides the unauthenticated landing and content pages.
package public

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides public site routes.
type Module struct {
	gateway  ContentGateway
	signedIn module.ResolveSignedIn
}

// New returns a public module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a public module with explicit dependencies.
func NewWithGateway(gateway ContentGateway, signedIn module.ResolveSignedIn) Module {
	return Module{gateway: gateway, signedIn: signedIn}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Healthy reports whether the public module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.signedIn))
	return module.Mount{
		Prefixes: []string{routepath.Root, routepath.Principles, routepath.Actions, routepath.Stories},
		Handler:  mux,
	}, nil
}
