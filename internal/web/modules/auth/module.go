// Package auth provides the public login, registration, and logout routes.
//
// Credential exchange happens server-side: the backend token never reaches
// the browser, which only holds an opaque session id cookie.
package auth

import (
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/web/module"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/requestmeta"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

// Module provides public authentication routes.
type Module struct {
	gateway  AuthGateway
	sessions SessionManager
	policy   requestmeta.SchemePolicy
}

// New returns an auth module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an auth module with explicit dependencies.
func NewWithGateway(gateway AuthGateway, sessions SessionManager, policy requestmeta.SchemePolicy) Module {
	return Module{gateway: gateway, sessions: sessions, policy: policy}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Healthy reports whether the auth module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires authentication route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.sessions, m.policy))
	return module.Mount{
		Prefixes: []string{routepath.Login, routepath.Register, routepath.Logout},
		Handler:  mux,
	}, nil
}
