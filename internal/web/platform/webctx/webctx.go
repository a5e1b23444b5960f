// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	module "github.com/kaarlekaarle/commons-web/internal/web/module"
)

// WithResolvedToken returns request context enriched with the resolved backend token.
func WithResolvedToken(r *http.Request, resolve module.ResolveToken) context.Context {
	if r == nil {
		return context.Background()
	}
	ctx := r.Context()
	if resolve == nil {
		return ctx
	}
	token := strings.TrimSpace(resolve(r))
	if token == "" {
		return ctx
	}
	return commons.WithToken(ctx, token)
}
