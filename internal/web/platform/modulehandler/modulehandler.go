// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules (those mounted under /app/) share common handler infrastructure
// for token resolution, localization, page rendering, and error handling. This package
// extracts that shared scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	webi18n "github.com/kaarlekaarle/commons-web/internal/web/i18n"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/pagerender"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/webctx"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

// Base carries the shared request-scoped resolvers used by protected module handlers.
// Embed this in module handler structs to get standard token resolution, localization,
// page rendering, and error writing without duplicating boilerplate.
type Base struct {
	resolveToken    module.ResolveToken
	resolveLanguage module.ResolveLanguage
	resolveViewer   module.ResolveViewer
}

// NewBase builds a handler base from explicit resolver functions.
func NewBase(resolveToken module.ResolveToken, resolveLanguage module.ResolveLanguage, resolveViewer module.ResolveViewer) Base {
	return Base{
		resolveToken:    resolveToken,
		resolveLanguage: resolveLanguage,
		resolveViewer:   resolveViewer,
	}
}

// NewTestBase builds a handler base with no-op resolvers suitable for tests
// that do not exercise token resolution, localization, or viewer state.
func NewTestBase() Base {
	return Base{
		resolveToken:    func(*http.Request) string { return "" },
		resolveLanguage: func(*http.Request) string { return "" },
		resolveViewer:   func(*http.Request) module.Viewer { return module.Viewer{} },
	}
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.resolveViewer == nil {
		return module.Viewer{}
	}
	return b.resolveViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, &b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, &b)
}

// RequestToken extracts the backend bearer token from the request.
func (b Base) RequestToken(r *http.Request) string {
	if r == nil || b.resolveToken == nil {
		return ""
	}
	return strings.TrimSpace(b.resolveToken(r))
}

// RequestContextAndToken returns a context enriched with the bearer token (for
// backend API calls) and the raw token string.
func (b Base) RequestContextAndToken(r *http.Request) (context.Context, string) {
	ctx := webctx.WithResolvedToken(r, b.resolveToken)
	return ctx, b.RequestToken(r)
}

// RequestLocaleTag returns the resolved language tag for the request.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTagWith(r, b.resolveLanguage)
}

// WritePage renders a full module page (HTMX-aware) with the given title, header,
// layout, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.AppMainHeader,
	layout webtemplates.AppMainLayoutOptions,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, &b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Layout:     layout,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteFragment renders a bare fragment response for HTMX section swaps.
func (b Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, fragment); err != nil {
		b.WriteError(w, r, err)
	}
}
