package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// AppErrorPageTitle returns the localized page title for an app error status.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "web.error.not_found.title")
	}
	return T(loc, "web.error.internal.title")
}

// AppErrorState renders the in-shell error body for 404s and server failures.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		titleKey := "web.error.internal.title"
		bodyKey := "web.error.internal.body"
		if statusCode == http.StatusNotFound {
			titleKey = "web.error.not_found.title"
			bodyKey = "web.error.not_found.body"
		}
		return writef(w,
			`<section id="app-error-state" class="app-error-state"><h2>%s</h2><p>%s</p></section>`,
			esc(T(loc, titleKey)), esc(T(loc, bodyKey)),
		)
	})
}
