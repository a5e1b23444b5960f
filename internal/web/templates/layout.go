package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	module "github.com/kaarlekaarle/commons-web/internal/web/module"
	routepath "github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func esc(value string) string {
	return templ.EscapeString(value)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// AppLayoutWithMainHeaderAndLayout renders the authenticated app shell around
// the page fragment carried as templ children.
func AppLayoutWithMainHeaderAndLayout(
	title string,
	viewer module.Viewer,
	header *AppMainHeader,
	layout AppMainLayoutOptions,
	toast *AppToast,
	lang string,
	loc Localizer,
) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeDocumentHead(w, title, "", lang, loc); err != nil {
			return err
		}
		if err := writeAppNav(w, viewer, loc); err != nil {
			return err
		}
		if toast != nil {
			if err := writeToast(w, *toast); err != nil {
				return err
			}
		}
		if err := AppMainContentWithLayout(header, layout).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, "</body></html>")
	})
}

// AppMainContentWithLayout renders the swappable main content region. HTMX
// requests receive only this element so partial navigation replaces it in place.
func AppMainContentWithLayout(header *AppMainHeader, layout AppMainLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "app-main"
		if layout.Wide {
			class += " app-main-wide"
		}
		if err := writef(w, `<main id="%s" class="%s">`, esc(layout.contentID()), esc(class)); err != nil {
			return err
		}
		if header != nil {
			if err := writeMainHeader(w, *header); err != nil {
				return err
			}
		}
		children := templ.GetChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, "</main>")
	})
}

// AuthLayout renders the public (unauthenticated) page shell.
func AuthLayout(title string, metaDesc string, lang string, path string, query string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeDocumentHead(w, title, metaDesc, lang, nil); err != nil {
			return err
		}
		if err := writePublicNav(w, path); err != nil {
			return err
		}
		if err := writef(w, `<main class="public-main">`); err != nil {
			return err
		}
		children := templ.GetChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, "</main></body></html>")
	})
}

func writeDocumentHead(w io.Writer, title string, metaDesc string, lang string, loc Localizer) error {
	if lang == "" {
		lang = "en"
	}
	appName := T(loc, "web.app.name")
	if appName == "" || appName == "web.app.name" {
		appName = "The Commons"
	}
	pageTitle := appName
	if title != "" {
		pageTitle = title + " · " + appName
	}
	if err := writef(w,
		`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`,
		esc(lang), esc(pageTitle),
	); err != nil {
		return err
	}
	if metaDesc != "" {
		if err := writef(w, `<meta name="description" content="%s">`, esc(metaDesc)); err != nil {
			return err
		}
	}
	return writef(w,
		`<link rel="stylesheet" href="/static/app.css"><script src="https://unpkg.com/htmx.org@1.9.12" integrity="sha384-ujb1lZYygJmzgSwoxRggbCHcjc0rB2XoQrxeTUQyRjrOnlCoYta87iKBWq3EsdM2" crossorigin="anonymous" defer></script></head><body>`,
	)
}

func writeAppNav(w io.Writer, viewer module.Viewer, loc Localizer) error {
	if err := writef(w,
		`<nav class="app-nav"><a class="app-nav-brand" href="%s">%s</a><div class="app-nav-links">`,
		routepath.AppProposals, esc(T(loc, "web.app.name")),
	); err != nil {
		return err
	}
	links := []struct {
		href string
		key  string
	}{
		{routepath.AppProposals, "web.nav.proposals"},
		{routepath.AppCompass, "web.nav.compass"},
		{routepath.AppTopics, "web.nav.topics"},
		{routepath.AppDelegations, "web.nav.delegations"},
		{routepath.AppActivity, "web.nav.activity"},
	}
	for _, link := range links {
		if err := writef(w, `<a href="%s">%s</a>`, link.href, esc(T(loc, link.key))); err != nil {
			return err
		}
	}
	if err := writef(w, `</div><div class="app-nav-viewer">`); err != nil {
		return err
	}
	if viewer.DisplayName != "" {
		if err := writef(w, `<span class="app-nav-viewer-name">%s</span>`, esc(viewer.DisplayName)); err != nil {
			return err
		}
	}
	return writef(w,
		`<form method="post" action="%s"><button type="submit" class="link-button">%s</button></form></div></nav>`,
		routepath.Logout, esc(T(loc, "web.nav.logout")),
	)
}

func writePublicNav(w io.Writer, currentPath string) error {
	if err := writef(w,
		`<nav class="public-nav"><a class="app-nav-brand" href="%s">The Commons</a><div class="app-nav-links">`,
		routepath.Root,
	); err != nil {
		return err
	}
	links := []struct {
		href  string
		label string
	}{
		{routepath.Principles, "Principles"},
		{routepath.Actions, "Actions"},
		{routepath.Stories, "Stories"},
		{routepath.Login, "Log in"},
		{routepath.Register, "Sign up"},
	}
	for _, link := range links {
		class := ""
		if link.href == currentPath {
			class = ` class="active"`
		}
		if err := writef(w, `<a href="%s"%s>%s</a>`, link.href, class, esc(link.label)); err != nil {
			return err
		}
	}
	return writef(w, `</div></nav>`)
}

func writeMainHeader(w io.Writer, header AppMainHeader) error {
	if err := writef(w, `<header class="app-main-header"><div><h1>%s</h1>`, esc(header.Title)); err != nil {
		return err
	}
	if header.Subtitle != "" {
		if err := writef(w, `<p class="app-main-subtitle">%s</p>`, esc(header.Subtitle)); err != nil {
			return err
		}
	}
	if err := writef(w, `</div>`); err != nil {
		return err
	}
	if header.ActionLabel != "" && header.ActionURL != "" {
		if err := writef(w, `<a class="button-primary" href="%s">%s</a>`, esc(header.ActionURL), esc(header.ActionLabel)); err != nil {
			return err
		}
	}
	return writef(w, `</header>`)
}

func writeToast(w io.Writer, toast AppToast) error {
	kind := toast.Kind
	if kind == "" {
		kind = "info"
	}
	return writef(w, `<div class="app-toast app-toast-%s" role="status">%s</div>`, esc(kind), esc(toast.Message))
}
