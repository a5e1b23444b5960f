package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LandingView backs the unauthenticated landing page.
type LandingView struct {
	LoginURL    string
	RegisterURL string
}

// ContentSectionView is one heading/body pair of a content page.
type ContentSectionView struct {
	Heading string
	Body    string
}

// ContentPageView backs a static content page.
type ContentPageView struct {
	Title    string
	Sections []ContentSectionView
}

// LandingFragment renders the landing hero.
func LandingFragment(view LandingView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<section class="landing-hero"><h1>%s</h1><p>%s</p>`,
			esc(T(loc, "web.landing.title")), esc(T(loc, "web.landing.lede"))); err != nil {
			return err
		}
		if err := writef(w, `<div class="landing-actions"><a class="button-primary" href="%s">%s</a><a class="button-secondary" href="%s">%s</a></div>`,
			esc(view.RegisterURL), esc(T(loc, "web.landing.cta_register")),
			esc(view.LoginURL), esc(T(loc, "web.landing.cta_login"))); err != nil {
			return err
		}
		return writef(w, `</section>`)
	})
}

// ContentFragment renders a static content page.
func ContentFragment(view ContentPageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<article class="content-page"><h1>%s</h1>`, esc(view.Title)); err != nil {
			return err
		}
		for _, section := range view.Sections {
			if section.Heading != "" {
				if err := writef(w, `<h2>%s</h2>`, esc(section.Heading)); err != nil {
					return err
				}
			}
			if section.Body != "" {
				if err := writef(w, `<p>%s</p>`, esc(section.Body)); err != nil {
					return err
				}
			}
		}
		return writef(w, `</article>`)
	})
}
