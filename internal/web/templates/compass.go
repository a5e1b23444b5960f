package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CompassPageView backs the principles overview.
type CompassPageView struct {
	Cards []PollCardView
}

// CompassDetailView backs one principle page.
type CompassDetailView struct {
	Title        string
	Description  string
	Author       string
	CreatedLabel string
	Labels       []LabelChipView
	ProposalURL  string
	Alignment    templ.Component
}

// CompassFragment renders the principles overview.
func CompassFragment(view CompassPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<p class="compass-intro">%s</p>`, esc(T(loc, "web.compass.intro"))); err != nil {
			return err
		}
		return PollCardList("compass-list", view.Cards, T(loc, "web.compass.empty")).Render(ctx, w)
	})
}

// CompassDetailFragment renders one principle with its community alignment.
func CompassDetailFragment(view CompassDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<article class="compass-detail"><h2>%s</h2>`, esc(view.Title)); err != nil {
			return err
		}
		if view.Author != "" || view.CreatedLabel != "" {
			if err := writef(w, `<p class="poll-meta">%s · %s</p>`, esc(view.Author), esc(view.CreatedLabel)); err != nil {
				return err
			}
		}
		if err := writeLabelChips(w, view.Labels); err != nil {
			return err
		}
		if view.Description != "" {
			if err := writef(w, `<p class="compass-body">%s</p>`, esc(view.Description)); err != nil {
				return err
			}
		}
		if view.Alignment != nil {
			if err := view.Alignment.Render(ctx, w); err != nil {
				return err
			}
		}
		if view.ProposalURL != "" {
			if err := writef(w, `<p><a class="button-primary" href="%s">%s</a></p>`,
				esc(view.ProposalURL), esc(T(loc, "web.compass.discuss"))); err != nil {
				return err
			}
		}
		return writef(w, `</article>`)
	})
}
