package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LabelChipView renders one topic label chip.
type LabelChipView struct {
	Name string
	URL  string
}

// PollCardView is the shared list-card shape for proposals and principles.
type PollCardView struct {
	URL          string
	Title        string
	Summary      string
	TypeLabel    string
	TypeClass    string
	CreatedLabel string
	Labels       []LabelChipView
}

// PollCard renders one poll summary card.
func PollCard(card PollCardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writef(w, `<article class="poll-card %s">`, esc(card.TypeClass)); err != nil {
			return err
		}
		if card.TypeLabel != "" {
			if err := writef(w, `<span class="poll-card-type">%s</span>`, esc(card.TypeLabel)); err != nil {
				return err
			}
		}
		if err := writef(w, `<h3><a href="%s">%s</a></h3>`, esc(card.URL), esc(card.Title)); err != nil {
			return err
		}
		if card.Summary != "" {
			if err := writef(w, `<p class="poll-card-summary">%s</p>`, esc(card.Summary)); err != nil {
				return err
			}
		}
		if err := writeLabelChips(w, card.Labels); err != nil {
			return err
		}
		if card.CreatedLabel != "" {
			if err := writef(w, `<time class="poll-card-created">%s</time>`, esc(card.CreatedLabel)); err != nil {
				return err
			}
		}
		return writef(w, `</article>`)
	})
}

// PollCardList renders a card list with an empty state fallback.
func PollCardList(listID string, cards []PollCardView, emptyMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(cards) == 0 {
			if err := writef(w, `<div id="%s" class="poll-card-list">`, esc(listID)); err != nil {
				return err
			}
			if err := EmptyState(emptyMessage).Render(ctx, w); err != nil {
				return err
			}
			return writef(w, `</div>`)
		}
		if err := writef(w, `<div id="%s" class="poll-card-list">`, esc(listID)); err != nil {
			return err
		}
		for _, card := range cards {
			if err := PollCard(card).Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, `</div>`)
	})
}

// EmptyState renders a neutral empty-list message.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w, `<p class="empty-state">%s</p>`, esc(message))
	})
}

// SectionError renders a failed optional section with an in-place retry control.
func SectionError(sectionID string, message string, retryURL string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w,
			`<div id="%s" class="section-error"><p>%s</p><button type="button" hx-get="%s" hx-target="#%s" hx-swap="outerHTML">%s</button></div>`,
			esc(sectionID), esc(message), esc(retryURL), esc(sectionID), esc(T(loc, "web.common.retry")),
		)
	})
}

// LoadMoreButton renders a self-replacing pagination control. The fragment
// served at url must include the next button (or nothing) after the new items.
func LoadMoreButton(url string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writef(w,
			`<button type="button" class="load-more" hx-get="%s" hx-swap="outerHTML">%s</button>`,
			esc(url), esc(T(loc, "web.common.load_more")),
		)
	})
}

func writeLabelChips(w io.Writer, chips []LabelChipView) error {
	if len(chips) == 0 {
		return nil
	}
	if err := writef(w, `<div class="label-chips">`); err != nil {
		return err
	}
	for _, chip := range chips {
		if err := writef(w, `<a class="label-chip" href="%s">%s</a>`, esc(chip.URL), esc(chip.Name)); err != nil {
			return err
		}
	}
	return writef(w, `</div>`)
}
