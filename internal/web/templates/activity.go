package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ActivityEntryView backs one feed entry.
type ActivityEntryView struct {
	Actor        string
	ActionLabel  string
	TargetTitle  string
	TargetURL    string
	CreatedLabel string
}

// ActivityFragment renders the recent activity feed.
func ActivityFragment(entries []ActivityEntryView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(entries) == 0 {
			return writef(w, `<p class="empty-state">%s</p>`, esc(T(loc, "web.activity.empty")))
		}
		if err := writef(w, `<ol class="activity-feed">`); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := writef(w, `<li class="activity-entry"><span class="activity-actor">%s</span> %s`,
				esc(entry.Actor), esc(entry.ActionLabel)); err != nil {
				return err
			}
			if entry.TargetTitle != "" {
				if entry.TargetURL != "" {
					if err := writef(w, ` <a href="%s">%s</a>`, esc(entry.TargetURL), esc(entry.TargetTitle)); err != nil {
						return err
					}
				} else if err := writef(w, ` <span class="activity-target">%s</span>`, esc(entry.TargetTitle)); err != nil {
					return err
				}
			}
			if entry.CreatedLabel != "" {
				if err := writef(w, ` <time class="activity-time">%s</time>`, esc(entry.CreatedLabel)); err != nil {
					return err
				}
			}
			if err := writef(w, `</li>`); err != nil {
				return err
			}
		}
		return writef(w, `</ol>`)
	})
}
