package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TopicsPageView backs the topic directory.
type TopicsPageView struct {
	Topics []LabelChipView
}

// TopicItemsView backs the merged poll list for one topic.
type TopicItemsView struct {
	RegionID    string
	Cards       []PollCardView
	LoadMoreURL string
}

// TopicsFragment renders the topic directory.
func TopicsFragment(view TopicsPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(view.Topics) == 0 {
			return writef(w, `<p class="empty-state">%s</p>`, esc(T(loc, "web.topics.empty")))
		}
		if err := writef(w, `<div class="topic-grid">`); err != nil {
			return err
		}
		for _, topic := range view.Topics {
			if err := writef(w, `<a class="topic-card" href="%s">%s</a>`, esc(topic.URL), esc(topic.Name)); err != nil {
				return err
			}
		}
		return writef(w, `</div>`)
	})
}

// TopicItemsFragment renders the poll list region for a topic. The load-more
// control swaps the whole region so each page renders the full merged list.
func TopicItemsFragment(view TopicItemsView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div id="%s">`, esc(view.RegionID)); err != nil {
			return err
		}
		if err := PollCardList("topic-items", view.Cards, T(loc, "web.topics.items_empty")).Render(ctx, w); err != nil {
			return err
		}
		if view.LoadMoreURL != "" {
			if err := writef(w,
				`<button class="load-more" hx-get="%s" hx-target="#%s" hx-swap="outerHTML">%s</button>`,
				esc(view.LoadMoreURL), esc(view.RegionID), esc(T(loc, "web.common.load_more")),
			); err != nil {
				return err
			}
		}
		return writef(w, `</div>`)
	})
}
