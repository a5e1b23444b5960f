package activity

import (
	"net/http"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
	nowFunc func() time.Time
}

func newHandlers(svc service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: svc, nowFunc: time.Now}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	items, err := h.service.recentActivity(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	header := &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "web.activity.title"),
		Subtitle: webtemplates.T(loc, "web.activity.subtitle"),
	}
	fragment := webtemplates.ActivityFragment(h.entryViews(items, loc), loc)
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, fragment)
}

func (h handlers) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

func (h handlers) entryViews(items []commons.ActivityItem, loc webtemplates.Localizer) []webtemplates.ActivityEntryView {
	if len(items) == 0 {
		return nil
	}
	entries := make([]webtemplates.ActivityEntryView, 0, len(items))
	for _, item := range items {
		entry := webtemplates.ActivityEntryView{
			Actor:       item.Actor.Username,
			ActionLabel: actionLabel(item.Kind, loc),
			TargetTitle: item.PollTitle,
		}
		if pollID := strings.TrimSpace(item.PollID); pollID != "" {
			entry.TargetURL = routepath.AppProposal(pollID)
		}
		if !item.CreatedAt.IsZero() {
			entry.CreatedLabel = webtemplates.RelativeTimeLabel(item.CreatedAt, h.now(), loc)
		}
		entries = append(entries, entry)
	}
	return entries
}

// actionLabel maps a feed kind to display text, falling back to the raw kind
// for feed types this frontend does not know yet.
func actionLabel(kind string, loc webtemplates.Localizer) string {
	key := "web.activity.kind." + strings.TrimSpace(kind)
	label := webtemplates.T(loc, key)
	if label == key {
		return strings.TrimSpace(kind)
	}
	return label
}
