package topics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

const itemsRegionID = "topic-region"

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

	labels, err := h.service.listTopics(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	view := webtemplates.TopicsPageView{Topics: topicChips(labels)}
	header := &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "web.topics.title"),
		Subtitle: webtemplates.T(loc, "web.topics.subtitle"),
	}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.TopicsFragment(view, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	ctx, token := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	items, hasMore, err := h.service.topicPage(ctx, slug, 1)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.service.scheduleRefresh(slug, token)

	view := h.itemsView(slug, items, hasMore, 1, loc)
	header := &webtemplates.AppMainHeader{Title: humanizeSlug(slug)}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.TopicItemsFragment(view, loc))
}

func (h handlers) handleItems(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	items, hasMore, err := h.service.topicPage(ctx, slug, page)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.TopicItemsFragment(h.itemsView(slug, items, hasMore, page, loc), loc))
}
