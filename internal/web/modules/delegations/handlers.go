package delegations

import (
	"net/http"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/flash"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
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

	info, err := h.service.delegationState(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	// The label list only feeds the scope dropdown; the page works without it.
	labels, err := h.service.listLabels(ctx)
	if err != nil {
		labels = nil
	}

	view := h.pageView(info, labels, loc)
	header := &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "web.delegations.title"),
		Subtitle: webtemplates.T(loc, "web.delegations.subtitle"),
	}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.DelegationsFragment(view, loc))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	input := commons.DelegationInput{
		ToUserID: r.PostFormValue("to_user_id"),
		LabelID:  r.PostFormValue("label_id"),
	}
	if _, err := h.service.createDelegation(ctx, input); err != nil {
		h.writeFormError(w, r, ctx, err, loc)
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("web.delegations.notice_created"))
	httpx.WriteRedirect(w, r, routepath.AppDelegations)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndToken(r)

	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.deleteDelegation(ctx, r.PostFormValue("label_id")); err != nil {
		h.WriteError(w, r, err)
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("web.delegations.notice_revoked"))
	httpx.WriteRedirect(w, r, routepath.AppDelegations)
}

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	users, err := h.service.searchDelegates(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.DelegationSearchResults(userOptions(users), loc))
}
