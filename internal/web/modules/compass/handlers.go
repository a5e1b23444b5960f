package compass

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
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

	principles, err := h.service.listPrinciples(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	view := webtemplates.CompassPageView{Cards: h.principleCards(principles, loc)}
	header := &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "web.compass.title"),
		Subtitle: webtemplates.T(loc, "web.compass.subtitle"),
	}
	h.WritePage(w, r, header.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.CompassFragment(view, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollID")
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)

	principle, err := h.service.getPrinciple(ctx, pollID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	// Alignment is decoration; the principle text renders even when the
	// tally backend is down.
	alignment := h.alignmentComponent(ctx, principle.ID, loc)

	view := h.detailView(principle, alignment, loc)
	header := &webtemplates.AppMainHeader{Title: webtemplates.T(loc, "web.compass.title")}
	h.WritePage(w, r, principle.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.CompassDetailFragment(view, loc))
}

func (h handlers) handleAlignmentFragment(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("pollID")
	ctx, _ := h.RequestContextAndToken(r)
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, h.alignmentComponent(ctx, pollID, loc))
}

func (h handlers) alignmentComponent(ctx context.Context, pollID string, loc webtemplates.Localizer) templ.Component {
	results, err := h.service.getAlignment(ctx, pollID)
	if err != nil {
		return webtemplates.SectionError(alignmentSectionID, weberror.PublicMessage(loc, err), routepath.AppCompassAlignment(pollID), loc)
	}
	return webtemplates.ProposalResultsSection(h.alignmentSectionView(results, loc), loc)
}
