package public

import (
	"net/http"
	"strings"

	webi18n "github.com/kaarlekaarle/commons-web/internal/web/i18n"
	"github.com/kaarlekaarle/commons-web/internal/web/module"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/pagerender"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

type handlers struct {
	service  service
	signedIn module.ResolveSignedIn
}

func newHandlers(svc service, signedIn module.ResolveSignedIn) handlers {
	return handlers{service: svc, signedIn: signedIn}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	// Signed-in members skip the marketing page.
	if h.signedIn != nil && h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.AppProposals)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	view := webtemplates.LandingView{
		LoginURL:    routepath.Login,
		RegisterURL: routepath.Register,
	}
	title := webtemplates.T(loc, "web.landing.title")
	pagerender.WritePublicPage(w, r, title, webtemplates.T(loc, "web.landing.lede"), lang, http.StatusOK, webtemplates.LandingFragment(view, loc))
}

func (h handlers) handleContent(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	slug := strings.Trim(r.URL.Path, "/")

	page, err := h.service.contentPage(r.Context(), slug)
	if err != nil {
		statusCode := apperrors.HTTPStatus(err)
		message := weberror.PublicMessage(loc, err)
		body := webtemplates.ContentPageView{
			Title:    webtemplates.T(loc, "web.content.error.title"),
			Sections: []webtemplates.ContentSectionView{{Body: message}},
		}
		pagerender.WritePublicPage(w, r, body.Title, "", lang, statusCode, webtemplates.ContentFragment(body))
		return
	}

	view := webtemplates.ContentPageView{Title: page.Title}
	for _, section := range page.Sections {
		view.Sections = append(view.Sections, webtemplates.ContentSectionView{
			Heading: section.Heading,
			Body:    section.Body,
		})
	}
	pagerender.WritePublicPage(w, r, view.Title, "", lang, http.StatusOK, webtemplates.ContentFragment(view))
}
