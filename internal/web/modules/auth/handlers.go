package auth

import (
	"context"
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	webi18n "github.com/kaarlekaarle/commons-web/internal/web/i18n"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/flash"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/pagerender"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/requestmeta"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/sessioncookie"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

// SessionManager issues and revokes browser sessions after credential exchange.
type SessionManager interface {
	Issue(ctx context.Context, token string, user commons.User) (webstorage.Session, error)
	Revoke(ctx context.Context, sessionID string) error
	Lookup(r *http.Request) (webstorage.Session, bool)
}

type handlers struct {
	service  service
	sessions SessionManager
	policy   requestmeta.SchemePolicy
}

func newHandlers(svc service, sessions SessionManager, policy requestmeta.SchemePolicy) handlers {
	return handlers{service: svc, sessions: sessions, policy: policy}
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	view := webtemplates.AuthFormView{
		Action:   routepath.Login,
		AltLabel: webtemplates.T(loc, "web.auth.login.alt"),
		AltURL:   routepath.Register,
	}
	// A post-registration redirect lands here carrying a flash notice.
	if notice, ok := flash.ReadAndClear(w, r); ok {
		view.Notice = webtemplates.T(loc, notice.Key)
		view.NoticeKind = string(notice.Kind)
	}
	h.writeLogin(w, r, lang, http.StatusOK, view, loc)
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	view := webtemplates.AuthFormView{
		Action:   routepath.Login,
		Username: username,
		AltLabel: webtemplates.T(loc, "web.auth.login.alt"),
		AltURL:   routepath.Register,
	}

	token, err := h.service.login(r.Context(), username, password)
	if err != nil {
		view.ErrorMessage = weberror.PublicMessage(loc, err)
		h.writeLogin(w, r, lang, http.StatusUnauthorized, view, loc)
		return
	}
	session, err := h.sessions.Issue(r.Context(), token.AccessToken, commons.User{Username: username})
	if err != nil {
		view.ErrorMessage = weberror.PublicMessage(loc, err)
		h.writeLogin(w, r, lang, http.StatusInternalServerError, view, loc)
		return
	}
	sessioncookie.WriteWithPolicy(w, r, session.ID, h.policy)
	httpx.WriteRedirect(w, r, routepath.AppProposals)
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	view := webtemplates.AuthFormView{
		Action:   routepath.Register,
		AltLabel: webtemplates.T(loc, "web.auth.register.alt"),
		AltURL:   routepath.Login,
	}
	h.writeRegister(w, r, lang, http.StatusOK, view, loc)
}

func (h handlers) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, nil)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	input := commons.RegisterInput{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.service.register(r.Context(), input)
	if err != nil {
		view := webtemplates.AuthFormView{
			Action:       routepath.Register,
			Username:     input.Username,
			Email:        input.Email,
			ErrorMessage: weberror.PublicMessage(loc, err),
			AltLabel:     webtemplates.T(loc, "web.auth.register.alt"),
			AltURL:       routepath.Login,
		}
		h.writeRegister(w, r, lang, http.StatusBadRequest, view, loc)
		return
	}

	// New accounts are signed in immediately. If the credential exchange
	// fails, the account still exists; the login page tells the visitor to
	// sign in, while the signed-in landing page gets a welcome notice.
	token, err := h.service.login(r.Context(), input.Username, input.Password)
	if err != nil {
		flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_registered"), h.policy)
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	session, err := h.sessions.Issue(r.Context(), token.AccessToken, user)
	if err != nil {
		flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_registered"), h.policy)
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_welcome"), h.policy)
	sessioncookie.WriteWithPolicy(w, r, session.ID, h.policy)
	httpx.WriteRedirect(w, r, routepath.AppProposals)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if h.sessions != nil {
		if session, ok := h.sessions.Lookup(r); ok {
			_ = h.sessions.Revoke(r.Context(), session.ID)
		}
	}
	sessioncookie.ClearWithPolicy(w, r, h.policy)
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, lang string, statusCode int, view webtemplates.AuthFormView, loc webtemplates.Localizer) {
	title := webtemplates.T(loc, "web.auth.login.title")
	pagerender.WritePublicPage(w, r, title, webtemplates.T(loc, "web.auth.login.meta"), lang, statusCode, webtemplates.LoginFragment(view, loc))
}

func (h handlers) writeRegister(w http.ResponseWriter, r *http.Request, lang string, statusCode int, view webtemplates.AuthFormView, loc webtemplates.Localizer) {
	title := webtemplates.T(loc, "web.auth.register.title")
	pagerender.WritePublicPage(w, r, title, webtemplates.T(loc, "web.auth.register.meta"), lang, statusCode, webtemplates.RegisterFragment(view, loc))
}
