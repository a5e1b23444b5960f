package delegations

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

func (h handlers) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

func (h handlers) pageView(info commons.DelegationInfo, labels []commons.Label, loc webtemplates.Localizer) webtemplates.DelegationsPageView {
	view := webtemplates.DelegationsPageView{
		Form: webtemplates.DelegationFormView{
			Action:    routepath.AppDelegationsCreate,
			SearchURL: routepath.AppDelegationsSearch,
		},
	}
	if info.Global != nil {
		row := h.delegationRow(*info.Global, webtemplates.T(loc, "web.delegations.scope.global"), loc)
		view.Global = &row
	}
	for _, delegation := range info.Labels {
		scope := ""
		if delegation.Label != nil {
			scope = delegation.Label.Name
		}
		view.Labels = append(view.Labels, h.delegationRow(delegation, scope, loc))
	}
	for _, hop := range info.Chain {
		view.Chain = append(view.Chain, webtemplates.DelegationChainHopView{
			From: hop.FromUser.Username,
			To:   hop.ToUser.Username,
		})
	}
	for _, label := range labels {
		labelID := strings.TrimSpace(label.ID)
		if labelID == "" {
			continue
		}
		view.Form.LabelOptions = append(view.Form.LabelOptions, webtemplates.DelegationLabelOption{ID: labelID, Name: label.Name})
	}
	return view
}

func (h handlers) delegationRow(delegation commons.Delegation, scope string, loc webtemplates.Localizer) webtemplates.DelegationRowView {
	row := webtemplates.DelegationRowView{
		Name:         delegation.ToUser.Username,
		ScopeLabel:   scope,
		DeleteAction: routepath.AppDelegationsDelete,
	}
	if !delegation.CreatedAt.IsZero() {
		row.CreatedLabel = webtemplates.RelativeTimeLabel(delegation.CreatedAt, h.now(), loc)
	}
	if delegation.Label != nil {
		row.LabelID = delegation.Label.ID
	}
	return row
}

// writeFormError re-renders the delegations page with the submitted form's
// failure surfaced inline.
func (h handlers) writeFormError(w http.ResponseWriter, r *http.Request, ctx context.Context, cause error, loc webtemplates.Localizer) {
	info, err := h.service.delegationState(ctx)
	if err != nil {
		h.WriteError(w, r, cause)
		return
	}
	labels, err := h.service.listLabels(ctx)
	if err != nil {
		labels = nil
	}

	view := h.pageView(info, labels, loc)
	view.Form.ErrorMessage = weberror.PublicMessage(loc, cause)

	statusCode := apperrors.HTTPStatus(cause)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusBadRequest
	}
	header := &webtemplates.AppMainHeader{Title: webtemplates.T(loc, "web.delegations.title")}
	h.WritePage(w, r, header.Title, statusCode, header, webtemplates.AppMainLayoutOptions{}, webtemplates.DelegationsFragment(view, loc))
}

func userOptions(users []commons.User) []webtemplates.UserOptionView {
	if len(users) == 0 {
		return nil
	}
	options := make([]webtemplates.UserOptionView, 0, len(users))
	for _, user := range users {
		userID := strings.TrimSpace(user.ID)
		if userID == "" {
			continue
		}
		options = append(options, webtemplates.UserOptionView{ID: userID, Username: user.Username})
	}
	return options
}
