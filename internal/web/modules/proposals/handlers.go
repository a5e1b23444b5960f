package proposals

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/flash"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/httpx"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

// proposalService defines the service operations used by proposal handlers.
type proposalService interface {
	listProposals(ctx context.Context, decisionType commons.DecisionType) ([]commons.Poll, error)
	getProposal(ctx context.Context, pollID string) (commons.Poll, error)
	createProposal(ctx context.Context, input commons.CreatePollInput) (commons.Poll, error)
	listOptions(ctx context.Context, pollID string) ([]commons.PollOption, error)
	castVote(ctx context.Context, pollID, optionID string) (commons.Vote, error)
	getResults(ctx context.Context, pollID string) (commons.PollResults, error)
	listComments(ctx context.Context, pollID string) ([]commons.Comment, error)
	createComment(ctx context.Context, pollID, body string) (commons.Comment, error)
	deleteComment(ctx context.Context, commentID string) error
	reactToComment(ctx context.Context, commentID, reaction string) (commons.Comment, error)
	listLabels(ctx context.Context) ([]commons.Label, error)
}

type handlers struct {
	modulehandler.Base
	service proposalService
	nowFunc func() time.Time
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s, nowFunc: time.Now}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)

	filter := decisionTypeFilter(r)
	items, err := h.service.listProposals(ctx, filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	view := webtemplates.ProposalsPageView{
		Tabs:  proposalTabs(filter, loc),
		Cards: h.pollCardViews(items, loc),
	}
	header := &webtemplates.AppMainHeader{
		Title:       webtemplates.T(loc, "web.proposals.title"),
		ActionLabel: webtemplates.T(loc, "web.proposals.new"),
		ActionURL:   routepath.AppProposalsNew,
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.proposals.title"), http.StatusOK, header, webtemplates.AppMainLayoutOptions{Wide: true}, webtemplates.ProposalsFragment(view, loc))
}

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)

	view := webtemplates.ProposalFormView{Action: routepath.AppProposalsCreate, DecisionType: string(commons.DecisionLevelB)}
	// Label choices are optional form sugar; the form still works without them.
	if labels, err := h.service.listLabels(ctx); err == nil {
		view.Labels = labelOptionViews(labels, nil)
	}
	h.writeForm(w, r, loc, view, http.StatusOK)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)

	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	input := commons.CreatePollInput{
		Title:        strings.TrimSpace(r.PostFormValue("title")),
		Description:  strings.TrimSpace(r.PostFormValue("description")),
		DecisionType: commons.DecisionType(strings.TrimSpace(r.PostFormValue("decision_type"))),
		LabelIDs:     r.PostForm["label_ids"],
	}
	poll, err := h.service.createProposal(ctx, input)
	if err != nil {
		view := webtemplates.ProposalFormView{
			Action:       routepath.AppProposalsCreate,
			Title:        input.Title,
			Description:  input.Description,
			DecisionType: string(input.DecisionType),
			ErrorMessage: h.formErrorMessage(loc, err),
		}
		if labels, labelsErr := h.service.listLabels(ctx); labelsErr == nil {
			view.Labels = labelOptionViews(labels, input.LabelIDs)
		}
		h.writeForm(w, r, loc, view, http.StatusBadRequest)
		return
	}

	flash.Write(w, r, flash.NoticeSuccess("web.proposals.notice_created"))
	httpx.WriteRedirect(w, r, routepath.AppProposal(poll.ID))
}

func (h handlers) handleDetailRoute(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	if pollID == "" {
		h.WriteNotFound(w, r)
		return
	}
	h.handleDetail(w, r, pollID)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request, pollID string) {
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)

	poll, err := h.service.getProposal(ctx, pollID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	options, err := h.service.listOptions(ctx, poll.ID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	view := h.proposalDetailView(poll, options, loc)
	// Results and comments are optional sections: a failure degrades to an
	// in-place retry control instead of failing the whole page.
	if results, resultsErr := h.service.getResults(ctx, poll.ID); resultsErr == nil {
		view.Results = webtemplates.ProposalResultsSection(h.resultsSectionView(results, loc), loc)
	} else {
		view.Results = webtemplates.SectionError(resultsSectionID, webtemplates.T(loc, "web.proposals.results.error"), routepath.AppProposalResults(poll.ID), loc)
	}
	if comments, commentsErr := h.service.listComments(ctx, poll.ID); commentsErr == nil {
		view.Comments = webtemplates.ProposalCommentsSection(h.commentsSectionView(poll.ID, comments, r, loc), loc)
	} else {
		view.Comments = webtemplates.SectionError(commentsSectionID, webtemplates.T(loc, "web.proposals.comments.error"), routepath.AppProposalComments(poll.ID), loc)
	}

	header := &webtemplates.AppMainHeader{Title: poll.Title}
	h.WritePage(w, r, poll.Title, http.StatusOK, header, webtemplates.AppMainLayoutOptions{}, webtemplates.ProposalDetailFragment(view, loc))
}

func (h handlers) handleVote(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	if pollID == "" {
		h.WriteNotFound(w, r)
		return
	}
	ctx, _ := h.RequestContextAndToken(r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.castVote(ctx, pollID, r.PostFormValue("option_id")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("web.proposals.notice_voted"))
	httpx.WriteRedirect(w, r, routepath.AppProposal(pollID))
}

func (h handlers) handleResultsFragment(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	if pollID == "" {
		h.WriteNotFound(w, r)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)
	results, err := h.service.getResults(ctx, pollID)
	if err != nil {
		h.WriteFragment(w, r, http.StatusOK, webtemplates.SectionError(resultsSectionID, webtemplates.T(loc, "web.proposals.results.error"), routepath.AppProposalResults(pollID), loc))
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ProposalResultsSection(h.resultsSectionView(results, loc), loc))
}

func (h handlers) handleCommentsFragment(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	if pollID == "" {
		h.WriteNotFound(w, r)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	ctx, _ := h.RequestContextAndToken(r)
	comments, err := h.service.listComments(ctx, pollID)
	if err != nil {
		h.WriteFragment(w, r, http.StatusOK, webtemplates.SectionError(commentsSectionID, webtemplates.T(loc, "web.proposals.comments.error"), routepath.AppProposalComments(pollID), loc))
		return
	}
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ProposalCommentsSection(h.commentsSectionView(pollID, comments, r, loc), loc))
}

func (h handlers) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	if pollID == "" {
		h.WriteNotFound(w, r)
		return
	}
	ctx, _ := h.RequestContextAndToken(r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.createComment(ctx, pollID, r.PostFormValue("body")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.AppProposal(pollID))
}

func (h handlers) handleCommentDelete(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	commentID := strings.TrimSpace(r.PathValue("commentID"))
	if pollID == "" || commentID == "" {
		h.WriteNotFound(w, r)
		return
	}
	ctx, _ := h.RequestContextAndToken(r)
	if err := h.service.deleteComment(ctx, commentID); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.AppProposal(pollID))
}

func (h handlers) handleCommentReact(w http.ResponseWriter, r *http.Request) {
	pollID := strings.TrimSpace(r.PathValue("pollID"))
	commentID := strings.TrimSpace(r.PathValue("commentID"))
	if pollID == "" || commentID == "" {
		h.WriteNotFound(w, r)
		return
	}
	ctx, _ := h.RequestContextAndToken(r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.reactToComment(ctx, commentID, r.PostFormValue("reaction")); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.AppProposal(pollID))
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, view webtemplates.ProposalFormView, statusCode int) {
	header := &webtemplates.AppMainHeader{Title: webtemplates.T(loc, "web.proposals.new")}
	h.WritePage(w, r, webtemplates.T(loc, "web.proposals.new"), statusCode, header, webtemplates.AppMainLayoutOptions{}, webtemplates.ProposalFormFragment(view, loc))
}

func decisionTypeFilter(r *http.Request) commons.DecisionType {
	if r == nil {
		return ""
	}
	switch strings.TrimSpace(r.URL.Query().Get("type")) {
	case string(commons.DecisionLevelA):
		return commons.DecisionLevelA
	case string(commons.DecisionLevelB):
		return commons.DecisionLevelB
	case string(commons.DecisionLevelC):
		return commons.DecisionLevelC
	default:
		return ""
	}
}

func proposalTabs(active commons.DecisionType, loc webtemplates.Localizer) []webtemplates.ProposalsTabView {
	return []webtemplates.ProposalsTabView{
		{Label: webtemplates.T(loc, "web.proposals.tab.all"), URL: routepath.AppProposals, Active: active == ""},
		{Label: webtemplates.T(loc, "web.proposals.tab.actions"), URL: routepath.AppProposals + "?type=" + string(commons.DecisionLevelB), Active: active == commons.DecisionLevelB},
		{Label: webtemplates.T(loc, "web.proposals.tab.problems"), URL: routepath.AppProposals + "?type=" + string(commons.DecisionLevelC), Active: active == commons.DecisionLevelC},
	}
}

func labelOptionViews(labels []commons.Label, checkedIDs []string) []webtemplates.ProposalLabelOptionView {
	if len(labels) == 0 {
		return nil
	}
	checked := make(map[string]bool, len(checkedIDs))
	for _, id := range checkedIDs {
		checked[strings.TrimSpace(id)] = true
	}
	views := make([]webtemplates.ProposalLabelOptionView, 0, len(labels))
	for _, label := range labels {
		views = append(views, webtemplates.ProposalLabelOptionView{ID: label.ID, Name: label.Name, Checked: checked[label.ID]})
	}
	return views
}
