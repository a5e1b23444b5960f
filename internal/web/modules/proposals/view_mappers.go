package proposals

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/weberror"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	webtemplates "github.com/kaarlekaarle/commons-web/internal/web/templates"
)

const (
	resultsSectionID  = "proposal-results"
	commentsSectionID = "proposal-comments"

	// summaryLimit caps the card excerpt length in runes.
	summaryLimit = 160
)

// summarize trims a description into a card-sized excerpt without splitting
// a multibyte rune.
func summarize(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text
	}
	return strings.TrimSpace(string(runes[:summaryLimit])) + "…"
}

// now returns the current time using the injected nowFunc, defaulting to
// time.Now if the handler was not constructed with newHandlers.
func (h handlers) now() time.Time {
	if h.nowFunc != nil {
		return h.nowFunc()
	}
	return time.Now()
}

func (h handlers) pollCardViews(items []commons.Poll, loc webtemplates.Localizer) []webtemplates.PollCardView {
	if len(items) == 0 {
		return nil
	}
	cards := make([]webtemplates.PollCardView, 0, len(items))
	for _, item := range items {
		itemID := strings.TrimSpace(item.ID)
		if itemID == "" {
			continue
		}
		cards = append(cards, webtemplates.PollCardView{
			URL:          routepath.AppProposal(itemID),
			Title:        item.Title,
			Summary:      summarize(item.Description),
			TypeLabel:    DecisionTypeLabel(item.DecisionType, loc),
			TypeClass:    DecisionTypeClass(item.DecisionType),
			CreatedLabel: webtemplates.RelativeTimeLabel(item.CreatedAt, h.now(), loc),
			Labels:       LabelChipViews(item.Labels),
		})
	}
	return cards
}

func (h handlers) proposalDetailView(poll commons.Poll, options []commons.PollOption, loc webtemplates.Localizer) webtemplates.ProposalDetailView {
	view := webtemplates.ProposalDetailView{
		ID:           poll.ID,
		Title:        poll.Title,
		Description:  poll.Description,
		TypeLabel:    DecisionTypeLabel(poll.DecisionType, loc),
		TypeClass:    DecisionTypeClass(poll.DecisionType),
		AuthorName:   poll.CreatedBy.Username,
		CreatedLabel: webtemplates.RelativeTimeLabel(poll.CreatedAt, h.now(), loc),
		Labels:       LabelChipViews(poll.Labels),
	}
	if len(options) > 0 {
		vote := webtemplates.ProposalVoteView{
			FormAction: routepath.AppProposalVote(poll.ID),
			HasVoted:   strings.TrimSpace(poll.YourVoteStatus) == "voted",
		}
		for _, option := range options {
			vote.Options = append(vote.Options, webtemplates.OptionView{ID: option.ID, Text: option.Text})
		}
		view.Vote = &vote
	}
	return view
}

func (h handlers) resultsSectionView(results commons.PollResults, loc webtemplates.Localizer) webtemplates.ResultsSectionView {
	view := webtemplates.ResultsSectionView{
		SectionID:  resultsSectionID,
		TotalLabel: webtemplates.T(loc, "web.proposals.results.total", results.TotalVotes),
	}
	for _, option := range results.Options {
		percent := int(option.Percent + 0.5)
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		view.Rows = append(view.Rows, webtemplates.ResultRowView{
			Text:       option.Text,
			CountLabel: fmt.Sprintf("%d", option.Votes),
			Percent:    percent,
			Mine:       option.OptionID != "" && option.OptionID == results.MyOptionID,
		})
	}
	return view
}

func (h handlers) commentsSectionView(pollID string, comments []commons.Comment, r *http.Request, loc webtemplates.Localizer) webtemplates.CommentsSectionView {
	viewerName := h.ResolveRequestViewer(r).Username
	view := webtemplates.CommentsSectionView{
		SectionID:  commentsSectionID,
		FormAction: routepath.AppProposalComments(pollID),
	}
	for _, comment := range comments {
		commentID := strings.TrimSpace(comment.ID)
		if commentID == "" {
			continue
		}
		view.Comments = append(view.Comments, webtemplates.CommentView{
			ID:           commentID,
			Author:       comment.User.Username,
			Body:         comment.Body,
			CreatedLabel: webtemplates.RelativeTimeLabel(comment.CreatedAt, h.now(), loc),
			UpCount:      comment.UpCount,
			DownCount:    comment.DownCount,
			MyReaction:   comment.MyReaction,
			CanDelete:    viewerName != "" && viewerName == comment.User.Username,
			DeleteURL:    routepath.AppProposalCommentDelete(pollID, commentID),
			ReactURL:     routepath.AppProposalCommentReact(pollID, commentID),
		})
	}
	return view
}

func (h handlers) formErrorMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	return weberror.PublicMessage(loc, err)
}

// DecisionTypeLabel returns the localized display name for a decision type.
func DecisionTypeLabel(decisionType commons.DecisionType, loc webtemplates.Localizer) string {
	switch decisionType {
	case commons.DecisionLevelA:
		return webtemplates.T(loc, "web.proposals.type.principle")
	case commons.DecisionLevelB:
		return webtemplates.T(loc, "web.proposals.type.action")
	case commons.DecisionLevelC:
		return webtemplates.T(loc, "web.proposals.type.problem")
	default:
		return ""
	}
}

// DecisionTypeClass returns the CSS class for a decision type.
func DecisionTypeClass(decisionType commons.DecisionType) string {
	switch decisionType {
	case commons.DecisionLevelA:
		return "type-principle"
	case commons.DecisionLevelB:
		return "type-action"
	case commons.DecisionLevelC:
		return "type-problem"
	default:
		return ""
	}
}

// LabelChipViews maps backend labels to topic chip views.
func LabelChipViews(labels []commons.Label) []webtemplates.LabelChipView {
	if len(labels) == 0 {
		return nil
	}
	chips := make([]webtemplates.LabelChipView, 0, len(labels))
	for _, label := range labels {
		slug := strings.TrimSpace(label.Slug)
		if slug == "" {
			continue
		}
		chips = append(chips, webtemplates.LabelChipView{Name: label.Name, URL: routepath.AppTopic(slug)})
	}
	return chips
}
