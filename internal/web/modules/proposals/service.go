package proposals

import (
	"context"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// ProposalGateway loads and mutates proposals for web handlers.
type ProposalGateway interface {
	ListPolls(ctx context.Context, input commons.ListPollsInput) ([]commons.Poll, error)
	GetPoll(ctx context.Context, pollID string) (commons.Poll, error)
	CreatePoll(ctx context.Context, input commons.CreatePollInput) (commons.Poll, error)
	ListOptions(ctx context.Context, pollID string) ([]commons.PollOption, error)
	CastVote(ctx context.Context, pollID, optionID string) (commons.Vote, error)
	GetResults(ctx context.Context, pollID string) (commons.PollResults, error)
	ListComments(ctx context.Context, pollID string) ([]commons.Comment, error)
	CreateComment(ctx context.Context, pollID, body string) (commons.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	ReactToComment(ctx context.Context, commentID, reaction string) (commons.Comment, error)
	ListLabels(ctx context.Context) ([]commons.Label, error)
}

type service struct {
	gateway ProposalGateway
}

func newService(gateway ProposalGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listProposals(ctx context.Context, decisionType commons.DecisionType) ([]commons.Poll, error) {
	items, err := s.gateway.ListPolls(ctx, commons.ListPollsInput{DecisionType: decisionType})
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []commons.Poll{}, nil
	}
	return items, nil
}

func (s service) getProposal(ctx context.Context, pollID string) (commons.Poll, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return commons.Poll{}, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	poll, err := s.gateway.GetPoll(ctx, pollID)
	if err != nil {
		return commons.Poll{}, err
	}
	if strings.TrimSpace(poll.ID) == "" {
		return commons.Poll{}, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	return poll, nil
}

func (s service) createProposal(ctx context.Context, input commons.CreatePollInput) (commons.Poll, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" {
		return commons.Poll{}, apperrors.EK(apperrors.KindInvalidInput, "web.proposals.error.title_required", "title is required")
	}
	switch input.DecisionType {
	case commons.DecisionLevelA, commons.DecisionLevelB, commons.DecisionLevelC:
	default:
		return commons.Poll{}, apperrors.EK(apperrors.KindInvalidInput, "web.proposals.error.decision_type_required", "decision type is required")
	}
	return s.gateway.CreatePoll(ctx, input)
}

func (s service) listOptions(ctx context.Context, pollID string) ([]commons.PollOption, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return nil, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	options, err := s.gateway.ListOptions(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if options == nil {
		return []commons.PollOption{}, nil
	}
	return options, nil
}

func (s service) castVote(ctx context.Context, pollID, optionID string) (commons.Vote, error) {
	pollID = strings.TrimSpace(pollID)
	optionID = strings.TrimSpace(optionID)
	if pollID == "" {
		return commons.Vote{}, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	if optionID == "" {
		return commons.Vote{}, apperrors.EK(apperrors.KindInvalidInput, "web.proposals.error.option_required", "an option is required")
	}
	return s.gateway.CastVote(ctx, pollID, optionID)
}

func (s service) getResults(ctx context.Context, pollID string) (commons.PollResults, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return commons.PollResults{}, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	return s.gateway.GetResults(ctx, pollID)
}

func (s service) listComments(ctx context.Context, pollID string) ([]commons.Comment, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return nil, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	comments, err := s.gateway.ListComments(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		return []commons.Comment{}, nil
	}
	return comments, nil
}

func (s service) createComment(ctx context.Context, pollID, body string) (commons.Comment, error) {
	pollID = strings.TrimSpace(pollID)
	body = strings.TrimSpace(body)
	if pollID == "" {
		return commons.Comment{}, apperrors.E(apperrors.KindNotFound, "proposal not found")
	}
	if body == "" {
		return commons.Comment{}, apperrors.EK(apperrors.KindInvalidInput, "web.proposals.error.comment_required", "comment body is required")
	}
	return s.gateway.CreateComment(ctx, pollID, body)
}

func (s service) deleteComment(ctx context.Context, commentID string) error {
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return apperrors.E(apperrors.KindNotFound, "comment not found")
	}
	return s.gateway.DeleteComment(ctx, commentID)
}

func (s service) reactToComment(ctx context.Context, commentID, reaction string) (commons.Comment, error) {
	commentID = strings.TrimSpace(commentID)
	reaction = strings.ToLower(strings.TrimSpace(reaction))
	if commentID == "" {
		return commons.Comment{}, apperrors.E(apperrors.KindNotFound, "comment not found")
	}
	if reaction != "up" && reaction != "down" {
		return commons.Comment{}, apperrors.EK(apperrors.KindInvalidInput, "web.proposals.error.reaction_invalid", "reaction must be up or down")
	}
	return s.gateway.ReactToComment(ctx, commentID, reaction)
}

func (s service) listLabels(ctx context.Context) ([]commons.Label, error) {
	labels, err := s.gateway.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		return []commons.Label{}, nil
	}
	return labels, nil
}
