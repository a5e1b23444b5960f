package proposals

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to the narrow proposal contract,
// converting transport failures into typed web errors.
type restGateway struct {
	api commons.API
}

// NewRESTGateway wraps a backend API client as a ProposalGateway.
func NewRESTGateway(api commons.API) ProposalGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) ListPolls(ctx context.Context, input commons.ListPollsInput) ([]commons.Poll, error) {
	items, err := g.api.ListPolls(ctx, input)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return items, nil
}

func (g restGateway) GetPoll(ctx context.Context, pollID string) (commons.Poll, error) {
	poll, err := g.api.GetPoll(ctx, pollID)
	if err != nil {
		return commons.Poll{}, apperrors.FromAPI(err)
	}
	return poll, nil
}

func (g restGateway) CreatePoll(ctx context.Context, input commons.CreatePollInput) (commons.Poll, error) {
	poll, err := g.api.CreatePoll(ctx, input)
	if err != nil {
		return commons.Poll{}, apperrors.FromAPI(err)
	}
	return poll, nil
}

func (g restGateway) ListOptions(ctx context.Context, pollID string) ([]commons.PollOption, error) {
	options, err := g.api.ListOptions(ctx, pollID)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return options, nil
}

func (g restGateway) CastVote(ctx context.Context, pollID, optionID string) (commons.Vote, error) {
	vote, err := g.api.CastVote(ctx, pollID, optionID)
	if err != nil {
		return commons.Vote{}, apperrors.FromAPI(err)
	}
	return vote, nil
}

func (g restGateway) GetResults(ctx context.Context, pollID string) (commons.PollResults, error) {
	results, err := g.api.GetResults(ctx, pollID)
	if err != nil {
		return commons.PollResults{}, apperrors.FromAPI(err)
	}
	return results, nil
}

func (g restGateway) ListComments(ctx context.Context, pollID string) ([]commons.Comment, error) {
	comments, err := g.api.ListComments(ctx, pollID)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return comments, nil
}

func (g restGateway) CreateComment(ctx context.Context, pollID, body string) (commons.Comment, error) {
	comment, err := g.api.CreateComment(ctx, pollID, body)
	if err != nil {
		return commons.Comment{}, apperrors.FromAPI(err)
	}
	return comment, nil
}

func (g restGateway) DeleteComment(ctx context.Context, commentID string) error {
	if err := g.api.DeleteComment(ctx, commentID); err != nil {
		return apperrors.FromAPI(err)
	}
	return nil
}

func (g restGateway) ReactToComment(ctx context.Context, commentID, reaction string) (commons.Comment, error) {
	comment, err := g.api.ReactToComment(ctx, commentID, reaction)
	if err != nil {
		return commons.Comment{}, apperrors.FromAPI(err)
	}
	return comment, nil
}

func (g restGateway) ListLabels(ctx context.Context) ([]commons.Label, error) {
	labels, err := g.api.ListLabels(ctx)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return labels, nil
}
