package proposals

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

type unavailableGateway struct{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}

func (unavailableGateway) ListPolls(context.Context, commons.ListPollsInput) ([]commons.Poll, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) GetPoll(context.Context, string) (commons.Poll, error) {
	return commons.Poll{}, unavailableErr()
}

func (unavailableGateway) CreatePoll(context.Context, commons.CreatePollInput) (commons.Poll, error) {
	return commons.Poll{}, unavailableErr()
}

func (unavailableGateway) ListOptions(context.Context, string) ([]commons.PollOption, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) CastVote(context.Context, string, string) (commons.Vote, error) {
	return commons.Vote{}, unavailableErr()
}

func (unavailableGateway) GetResults(context.Context, string) (commons.PollResults, error) {
	return commons.PollResults{}, unavailableErr()
}

func (unavailableGateway) ListComments(context.Context, string) ([]commons.Comment, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) CreateComment(context.Context, string, string) (commons.Comment, error) {
	return commons.Comment{}, unavailableErr()
}

func (unavailableGateway) DeleteComment(context.Context, string) error {
	return unavailableErr()
}

func (unavailableGateway) ReactToComment(context.Context, string, string) (commons.Comment, error) {
	return commons.Comment{}, unavailableErr()
}

func (unavailableGateway) ListLabels(context.Context) ([]commons.Label, error) {
	return nil, unavailableErr()
}
