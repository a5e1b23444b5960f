package compass

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// restGateway adapts the backend API client to CompassGateway.
type restGateway struct {
	api commons.API
}

// NewRESTGateway builds a compass gateway over the backend client. A nil
// client yields the unavailable gateway.
func NewRESTGateway(api commons.API) CompassGateway {
	if api == nil {
		return unavailableGateway{}
	}
	return restGateway{api: api}
}

func (g restGateway) ListPolls(ctx context.Context, input commons.ListPollsInput) ([]commons.Poll, error) {
	polls, err := g.api.ListPolls(ctx, input)
	if err != nil {
		return nil, apperrors.FromAPI(err)
	}
	return polls, nil
}

func (g restGateway) GetPoll(ctx context.Context, pollID string) (commons.Poll, error) {
	poll, err := g.api.GetPoll(ctx, pollID)
	if err != nil {
		return commons.Poll{}, apperrors.FromAPI(err)
	}
	return poll, nil
}

func (g restGateway) GetResults(ctx context.Context, pollID string) (commons.PollResults, error) {
	results, err := g.api.GetResults(ctx, pollID)
	if err != nil {
		return commons.PollResults{}, apperrors.FromAPI(err)
	}
	return results, nil
}
