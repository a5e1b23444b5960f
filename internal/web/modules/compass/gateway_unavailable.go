package compass

import (
	"context"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
)

// unavailableGateway serves degraded mode when no backend client is configured.
type unavailableGateway struct{}

var _ CompassGateway = unavailableGateway{}

func unavailableErr() error {
	return apperrors.E(apperrors.KindUnavailable, "backend is not configured")
}

func (unavailableGateway) ListPolls(context.Context, commons.ListPollsInput) ([]commons.Poll, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) GetPoll(context.Context, string) (commons.Poll, error) {
	return commons.Poll{}, unavailableErr()
}

func (unavailableGateway) GetResults(context.Context, string) (commons.PollResults, error) {
	return commons.PollResults{}, unavailableErr()
}
