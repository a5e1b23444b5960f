package compass

import (
	"context"
	"net/http"
	"strings"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/retry"
)

// CompassGateway is the narrow backend surface this module depends on.
type CompassGateway interface {
	ListPolls(ctx context.Context, input commons.ListPollsInput) ([]commons.Poll, error)
	GetPoll(ctx context.Context, pollID string) (commons.Poll, error)
	GetResults(ctx context.Context, pollID string) (commons.PollResults, error)
}

type service struct {
	gateway CompassGateway
	sleeper retry.Sleeper
	retries int
}

func newService(gateway CompassGateway) service {
	return newServiceWithSleeper(gateway, retry.TimerSleeper{})
}

func newServiceWithSleeper(gateway CompassGateway, sleeper retry.Sleeper) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, sleeper: sleeper, retries: retry.DefaultRetries}
}

// listPrinciples loads the level-a polls that make up the community compass.
// The compass is the app's landing surface, so transient backend failures are
// retried with backoff before the page gives up.
func (s service) listPrinciples(ctx context.Context) ([]commons.Poll, error) {
	var principles []commons.Poll
	var permanent error
	err := retry.Do(ctx, s.retries, s.sleeper, func(ctx context.Context) error {
		items, err := s.gateway.ListPolls(ctx, commons.ListPollsInput{DecisionType: commons.DecisionLevelA})
		if err != nil {
			if !retryable(err) {
				permanent = err
				return nil
			}
			return err
		}
		principles = items
		return nil
	})
	if permanent != nil {
		return nil, permanent
	}
	if err != nil {
		return nil, err
	}
	if principles == nil {
		principles = []commons.Poll{}
	}
	return principles, nil
}

func (s service) getPrinciple(ctx context.Context, pollID string) (commons.Poll, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return commons.Poll{}, apperrors.E(apperrors.KindNotFound, "principle id is required")
	}
	poll, err := s.gateway.GetPoll(ctx, pollID)
	if err != nil {
		return commons.Poll{}, err
	}
	if poll.DecisionType != commons.DecisionLevelA {
		return commons.Poll{}, apperrors.E(apperrors.KindNotFound, "poll is not a principle")
	}
	return poll, nil
}

func (s service) getAlignment(ctx context.Context, pollID string) (commons.PollResults, error) {
	pollID = strings.TrimSpace(pollID)
	if pollID == "" {
		return commons.PollResults{}, apperrors.E(apperrors.KindNotFound, "principle id is required")
	}
	return s.gateway.GetResults(ctx, pollID)
}

// retryable reports whether a backend failure is worth another attempt.
// Client-side mistakes (bad input, missing auth, not found) never are.
func retryable(err error) bool {
	return apperrors.HTTPStatus(err) >= http.StatusInternalServerError
}
