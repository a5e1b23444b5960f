package compass

import (
	"context"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

// fakeGateway implements CompassGateway for tests. listErrs is consumed one
// error per ListPolls call, so transient-failure sequences can be scripted.
type fakeGateway struct {
	listErrs   []error
	listCalls  int
	polls      []commons.Poll
	getErr     error
	poll       commons.Poll
	resultsErr error
	results    commons.PollResults
}

var _ CompassGateway = (*fakeGateway)(nil)

func samplePrinciple() commons.Poll {
	return commons.Poll{
		ID:           "principle-1",
		Title:        "Decisions belong to those they affect",
		Description:  "Whoever lives with the outcome has a voice in the choice.",
		DecisionType: commons.DecisionLevelA,
		CreatedBy:    commons.User{ID: "u1", Username: "alice"},
		CreatedAt:    time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeGateway) ListPolls(context.Context, commons.ListPollsInput) ([]commons.Poll, error) {
	f.listCalls++
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if f.polls == nil {
		return []commons.Poll{samplePrinciple()}, nil
	}
	return f.polls, nil
}

func (f *fakeGateway) GetPoll(_ context.Context, pollID string) (commons.Poll, error) {
	if f.getErr != nil {
		return commons.Poll{}, f.getErr
	}
	if f.poll.ID != "" {
		return f.poll, nil
	}
	poll := samplePrinciple()
	poll.ID = pollID
	return poll, nil
}

func (f *fakeGateway) GetResults(_ context.Context, pollID string) (commons.PollResults, error) {
	if f.resultsErr != nil {
		return commons.PollResults{}, f.resultsErr
	}
	if f.results.PollID != "" {
		return f.results, nil
	}
	return commons.PollResults{
		PollID:     pollID,
		TotalVotes: 5,
		Options: []commons.OptionResult{
			{OptionID: "opt-agree", Text: "Agree", Votes: 4, Percent: 80},
			{OptionID: "opt-disagree", Text: "Disagree", Votes: 1, Percent: 20},
		},
	}, nil
}

// recordingSleeper captures backoff waits without sleeping.
type recordingSleeper struct {
	waits []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}
