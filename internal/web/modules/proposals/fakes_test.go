package proposals

import (
	"context"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

// fakeGateway implements ProposalGateway for tests with configurable return
// values and error injection.
type fakeGateway struct {
	polls      []commons.Poll
	listErr    error
	getErr     error
	createErr  error
	options    []commons.PollOption
	optionsErr error
	voteErr    error
	votes      []commons.Vote
	results    commons.PollResults
	resultsErr error
	comments   []commons.Comment
	commentErr error
	labels     []commons.Label
	labelsErr  error
}

var _ ProposalGateway = (*fakeGateway)(nil)

func samplePoll() commons.Poll {
	return commons.Poll{
		ID:           "poll-1",
		Title:        "Protected bike lanes on Main Street",
		Description:  "Install protected lanes between 1st and 9th.",
		DecisionType: commons.DecisionLevelB,
		CreatedBy:    commons.User{ID: "u1", Username: "alice"},
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Labels:       []commons.Label{{ID: "l1", Name: "Transit", Slug: "transit"}},
	}
}

func (f *fakeGateway) ListPolls(context.Context, commons.ListPollsInput) ([]commons.Poll, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.polls == nil {
		return []commons.Poll{samplePoll()}, nil
	}
	return f.polls, nil
}

func (f *fakeGateway) GetPoll(_ context.Context, pollID string) (commons.Poll, error) {
	if f.getErr != nil {
		return commons.Poll{}, f.getErr
	}
	poll := samplePoll()
	poll.ID = pollID
	return poll, nil
}

func (f *fakeGateway) CreatePoll(_ context.Context, input commons.CreatePollInput) (commons.Poll, error) {
	if f.createErr != nil {
		return commons.Poll{}, f.createErr
	}
	return commons.Poll{ID: "poll-new", Title: input.Title, DecisionType: input.DecisionType}, nil
}

func (f *fakeGateway) ListOptions(_ context.Context, pollID string) ([]commons.PollOption, error) {
	if f.optionsErr != nil {
		return nil, f.optionsErr
	}
	if f.options == nil {
		return []commons.PollOption{
			{ID: "opt-yes", PollID: pollID, Text: "Yes"},
			{ID: "opt-no", PollID: pollID, Text: "No"},
		}, nil
	}
	return f.options, nil
}

func (f *fakeGateway) CastVote(_ context.Context, pollID, optionID string) (commons.Vote, error) {
	if f.voteErr != nil {
		return commons.Vote{}, f.voteErr
	}
	vote := commons.Vote{ID: "vote-1", PollID: pollID, OptionID: optionID}
	f.votes = append(f.votes, vote)
	return vote, nil
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
		TotalVotes: 3,
		Options: []commons.OptionResult{
			{OptionID: "opt-yes", Text: "Yes", Votes: 2, Percent: 66.7},
			{OptionID: "opt-no", Text: "No", Votes: 1, Percent: 33.3},
		},
	}, nil
}

func (f *fakeGateway) ListComments(context.Context, string) ([]commons.Comment, error) {
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	return f.comments, nil
}

func (f *fakeGateway) CreateComment(_ context.Context, pollID, body string) (commons.Comment, error) {
	if f.commentErr != nil {
		return commons.Comment{}, f.commentErr
	}
	comment := commons.Comment{ID: "comment-new", PollID: pollID, Body: body}
	f.comments = append(f.comments, comment)
	return comment, nil
}

func (f *fakeGateway) DeleteComment(context.Context, string) error {
	return f.commentErr
}

func (f *fakeGateway) ReactToComment(_ context.Context, commentID, reaction string) (commons.Comment, error) {
	if f.commentErr != nil {
		return commons.Comment{}, f.commentErr
	}
	return commons.Comment{ID: commentID, MyReaction: reaction, UpCount: 1}, nil
}

func (f *fakeGateway) ListLabels(context.Context) ([]commons.Label, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	if f.labels == nil {
		return []commons.Label{{ID: "l1", Name: "Transit", Slug: "transit"}}, nil
	}
	return f.labels, nil
}
