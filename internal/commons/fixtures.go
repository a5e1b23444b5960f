package commons

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fixture serves static demo data through the same API surface as the HTTP
// client so pages can be exercised without a live backend. Mutations are
// applied in memory and survive for the process lifetime only.
type Fixture struct {
	mu        sync.Mutex
	polls     map[string]Poll
	options   map[string][]PollOption
	votes     map[string]Vote
	comments  map[string][]Comment
	labels    []Label
	users     []User
	activity  []ActivityItem
	deleg     DelegationInfo
	content   map[string]ContentPage
	voteSeq   int
	commentSq int
}

var _ API = (*Fixture)(nil)

// NewFixture builds the demo dataset.
func NewFixture() *Fixture {
	f := &Fixture{
		polls:    map[string]Poll{},
		options:  map[string][]PollOption{},
		votes:    map[string]Vote{},
		comments: map[string][]Comment{},
		content:  map[string]ContentPage{},
	}
	f.seed()
	return f
}

func (f *Fixture) seed() {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	alice := User{ID: "user-alice", Username: "alice", Email: "alice@example.org"}
	bram := User{ID: "user-bram", Username: "bram", Email: "bram@example.org"}
	chioma := User{ID: "user-chioma", Username: "chioma", Email: "chioma@example.org"}
	f.users = []User{alice, bram, chioma}

	transit := Label{ID: "label-transit", Name: "Public Transit", Slug: "transit"}
	housing := Label{ID: "label-housing", Name: "Housing", Slug: "housing"}
	climate := Label{ID: "label-climate", Name: "Climate", Slug: "climate"}
	f.labels = []Label{transit, housing, climate}

	principle := Poll{
		ID:              "poll-principle-mobility",
		Title:           "Prioritize car-free mobility in the city core",
		Description:     "Set a long-term direction that walking, cycling and transit come first inside the ring road.",
		DecisionType:    DecisionLevelA,
		CreatedBy:       alice,
		CreatedAt:       now.Add(-96 * time.Hour),
		UpdatedAt:       now.Add(-24 * time.Hour),
		DirectionChoice: "car_free",
		Labels:          []Label{transit, climate},
	}
	action := Poll{
		ID:           "poll-action-bus-lane",
		Title:        "Add a dedicated bus lane on Harbor Street",
		Description:  "Convert one traffic lane to a 24/7 bus lane between the station and the market square.",
		DecisionType: DecisionLevelB,
		CreatedBy:    bram,
		CreatedAt:    now.Add(-48 * time.Hour),
		UpdatedAt:    now.Add(-2 * time.Hour),
		Labels:       []Label{transit},
	}
	problem := Poll{
		ID:           "poll-problem-rent",
		Title:        "Rents are outpacing wages",
		Description:  "Median rent rose 14% in two years while wages rose 3%.",
		DecisionType: DecisionLevelC,
		CreatedBy:    chioma,
		CreatedAt:    now.Add(-72 * time.Hour),
		UpdatedAt:    now.Add(-72 * time.Hour),
		Labels:       []Label{housing},
	}
	for _, poll := range []Poll{principle, action, problem} {
		f.polls[poll.ID] = poll
	}

	f.options[principle.ID] = []PollOption{
		{ID: "opt-mobility-agree", PollID: principle.ID, Text: "Agree with this direction"},
		{ID: "opt-mobility-disagree", PollID: principle.ID, Text: "Disagree with this direction"},
	}
	f.options[action.ID] = []PollOption{
		{ID: "opt-bus-yes", PollID: action.ID, Text: "Yes, convert the lane"},
		{ID: "opt-bus-no", PollID: action.ID, Text: "No, keep it mixed traffic"},
	}

	f.comments[action.ID] = []Comment{
		{
			ID:        "comment-1",
			PollID:    action.ID,
			User:      chioma,
			Body:      "The 14 bus loses eleven minutes on Harbor Street every rush hour. This is overdue.",
			CreatedAt: now.Add(-20 * time.Hour),
			UpdatedAt: now.Add(-20 * time.Hour),
			UpCount:   4,
		},
	}

	f.activity = []ActivityItem{
		{ID: "act-1", Kind: "poll_created", Actor: bram, PollID: action.ID, PollTitle: action.Title, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "act-2", Kind: "comment_created", Actor: chioma, PollID: action.ID, PollTitle: action.Title, CreatedAt: now.Add(-20 * time.Hour)},
		{ID: "act-3", Kind: "vote_cast", Actor: alice, PollID: principle.ID, PollTitle: principle.Title, CreatedAt: now.Add(-12 * time.Hour)},
	}

	f.deleg = DelegationInfo{
		Labels: []Delegation{
			{ID: "deleg-transit", ToUser: bram, Label: &transit, CreatedAt: now.Add(-200 * time.Hour)},
		},
		Chain: []DelegationChainHop{{FromUser: alice, ToUser: bram}},
	}

	f.content["principles"] = ContentPage{
		Slug:  "principles",
		Title: "Principles",
		Sections: []ContentSection{
			{Heading: "What is a principle?", Body: "A principle sets a long-term direction the community commits to."},
		},
	}
	f.content["actions"] = ContentPage{
		Slug:  "actions",
		Title: "Actions",
		Sections: []ContentSection{
			{Heading: "What is an action?", Body: "An action is a concrete, short-term proposal that can be carried out."},
		},
	}
	f.content["stories"] = ContentPage{
		Slug:  "stories",
		Title: "Stories",
		Sections: []ContentSection{
			{Heading: "Harbor Street", Body: "How one street became the test case for shared decision making."},
		},
	}
}

// Login accepts any non-empty credentials in demo mode.
func (f *Fixture) Login(_ context.Context, username, password string) (Token, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Token{}, APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	}
	return Token{AccessToken: "demo-token-" + strings.TrimSpace(username), TokenType: "bearer"}, nil
}

// Register creates a demo account.
func (f *Fixture) Register(_ context.Context, input RegisterInput) (User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Email) == "" {
		return User{}, APIError{Status: http.StatusUnprocessableEntity, Message: "username and email are required"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			return User{}, APIError{Status: http.StatusConflict, Message: "username is taken"}
		}
	}
	user := User{ID: "user-" + username, Username: username, Email: strings.TrimSpace(input.Email)}
	f.users = append(f.users, user)
	return user, nil
}

// ListPolls lists demo proposals, filtered like the backend would.
func (f *Fixture) ListPolls(_ context.Context, input ListPollsInput) ([]Poll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	polls := make([]Poll, 0, len(f.polls))
	for _, poll := range f.polls {
		if input.DecisionType != "" && poll.DecisionType != input.DecisionType {
			continue
		}
		if input.Label != "" && !pollHasLabel(poll, input.Label) {
			continue
		}
		polls = append(polls, poll)
	}
	sort.Slice(polls, func(i, j int) bool {
		if !polls[i].CreatedAt.Equal(polls[j].CreatedAt) {
			return polls[i].CreatedAt.After(polls[j].CreatedAt)
		}
		return polls[i].ID > polls[j].ID
	})
	return polls, nil
}

// GetPoll loads one demo proposal.
func (f *Fixture) GetPoll(_ context.Context, pollID string) (Poll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	poll, ok := f.polls[strings.TrimSpace(pollID)]
	if !ok {
		return Poll{}, APIError{Status: http.StatusNotFound, Message: "poll not found"}
	}
	return poll, nil
}

// CreatePoll stores a new demo proposal.
func (f *Fixture) CreatePoll(_ context.Context, input CreatePollInput) (Poll, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Poll{}, APIError{Status: http.StatusUnprocessableEntity, Message: "title is required"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := "poll-" + slugify(title)
	now := time.Now().UTC()
	poll := Poll{
		ID:           id,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		DecisionType: input.DecisionType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, labelID := range input.LabelIDs {
		for _, label := range f.labels {
			if label.ID == labelID {
				poll.Labels = append(poll.Labels, label)
			}
		}
	}
	f.polls[id] = poll
	options := make([]PollOption, 0, len(input.Options))
	for i, text := range input.Options {
		options = append(options, PollOption{
			ID:     formatSeq("opt-"+slugify(title), i+1),
			PollID: id,
			Text:   strings.TrimSpace(text),
		})
	}
	f.options[id] = options
	return poll, nil
}

// ListOptions enumerates demo choices for a poll.
func (f *Fixture) ListOptions(_ context.Context, pollID string) ([]PollOption, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	options, ok := f.options[strings.TrimSpace(pollID)]
	if !ok {
		return []PollOption{}, nil
	}
	out := make([]PollOption, len(options))
	copy(out, options)
	return out, nil
}

// CastVote stores the demo vote, replacing any previous one for the poll.
func (f *Fixture) CastVote(_ context.Context, pollID, optionID string) (Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.polls[pollID]; !ok {
		return Vote{}, APIError{Status: http.StatusNotFound, Message: "poll not found"}
	}
	f.voteSeq++
	vote := Vote{
		ID:        formatSeq("vote", f.voteSeq),
		PollID:    pollID,
		OptionID:  optionID,
		VoterID:   "user-demo",
		CreatedAt: time.Now().UTC(),
	}
	f.votes[pollID] = vote
	return vote, nil
}

// GetResults tallies demo votes for a poll.
func (f *Fixture) GetResults(_ context.Context, pollID string) (PollResults, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	options, ok := f.options[pollID]
	if !ok {
		return PollResults{}, APIError{Status: http.StatusNotFound, Message: "poll not found"}
	}
	counts := map[string]int{}
	// Seeded baseline so demo charts are not empty.
	if len(options) > 0 {
		counts[options[0].ID] = 3
	}
	if len(options) > 1 {
		counts[options[1].ID] = 1
	}
	myOption := ""
	if vote, ok := f.votes[pollID]; ok {
		counts[vote.OptionID]++
		myOption = vote.OptionID
	}
	total := 0
	for _, count := range counts {
		total += count
	}
	results := PollResults{PollID: pollID, TotalVotes: total, MyOptionID: myOption}
	for _, option := range options {
		percent := 0.0
		if total > 0 {
			percent = float64(counts[option.ID]) * 100 / float64(total)
		}
		results.Options = append(results.Options, OptionResult{
			OptionID: option.ID,
			Text:     option.Text,
			Votes:    counts[option.ID],
			Percent:  percent,
		})
	}
	return results, nil
}

// ListComments loads demo comments in server order.
func (f *Fixture) ListComments(_ context.Context, pollID string) ([]Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comments := f.comments[strings.TrimSpace(pollID)]
	out := make([]Comment, len(comments))
	copy(out, comments)
	return out, nil
}

// CreateComment appends a demo comment.
func (f *Fixture) CreateComment(_ context.Context, pollID, body string) (Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Comment{}, APIError{Status: http.StatusUnprocessableEntity, Message: "comment body is required"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.polls[pollID]; !ok {
		return Comment{}, APIError{Status: http.StatusNotFound, Message: "poll not found"}
	}
	f.commentSq++
	now := time.Now().UTC()
	comment := Comment{
		ID:        formatSeq("comment", 100+f.commentSq),
		PollID:    pollID,
		User:      User{ID: "user-demo", Username: "you"},
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.comments[pollID] = append(f.comments[pollID], comment)
	return comment, nil
}

// DeleteComment removes a demo comment.
func (f *Fixture) DeleteComment(_ context.Context, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pollID, comments := range f.comments {
		for i, comment := range comments {
			if comment.ID == commentID {
				f.comments[pollID] = append(comments[:i:i], comments[i+1:]...)
				return nil
			}
		}
	}
	return APIError{Status: http.StatusNotFound, Message: "comment not found"}
}

// ReactToComment toggles a demo reaction.
func (f *Fixture) ReactToComment(_ context.Context, commentID, reaction string) (Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pollID, comments := range f.comments {
		for i, comment := range comments {
			if comment.ID != commentID {
				continue
			}
			switch reaction {
			case "up":
				comment.UpCount++
			case "down":
				comment.DownCount++
			default:
				return Comment{}, APIError{Status: http.StatusUnprocessableEntity, Message: "unknown reaction"}
			}
			comment.MyReaction = reaction
			f.comments[pollID][i] = comment
			return comment, nil
		}
	}
	return Comment{}, APIError{Status: http.StatusNotFound, Message: "comment not found"}
}

// GetDelegation loads the demo delegation state.
func (f *Fixture) GetDelegation(_ context.Context) (DelegationInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleg, nil
}

// CreateDelegation stores a demo delegation.
func (f *Fixture) CreateDelegation(_ context.Context, input DelegationInput) (DelegationInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var target *User
	for i := range f.users {
		if f.users[i].ID == input.ToUserID {
			target = &f.users[i]
			break
		}
	}
	if target == nil {
		return DelegationInfo{}, APIError{Status: http.StatusNotFound, Message: "user not found"}
	}
	delegation := Delegation{ID: "deleg-" + target.ID, ToUser: *target, CreatedAt: time.Now().UTC()}
	if strings.TrimSpace(input.LabelID) != "" {
		for i := range f.labels {
			if f.labels[i].ID == input.LabelID {
				delegation.Label = &f.labels[i]
			}
		}
		f.deleg.Labels = append(f.deleg.Labels, delegation)
	} else {
		f.deleg.Global = &delegation
	}
	return f.deleg, nil
}

// DeleteDelegation revokes a demo delegation.
func (f *Fixture) DeleteDelegation(_ context.Context, labelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if strings.TrimSpace(labelID) == "" {
		f.deleg.Global = nil
		return nil
	}
	for i, delegation := range f.deleg.Labels {
		if delegation.Label != nil && delegation.Label.ID == labelID {
			f.deleg.Labels = append(f.deleg.Labels[:i:i], f.deleg.Labels[i+1:]...)
			return nil
		}
	}
	return APIError{Status: http.StatusNotFound, Message: "delegation not found"}
}

// ListLabels lists demo labels.
func (f *Fixture) ListLabels(_ context.Context) ([]Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Label, len(f.labels))
	copy(out, f.labels)
	return out, nil
}

// ListLabelPolls pages demo poll summaries for a label.
func (f *Fixture) ListLabelPolls(_ context.Context, slug string, page int) (SummaryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []PollSummary
	for _, poll := range f.polls {
		if !pollHasLabel(poll, slug) {
			continue
		}
		items = append(items, PollSummary{
			ID:           poll.ID,
			Title:        poll.Title,
			DecisionType: poll.DecisionType,
			CreatedAt:    poll.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    poll.UpdatedAt.Format(time.RFC3339),
			Labels:       poll.Labels,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if page > 1 {
		return SummaryPage{Items: []PollSummary{}}, nil
	}
	return SummaryPage{Items: items}, nil
}

// SearchUsers finds demo members by username prefix.
func (f *Fixture) SearchUsers(_ context.Context, query string) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	var out []User
	for _, user := range f.users {
		if query == "" || strings.HasPrefix(strings.ToLower(user.Username), query) {
			out = append(out, user)
		}
	}
	return out, nil
}

// ListActivity loads the demo activity feed.
func (f *Fixture) ListActivity(_ context.Context) ([]ActivityItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ActivityItem, len(f.activity))
	copy(out, f.activity)
	return out, nil
}

// GetContent loads a demo content page.
func (f *Fixture) GetContent(_ context.Context, slug string) (ContentPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.content[strings.TrimSpace(slug)]
	if !ok {
		return ContentPage{}, APIError{Status: http.StatusNotFound, Message: "content not found"}
	}
	return page, nil
}

func pollHasLabel(poll Poll, slugOrID string) bool {
	for _, label := range poll.Labels {
		if label.Slug == slugOrID || label.ID == slugOrID {
			return true
		}
	}
	return false
}

func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	lastDash := true
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func formatSeq(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}
