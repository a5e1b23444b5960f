package commons

import "time"

// DecisionType classifies a poll by deliberation horizon.
type DecisionType string

const (
	// DecisionLevelA is a long-term direction-setting principle.
	DecisionLevelA DecisionType = "level_a"
	// DecisionLevelB is a short-term concrete action.
	DecisionLevelB DecisionType = "level_b"
	// DecisionLevelC is an open problem statement.
	DecisionLevelC DecisionType = "level_c"
)

// User is the authenticated account as returned by the backend.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Token is a bearer credential issued by POST /api/token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Poll is a proposal as consumed by the frontend. Mutations happen only
// through explicit calls (vote, comment); the struct itself is read-only.
type Poll struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DecisionType    DecisionType `json:"decision_type"`
	CreatedBy       User         `json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	DirectionChoice string       `json:"direction_choice,omitempty"`
	Labels          []Label      `json:"labels,omitempty"`
	YourVoteStatus  string       `json:"your_vote_status,omitempty"`
}

// PollOption enumerates one choice for a poll.
type PollOption struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Text   string `json:"text"`
}

// Vote is one user's active vote on a poll. The backend enforces at most one
// active vote per user per poll.
type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	VoterID   string    `json:"voter_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a poll comment with reaction counts and the caller's reaction.
type Comment struct {
	ID         string    `json:"id"`
	PollID     string    `json:"poll_id"`
	User       User      `json:"user"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpCount    int       `json:"up_count"`
	DownCount  int       `json:"down_count"`
	MyReaction string    `json:"my_reaction,omitempty"`
}

// Label is a topic tag attached to polls.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DelegationChainHop is one resolved step of a delegation chain.
type DelegationChainHop struct {
	FromUser User `json:"from_user"`
	ToUser   User `json:"to_user"`
}

// Delegation is one delegation record, global or scoped to a label.
type Delegation struct {
	ID        string    `json:"id"`
	ToUser    User      `json:"to_user"`
	Label     *Label    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DelegationInfo is the caller's delegation state with resolved chains for
// transparency.
type DelegationInfo struct {
	Global *Delegation          `json:"global,omitempty"`
	Labels []Delegation         `json:"labels,omitempty"`
	Chain  []DelegationChainHop `json:"chain,omitempty"`
}

// PollSummary is the lightweight projection used by topic and browse views.
type PollSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	DecisionType DecisionType `json:"decision_type"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at,omitempty"`
	Labels       []Label      `json:"labels,omitempty"`
}

// OptionResult is a per-option tally from the results endpoint.
type OptionResult struct {
	OptionID string  `json:"option_id"`
	Text     string  `json:"text"`
	Votes    int     `json:"votes"`
	Percent  float64 `json:"percent"`
}

// PollResults is the server-side tally for one poll.
type PollResults struct {
	PollID     string         `json:"poll_id"`
	TotalVotes int            `json:"total_votes"`
	Options    []OptionResult `json:"options"`
	MyOptionID string         `json:"my_option_id,omitempty"`
}

// ActivityItem is one entry of the recent activity feed.
type ActivityItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Actor     User      `json:"actor"`
	PollID    string    `json:"poll_id,omitempty"`
	PollTitle string    `json:"poll_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentPage is a static content document (principles, actions, stories).
type ContentPage struct {
	Slug     string           `json:"slug"`
	Title    string           `json:"title"`
	Sections []ContentSection `json:"sections"`
}

// ContentSection is one heading/body pair of a content page.
type ContentSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// RegisterInput carries the account registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePollInput carries the proposal creation payload.
type CreatePollInput struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DecisionType    DecisionType `json:"decision_type"`
	DirectionChoice string       `json:"direction_choice,omitempty"`
	LabelIDs        []string     `json:"label_ids,omitempty"`
	Options         []string     `json:"options,omitempty"`
}

// ListPollsInput filters the poll listing.
type ListPollsInput struct {
	DecisionType DecisionType
	Label        string
}

// DelegationInput carries a delegation creation payload. An empty LabelID
// creates a global delegation.
type DelegationInput struct {
	ToUserID string `json:"to_user_id"`
	LabelID  string `json:"label_id,omitempty"`
}

// SummaryPage is one page of poll summaries from a paginated listing.
type SummaryPage struct {
	Items   []PollSummary `json:"items"`
	HasMore bool          `json:"has_more"`
}
