// Package commons is the typed HTTP client for The Commons REST backend.
//
// Every call takes a context for cancellation, attaches the caller's bearer
// token when one is present on the context, and normalizes all failures into
// APIError. A fixture-backed implementation of the same API surface lives in
// fixtures.go for demo mode.
package commons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// defaultHTTPTimeout caps a single backend call. Explicit context
// cancellation is the primary mechanism; the timeout is a backstop.
const defaultHTTPTimeout = 15 * time.Second

// API is the typed surface of the backend consumed by web gateways. Both the
// HTTP client and the fixture client implement it.
type API interface {
	Login(ctx context.Context, username, password string) (Token, error)
	Register(ctx context.Context, input RegisterInput) (User, error)

	ListPolls(ctx context.Context, input ListPollsInput) ([]Poll, error)
	GetPoll(ctx context.Context, pollID string) (Poll, error)
	CreatePoll(ctx context.Context, input CreatePollInput) (Poll, error)
	ListOptions(ctx context.Context, pollID string) ([]PollOption, error)
	CastVote(ctx context.Context, pollID, optionID string) (Vote, error)
	GetResults(ctx context.Context, pollID string) (PollResults, error)

	ListComments(ctx context.Context, pollID string) ([]Comment, error)
	CreateComment(ctx context.Context, pollID, body string) (Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	ReactToComment(ctx context.Context, commentID, reaction string) (Comment, error)

	GetDelegation(ctx context.Context) (DelegationInfo, error)
	CreateDelegation(ctx context.Context, input DelegationInput) (DelegationInfo, error)
	DeleteDelegation(ctx context.Context, labelID string) error

	ListLabels(ctx context.Context) ([]Label, error)
	ListLabelPolls(ctx context.Context, slug string, page int) (SummaryPage, error)
	SearchUsers(ctx context.Context, query string) ([]User, error)

	ListActivity(ctx context.Context) ([]ActivityItem, error)
	GetContent(ctx context.Context, slug string) (ContentPage, error)
}

var _ API = (*Client)(nil)

// Client talks to the backend over HTTP with JSON payloads.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	recorder       *Recorder
	onUnauthorized func(context.Context)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRecorder attaches a call recorder for the debug overlay.
func WithRecorder(recorder *Recorder) Option {
	return func(c *Client) { c.recorder = recorder }
}

// WithUnauthorizedHook registers a callback invoked on HTTP 401. The hook
// clears the cached token; it must not force navigation. Callers decide how
// to react.
func WithUnauthorizedHook(hook func(context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = hook }
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// Recorder returns the attached call recorder, if any.
func (c *Client) Recorder() *Recorder {
	if c == nil {
		return nil
	}
	return c.recorder
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (Token, error) {
	form := url.Values{}
	form.Set("username", strings.TrimSpace(username))
	form.Set("password", password)

	var token Token
	if err := c.doForm(ctx, http.MethodPost, "/api/token", form, &token); err != nil {
		return Token{}, err
	}
	return token, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input RegisterInput) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/users/", nil, input, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ListPolls lists proposals, optionally filtered by decision type and label.
func (c *Client) ListPolls(ctx context.Context, input ListPollsInput) ([]Poll, error) {
	query := url.Values{}
	if input.DecisionType != "" {
		query.Set("decision_type", string(input.DecisionType))
	}
	if strings.TrimSpace(input.Label) != "" {
		query.Set("label", strings.TrimSpace(input.Label))
	}
	var polls []Poll
	if err := c.do(ctx, http.MethodGet, "/api/polls/", query, nil, &polls); err != nil {
		return nil, err
	}
	return polls, nil
}

// GetPoll loads one proposal.
func (c *Client) GetPoll(ctx context.Context, pollID string) (Poll, error) {
	var poll Poll
	if err := c.do(ctx, http.MethodGet, "/api/polls/"+url.PathEscape(pollID), nil, nil, &poll); err != nil {
		return Poll{}, err
	}
	return poll, nil
}

// CreatePoll creates a proposal.
func (c *Client) CreatePoll(ctx context.Context, input CreatePollInput) (Poll, error) {
	var poll Poll
	if err := c.do(ctx, http.MethodPost, "/api/polls/", nil, input, &poll); err != nil {
		return Poll{}, err
	}
	return poll, nil
}

// ListOptions enumerates the choices for a poll.
func (c *Client) ListOptions(ctx context.Context, pollID string) ([]PollOption, error) {
	var options []PollOption
	if err := c.do(ctx, http.MethodGet, "/api/options/poll/"+url.PathEscape(pollID), nil, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// CastVote records the caller's vote for an option.
func (c *Client) CastVote(ctx context.Context, pollID, optionID string) (Vote, error) {
	payload := map[string]string{"poll_id": pollID, "option_id": optionID}
	var vote Vote
	if err := c.do(ctx, http.MethodPost, "/api/votes/", nil, payload, &vote); err != nil {
		return Vote{}, err
	}
	return vote, nil
}

// GetResults loads the server-side tally for a poll.
func (c *Client) GetResults(ctx context.Context, pollID string) (PollResults, error) {
	var results PollResults
	if err := c.do(ctx, http.MethodGet, "/api/polls/"+url.PathEscape(pollID)+"/results", nil, nil, &results); err != nil {
		return PollResults{}, err
	}
	return results, nil
}

// ListComments loads comments for a poll in server order.
func (c *Client) ListComments(ctx context.Context, pollID string) ([]Comment, error) {
	var comments []Comment
	if err := c.do(ctx, http.MethodGet, "/api/polls/"+url.PathEscape(pollID)+"/comments", nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a comment on a poll.
func (c *Client) CreateComment(ctx context.Context, pollID, body string) (Comment, error) {
	payload := map[string]string{"body": body}
	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/api/polls/"+url.PathEscape(pollID)+"/comments", nil, payload, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// DeleteComment removes the caller's comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/comments/"+url.PathEscape(commentID), nil, nil, nil)
}

// ReactToComment records the caller's up/down reaction on a comment and
// returns the updated comment.
func (c *Client) ReactToComment(ctx context.Context, commentID, reaction string) (Comment, error) {
	payload := map[string]string{"reaction": reaction}
	var comment Comment
	if err := c.do(ctx, http.MethodPost, "/api/comments/"+url.PathEscape(commentID)+"/reactions", nil, payload, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// GetDelegation loads the caller's delegation state.
func (c *Client) GetDelegation(ctx context.Context) (DelegationInfo, error) {
	var info DelegationInfo
	if err := c.do(ctx, http.MethodGet, "/api/delegations/me", nil, nil, &info); err != nil {
		return DelegationInfo{}, err
	}
	return info, nil
}

// CreateDelegation assigns the caller's vote to another user, globally or
// scoped to a label.
func (c *Client) CreateDelegation(ctx context.Context, input DelegationInput) (DelegationInfo, error) {
	var info DelegationInfo
	if err := c.do(ctx, http.MethodPost, "/api/delegations/", nil, input, &info); err != nil {
		return DelegationInfo{}, err
	}
	return info, nil
}

// DeleteDelegation revokes a delegation. An empty labelID revokes the global
// delegation.
func (c *Client) DeleteDelegation(ctx context.Context, labelID string) error {
	path := "/api/delegations/global"
	if strings.TrimSpace(labelID) != "" {
		path = "/api/delegations/label/" + url.PathEscape(labelID)
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListLabels lists all topic labels.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.do(ctx, http.MethodGet, "/api/labels/", nil, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// ListLabelPolls loads one page of poll summaries for a topic label.
func (c *Client) ListLabelPolls(ctx context.Context, slug string, page int) (SummaryPage, error) {
	query := url.Values{}
	if page > 1 {
		query.Set("page", fmt.Sprintf("%d", page))
	}
	var result SummaryPage
	if err := c.do(ctx, http.MethodGet, "/api/labels/"+url.PathEscape(slug)+"/polls", query, nil, &result); err != nil {
		return SummaryPage{}, err
	}
	return result, nil
}

// SearchUsers finds members for delegation pickers.
func (c *Client) SearchUsers(ctx context.Context, queryText string) ([]User, error) {
	query := url.Values{}
	query.Set("q", strings.TrimSpace(queryText))
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users/search", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListActivity loads the recent activity feed.
func (c *Client) ListActivity(ctx context.Context) ([]ActivityItem, error) {
	var items []ActivityItem
	if err := c.do(ctx, http.MethodGet, "/api/activity/", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetContent loads a static content page (principles, actions, stories).
func (c *Client) GetContent(ctx context.Context, slug string) (ContentPage, error) {
	var page ContentPage
	if err := c.do(ctx, http.MethodGet, "/api/content/"+url.PathEscape(slug), nil, nil, &page); err != nil {
		return ContentPage{}, err
	}
	return page, nil
}

// do performs one JSON API call and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.roundTrip(ctx, method, path, query, reader, contentType, out)
}

// doForm performs one form-encoded API call (the token endpoint).
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out any) error {
	return c.roundTrip(ctx, method, path, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if c == nil || c.httpClient == nil {
		return APIError{Status: http.StatusServiceUnavailable, Message: "api client is not configured"}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return APIError{Status: http.StatusInternalServerError, Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx, span := otel.Tracer("commons-web/api").Start(ctx, "commons.api "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", fullURL),
		),
	)
	defer span.End()

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(method, fullURL, 0, started)
		span.RecordError(err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			// Cancelled or superseded requests propagate the context error so
			// callers can swallow them instead of surfacing a user-visible
			// failure.
			return ctxErr
		}
		return APIError{Status: http.StatusServiceUnavailable, Message: "backend is unreachable"}
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.record(method, fullURL, resp.StatusCode, started)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return APIError{Status: http.StatusBadGateway, Message: "failed to read response"}
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := normalizeError(resp.StatusCode, payload)
		span.RecordError(apiErr)
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return APIError{Status: http.StatusBadGateway, Message: "unexpected response shape"}
	}
	return nil
}

func (c *Client) record(method, fullURL string, status int, started time.Time) {
	if c.recorder == nil {
		return
	}
	c.recorder.Record(CallRecord{
		Method:   method,
		URL:      fullURL,
		Status:   status,
		Duration: time.Since(started),
		At:       started,
	})
}
