package auth

import (
	"context"
	"net/http"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// fakeGateway implements AuthGateway for tests with configurable error injection.
type fakeGateway struct {
	loginErr    error
	registerErr error
	token       string
	registered  []commons.RegisterInput
}

var _ AuthGateway = (*fakeGateway)(nil)

func (f *fakeGateway) Login(_ context.Context, username, _ string) (commons.Token, error) {
	if f.loginErr != nil {
		return commons.Token{}, f.loginErr
	}
	token := f.token
	if token == "" {
		token = "token-for-" + username
	}
	return commons.Token{AccessToken: token, TokenType: "bearer"}, nil
}

func (f *fakeGateway) Register(_ context.Context, input commons.RegisterInput) (commons.User, error) {
	if f.registerErr != nil {
		return commons.User{}, f.registerErr
	}
	f.registered = append(f.registered, input)
	return commons.User{ID: "u-new", Username: input.Username, Email: input.Email}, nil
}

// fakeSessions implements SessionManager in memory.
type fakeSessions struct {
	issueErr error
	issued   []webstorage.Session
	revoked  []string
	current  webstorage.Session
}

var _ SessionManager = (*fakeSessions)(nil)

func (f *fakeSessions) Issue(_ context.Context, token string, user commons.User) (webstorage.Session, error) {
	if f.issueErr != nil {
		return webstorage.Session{}, f.issueErr
	}
	session := webstorage.Session{ID: "sess-1", Token: token, Username: user.Username}
	f.issued = append(f.issued, session)
	return session, nil
}

func (f *fakeSessions) Revoke(_ context.Context, sessionID string) error {
	f.revoked = append(f.revoked, sessionID)
	return nil
}

func (f *fakeSessions) Lookup(*http.Request) (webstorage.Session, bool) {
	if f.current.ID == "" {
		return webstorage.Session{}, false
	}
	return f.current, true
}
