// Package session resolves browser sessions into backend credentials.
//
// Browsers hold an opaque session id cookie. The bearer token lives in the
// web store, keyed by that id, and is attached to backend calls server-side.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/sessioncookie"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// DefaultTTL bounds sessions whose tokens carry no expiry claim.
const DefaultTTL = 24 * time.Hour

type sessionContextKey struct{}

// WithSession returns ctx carrying a resolved session.
func WithSession(ctx context.Context, session webstorage.Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (webstorage.Session, bool) {
	if ctx == nil {
		return webstorage.Session{}, false
	}
	session, ok := ctx.Value(sessionContextKey{}).(webstorage.Session)
	if !ok || session.ID == "" {
		return webstorage.Session{}, false
	}
	return session, true
}

// Resolver loads, issues, and revokes browser sessions.
type Resolver struct {
	store webstorage.Store
	now   func() time.Time
}

// NewResolver builds a session resolver over the web store.
func NewResolver(store webstorage.Store) *Resolver {
	return &Resolver{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Lookup resolves the session for a request. Context-attached sessions win so
// per-request resolution happens at most once. Expired sessions are treated
// as absent and removed from the store.
func (res *Resolver) Lookup(r *http.Request) (webstorage.Session, bool) {
	if res == nil || r == nil {
		return webstorage.Session{}, false
	}
	if session, ok := FromContext(r.Context()); ok {
		return session, true
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return webstorage.Session{}, false
	}
	session, found, err := res.store.GetSession(r.Context(), sessionID)
	if err != nil || !found {
		return webstorage.Session{}, false
	}
	if res.expired(session) {
		_ = res.store.DeleteSession(r.Context(), session.ID)
		return webstorage.Session{}, false
	}
	return session, true
}

// Issue persists a new session for the given token and user identity.
func (res *Resolver) Issue(ctx context.Context, token string, user commons.User) (webstorage.Session, error) {
	if res == nil || res.store == nil {
		return webstorage.Session{}, fmt.Errorf("session store is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return webstorage.Session{}, fmt.Errorf("token is required")
	}
	sessionID, err := newSessionID()
	if err != nil {
		return webstorage.Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := res.now()
	expiresAt, ok := TokenExpiry(token)
	if !ok || expiresAt.Before(now) {
		expiresAt = now.Add(DefaultTTL)
	}
	session := webstorage.Session{
		ID:          sessionID,
		Token:       token,
		Username:    strings.TrimSpace(user.Username),
		DisplayName: strings.TrimSpace(user.Username),
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}
	if err := res.store.PutSession(ctx, session); err != nil {
		return webstorage.Session{}, err
	}
	return session, nil
}

// Revoke removes a session by id.
func (res *Resolver) Revoke(ctx context.Context, sessionID string) error {
	if res == nil || res.store == nil {
		return nil
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return res.store.DeleteSession(ctx, sessionID)
}

// UnauthorizedHook returns the client 401 hook: a rejected token invalidates
// the session that carried it so the next page load lands on login.
func (res *Resolver) UnauthorizedHook() func(context.Context) {
	return func(ctx context.Context) {
		if res == nil || res.store == nil {
			return
		}
		session, ok := FromContext(ctx)
		if !ok {
			return
		}
		_ = res.store.DeleteSession(context.WithoutCancel(ctx), session.ID)
	}
}

func (res *Resolver) expired(session webstorage.Session) bool {
	now := res.now()
	if !session.ExpiresAt.IsZero() && !session.ExpiresAt.After(now) {
		return true
	}
	if expiry, ok := TokenExpiry(session.Token); ok && !expiry.After(now) {
		return true
	}
	return false
}

// TokenExpiry extracts the exp claim from a JWT without verifying its
// signature. Verification belongs to the backend; the web layer only uses the
// claim to avoid sending tokens it already knows are dead.
func TokenExpiry(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time.UTC(), true
}

func newSessionID() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
