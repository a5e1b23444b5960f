package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/modules"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/requestmeta"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/sessioncookie"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
	"github.com/kaarlekaarle/commons-web/internal/web/session"
	webstatic "github.com/kaarlekaarle/commons-web/internal/web/static"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

type memStore struct {
	mu       sync.Mutex
	sessions map[string]webstorage.Session
	cache    map[string]webstorage.CacheEntry
}

func newMemStore() *memStore {
	return &memStore{
		sessions: map[string]webstorage.Session{},
		cache:    map[string]webstorage.CacheEntry{},
	}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) PutSession(_ context.Context, sess webstorage.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *memStore) GetSession(_ context.Context, sessionID string) (webstorage.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	return sess, ok, nil
}

func (m *memStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *memStore) DeleteExpiredSessions(_ context.Context, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if !sess.ExpiresAt.IsZero() && !sess.ExpiresAt.After(now) {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *memStore) GetCacheEntry(_ context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.cache[cacheKey]
	return entry, ok, nil
}

func (m *memStore) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[entry.CacheKey] = entry
	return nil
}

func (m *memStore) DeleteCacheEntry(_ context.Context, cacheKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, cacheKey)
	return nil
}

func newTestHandler(t *testing.T, api commons.API) http.Handler {
	t.Helper()
	store := newMemStore()
	sessions := session.NewResolver(store)
	deps := modules.Dependencies{
		API:      api,
		Store:    store,
		Sessions: sessions,
		Policy:   requestmeta.SchemePolicy{},
		Base:     modulehandler.NewBase(resolveToken(sessions), nil, resolveViewer(sessions)),
		SignedIn: resolveSignedIn(sessions),
	}
	handler, err := Compose(ComposeInput{
		PublicModules:    modules.DefaultPublicModules(deps),
		ProtectedModules: modules.DefaultProtectedModules(deps),
		Sessions:         sessions,
		StaticFS:         webstatic.FS,
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return handler
}

func TestAnonymousAppTrafficRedirectsToLogin(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, commons.NewFixture())
	req := httptest.NewRequest(http.MethodGet, routepath.AppProposals, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != routepath.Login {
		t.Fatalf("Location = %q, want %q", got, routepath.Login)
	}
}

func TestLoginFlowReachesProtectedPages(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, commons.NewFixture())

	form := url.Values{"username": {"alice"}, "password": {"open sesame"}}
	login := httptest.NewRequest(http.MethodPost, "http://example.com"+routepath.Login, strings.NewReader(form.Encode()))
	login.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	login.Header.Set("Origin", "http://example.com")
	loginRec := httptest.NewRecorder()
	handler.ServeHTTP(loginRec, login)

	if loginRec.Code != http.StatusFound {
		t.Fatalf("login status = %d, want 302: %s", loginRec.Code, loginRec.Body.String())
	}
	if got := loginRec.Header().Get("Location"); got != routepath.AppProposals {
		t.Fatalf("login Location = %q", got)
	}
	var sessionCookie *http.Cookie
	for _, cookie := range loginRec.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("login response missing session cookie")
	}

	page := httptest.NewRequest(http.MethodGet, routepath.AppProposals, nil)
	page.AddCookie(sessionCookie)
	pageRec := httptest.NewRecorder()
	handler.ServeHTTP(pageRec, page)

	if pageRec.Code != http.StatusOK {
		t.Fatalf("proposals status = %d, want 200", pageRec.Code)
	}
	body := pageRec.Body.String()
	if !strings.Contains(body, "Prioritize car-free mobility in the city core") {
		t.Fatalf("proposals page missing fixture poll: %q", body)
	}
	if !strings.Contains(body, "alice") {
		t.Fatalf("proposals page missing viewer name: %q", body)
	}
}

func TestHealthReportsModuleAvailability(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, commons.NewFixture())
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, id := range []string{"proposals", "compass", "topics", "delegations", "activity", "auth", "public"} {
		if !strings.Contains(body, `"`+id+`":true`) {
			t.Fatalf("health body missing %q: %s", id, body)
		}
	}
}

func TestHealthDegradesWithoutBackend(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"degraded"`) {
		t.Fatalf("health body = %s", rr.Body.String())
	}
}

func TestStaticStylesheetIsServed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, commons.NewFixture())
	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestLandingServesAnonymousVisitors(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, commons.NewFixture())
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), routepath.Register) {
		t.Fatalf("landing missing register link: %q", rr.Body.String())
	}
}
