package activity

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

type fakeGateway struct {
	items   []commons.ActivityItem
	listErr error
}

var _ ActivityGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListActivity(context.Context) ([]commons.ActivityItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func testMux(gateway ActivityGateway) *http.ServeMux {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(gateway), modulehandler.NewTestBase()))
	return mux
}

func TestHandleIndexRendersFeed(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{items: []commons.ActivityItem{
		{
			ID:        "a1",
			Kind:      "vote",
			Actor:     commons.User{Username: "alice"},
			PollID:    "poll-1",
			PollTitle: "Protected bike lanes on Main Street",
			CreatedAt: time.Now().Add(-time.Hour),
		},
		{
			ID:    "a2",
			Kind:  "unknown_kind",
			Actor: commons.User{Username: "bob"},
		},
	}}
	mux := testMux(gateway)
	req := httptest.NewRequest(http.MethodGet, routepath.AppActivity, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "alice") {
		t.Fatalf("body missing actor: %q", body)
	}
	if !strings.Contains(body, routepath.AppProposal("poll-1")) {
		t.Fatalf("body missing poll link")
	}
	// Unknown kinds fall back to the raw kind rather than disappearing.
	if !strings.Contains(body, "unknown_kind") {
		t.Fatalf("body missing fallback kind")
	}
}

func TestHandleIndexEmptyFeed(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{})
	req := httptest.NewRequest(http.MethodGet, routepath.AppActivity, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "empty-state") {
		t.Fatalf("body missing empty state: %q", rr.Body.String())
	}
}

func TestHandleIndexBackendFailure(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{listErr: stderrors.New("feed down")})
	req := httptest.NewRequest(http.MethodGet, routepath.AppActivity, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
