package topics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/web/platform/loader"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/modulehandler"
	"github.com/kaarlekaarle/commons-web/internal/web/routepath"
)

func testMux(gateway TopicGateway, cache *memCache) *http.ServeMux {
	mux := http.NewServeMux()
	svc := service{
		gateway: gateway,
		cache:   cache,
		refresh: loader.New(0),
		now:     func() time.Time { return time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC) },
	}
	registerRoutes(mux, newHandlers(svc, modulehandler.NewTestBase()))
	return mux
}

func TestHandleIndexRendersTopicGrid(t *testing.T) {
	t.Parallel()

	mux := testMux(&fakeGateway{}, newMemCache())
	req := httptest.NewRequest(http.MethodGet, routepath.AppTopics, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Transit") || !strings.Contains(body, "Housing") {
		t.Fatalf("body missing topics: %q", body)
	}
	if !strings.Contains(body, routepath.AppTopic("transit")) {
		t.Fatalf("body missing topic link")
	}
}

func TestHandleDetailRendersFirstPageWithLoadMore(t *testing.T) {
	t.Parallel()

	mux := testMux(twoPageGateway(), newMemCache())
	req := httptest.NewRequest(http.MethodGet, routepath.AppTopic("transit"), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Car-free Sundays") {
		t.Fatalf("body missing first page item: %q", body)
	}
	if !strings.Contains(body, routepath.AppTopicItems("transit")+"?page=2") {
		t.Fatalf("body missing load-more url")
	}
}

func TestItemsFragmentMergesWithEarlierPage(t *testing.T) {
	t.Parallel()

	cache := newMemCache()
	mux := testMux(twoPageGateway(), cache)

	first := httptest.NewRequest(http.MethodGet, routepath.AppTopic("transit"), nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("detail status = %d", rr.Code)
	}

	second := httptest.NewRequest(http.MethodGet, routepath.AppTopicItems("transit")+"?page=2", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, second)
	if rr.Code != http.StatusOK {
		t.Fatalf("items status = %d", rr.Code)
	}
	body := rr.Body.String()
	// The fragment carries the full merged list: page-1 content survives,
	// the overlapping poll appears once in its amended form.
	if !strings.Contains(body, "Car-free Sundays") {
		t.Fatalf("merged fragment missing page-1 item: %q", body)
	}
	if !strings.Contains(body, "Bike parking at stations") {
		t.Fatalf("merged fragment missing page-2 item")
	}
	if strings.Count(body, "Bus lane pilot") != 1 {
		t.Fatalf("duplicate poll rendered %d times, want once", strings.Count(body, "Bus lane pilot"))
	}
	if !strings.Contains(body, "Bus lane pilot (amended)") {
		t.Fatalf("later write should win for the duplicate")
	}
	if strings.Contains(body, `hx-get="`+routepath.AppTopicItems("transit")+`?page=3"`) {
		t.Fatalf("last page must not offer load-more")
	}
}

func TestItemsFragmentIgnoresBadPageParam(t *testing.T) {
	t.Parallel()

	mux := testMux(twoPageGateway(), newMemCache())
	req := httptest.NewRequest(http.MethodGet, routepath.AppTopicItems("transit")+"?page=banana", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Car-free Sundays") {
		t.Fatalf("bad page should fall back to page 1: %q", rr.Body.String())
	}
}
