package topics

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/loader"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

func testService(gateway TopicGateway, cache *memCache) service {
	return service{
		gateway: gateway,
		cache:   cache,
		refresh: loader.New(0),
		now:     func() time.Time { return time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC) },
	}
}

func twoPageGateway() *fakeGateway {
	return &fakeGateway{pages: map[int]commons.SummaryPage{
		1: {
			Items: []commons.PollSummary{
				{ID: "p-a", Title: "Car-free Sundays", CreatedAt: "2026-04-01T10:00:00Z"},
				{ID: "p-b", Title: "Bus lane pilot", CreatedAt: "2026-03-20T10:00:00Z"},
			},
			HasMore: true,
		},
		2: {
			Items: []commons.PollSummary{
				{ID: "p-b", Title: "Bus lane pilot (amended)", CreatedAt: "2026-03-20T10:00:00Z"},
				{ID: "p-c", Title: "Bike parking at stations", CreatedAt: "2026-02-01T10:00:00Z"},
			},
			HasMore: false,
		},
	}}
}

func TestTopicPageMergesAcrossPages(t *testing.T) {
	t.Parallel()

	cache := newMemCache()
	svc := testService(twoPageGateway(), cache)
	ctx := context.Background()

	first, hasMore, err := svc.topicPage(ctx, "transit", 1)
	if err != nil {
		t.Fatalf("topicPage(1) error = %v", err)
	}
	if !hasMore || len(first) != 2 {
		t.Fatalf("page 1: items = %d hasMore = %v", len(first), hasMore)
	}

	second, hasMore, err := svc.topicPage(ctx, "transit", 2)
	if err != nil {
		t.Fatalf("topicPage(2) error = %v", err)
	}
	if hasMore {
		t.Fatalf("page 2 should be the last page")
	}
	// Three distinct polls, newest first, with the page-2 version of the
	// duplicate winning.
	if len(second) != 3 {
		t.Fatalf("merged items = %d, want 3", len(second))
	}
	wantOrder := []string{"p-a", "p-b", "p-c"}
	for i, want := range wantOrder {
		if second[i].ID != want {
			t.Fatalf("merged[%d] = %q, want %q", i, second[i].ID, want)
		}
	}
	if second[1].Title != "Bus lane pilot (amended)" {
		t.Fatalf("duplicate title = %q, want the later write", second[1].Title)
	}
	if !cache.has("topic:transit") {
		t.Fatalf("merged list should be cached")
	}
}

func TestTopicPageBlankSlugIsNotFound(t *testing.T) {
	t.Parallel()

	svc := testService(&fakeGateway{}, newMemCache())
	_, _, err := svc.topicPage(context.Background(), "  ", 1)
	var appErr apperrors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != apperrors.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestExpiredCacheEntriesAreIgnored(t *testing.T) {
	t.Parallel()

	cache := newMemCache()
	svc := testService(twoPageGateway(), cache)
	stale, err := json.Marshal([]commons.PollSummary{{ID: "p-old", Title: "Stale item", CreatedAt: "2025-01-01T00:00:00Z"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	cache.entries["topic:transit"] = webstorage.CacheEntry{
		CacheKey:     "topic:transit",
		Scope:        "topic",
		PayloadBytes: stale,
		// Expired an hour before the service's fixed clock.
		ExpiresAt: time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC),
	}

	items, _, err := svc.topicPage(context.Background(), "transit", 1)
	if err != nil {
		t.Fatalf("topicPage() error = %v", err)
	}
	for _, item := range items {
		if item.ID == "p-old" {
			t.Fatalf("expired cache content leaked into the page")
		}
	}
}

func TestScheduleRefreshSupersededFetchDoesNotApply(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	gateway := &fakeGateway{blockSlug: "alpha", release: release}
	cache := newMemCache()
	svc := testService(gateway, cache)

	alphaDone := svc.scheduleRefresh("alpha", "")
	// Give the alpha fetch time to start before superseding it.
	time.Sleep(20 * time.Millisecond)
	betaDone := svc.scheduleRefresh("beta", "")
	<-betaDone

	close(release)
	<-alphaDone

	if cache.has("topic:alpha") {
		t.Fatalf("superseded alpha fetch must not write its result")
	}
	if !cache.has("topic:beta") {
		t.Fatalf("beta refresh should have applied")
	}
}

func TestTopicPageWithoutCacheStillServes(t *testing.T) {
	t.Parallel()

	svc := service{gateway: twoPageGateway(), refresh: loader.New(0), now: time.Now}
	items, _, err := svc.topicPage(context.Background(), "transit", 1)
	if err != nil {
		t.Fatalf("topicPage() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
}
