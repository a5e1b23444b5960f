package topics

import (
	"context"
	"sync"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// fakeGateway implements TopicGateway with scripted pages per page number.
// A slug listed in blockSlug parks ListLabelPolls until release is closed,
// which lets tests script a late response.
type fakeGateway struct {
	mu        sync.Mutex
	labels    []commons.Label
	labelsErr error
	pages     map[int]commons.SummaryPage
	pagesErr  error
	calls     []int
	blockSlug string
	release   chan struct{}
}

var _ TopicGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListLabels(context.Context) ([]commons.Label, error) {
	if f.labelsErr != nil {
		return nil, f.labelsErr
	}
	if f.labels == nil {
		return []commons.Label{
			{ID: "l1", Name: "Transit", Slug: "transit"},
			{ID: "l2", Name: "Housing", Slug: "housing"},
		}, nil
	}
	return f.labels, nil
}

func (f *fakeGateway) ListLabelPolls(_ context.Context, slug string, page int) (commons.SummaryPage, error) {
	f.mu.Lock()
	blocked := slug == f.blockSlug
	release := f.release
	f.calls = append(f.calls, page)
	f.mu.Unlock()
	if blocked && release != nil {
		<-release
	}
	if f.pagesErr != nil {
		return commons.SummaryPage{}, f.pagesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if result, ok := f.pages[page]; ok {
		return result, nil
	}
	return commons.SummaryPage{Items: []commons.PollSummary{{
		ID:        "sum-" + slug,
		Title:     "Summary for " + slug,
		CreatedAt: "2026-04-01T10:00:00Z",
	}}}, nil
}

// memCache is an in-memory webstorage.Store covering only the cache surface.
type memCache struct {
	mu      sync.Mutex
	entries map[string]webstorage.CacheEntry
}

var _ webstorage.Store = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]webstorage.CacheEntry)}
}

func (m *memCache) Close() error { return nil }

func (m *memCache) PutSession(context.Context, webstorage.Session) error { return nil }

func (m *memCache) GetSession(context.Context, string) (webstorage.Session, bool, error) {
	return webstorage.Session{}, false, nil
}

func (m *memCache) DeleteSession(context.Context, string) error { return nil }

func (m *memCache) DeleteExpiredSessions(context.Context, time.Time) error { return nil }

func (m *memCache) GetCacheEntry(_ context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[cacheKey]
	return entry, ok, nil
}

func (m *memCache) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.CacheKey] = entry
	return nil
}

func (m *memCache) DeleteCacheEntry(_ context.Context, cacheKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, cacheKey)
	return nil
}

func (m *memCache) has(cacheKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[cacheKey]
	return ok
}
