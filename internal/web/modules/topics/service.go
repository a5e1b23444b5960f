package topics

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
	apperrors "github.com/kaarlekaarle/commons-web/internal/web/platform/errors"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/listmerge"
	"github.com/kaarlekaarle/commons-web/internal/web/platform/loader"
	webstorage "github.com/kaarlekaarle/commons-web/internal/web/storage"
)

// cacheTTL bounds how long a merged topic list is trusted without a refresh.
const cacheTTL = 5 * time.Minute

const cacheScope = "topic"

// TopicGateway is the narrow backend surface this module depends on.
type TopicGateway interface {
	ListLabels(ctx context.Context) ([]commons.Label, error)
	ListLabelPolls(ctx context.Context, slug string, page int) (commons.SummaryPage, error)
}

type service struct {
	gateway TopicGateway
	cache   webstorage.Store
	refresh *loader.Loader
	now     func() time.Time
}

func newService(gateway TopicGateway, cache webstorage.Store) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{
		gateway: gateway,
		cache:   cache,
		refresh: loader.New(loader.DefaultDebounce),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s service) listTopics(ctx context.Context) ([]commons.Label, error) {
	labels, err := s.gateway.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []commons.Label{}
	}
	return labels, nil
}

// topicPage loads one backend page for a topic and folds it into the merged
// list accumulated so far. Identity-keyed merging keeps the result free of
// duplicates and stably ordered no matter how pages interleave with
// background refreshes.
func (s service) topicPage(ctx context.Context, slug string, page int) ([]commons.PollSummary, bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, false, apperrors.E(apperrors.KindNotFound, "topic slug is required")
	}
	if page < 1 {
		page = 1
	}
	fetched, err := s.gateway.ListLabelPolls(ctx, slug, page)
	if err != nil {
		return nil, false, err
	}
	merged := listmerge.Merge(s.cachedSummaries(ctx, slug), fetched.Items)
	s.storeSummaries(ctx, slug, merged)
	return merged, fetched.HasMore, nil
}

// scheduleRefresh re-fetches the first page of a topic in the background and
// folds it into the cache. The loader guarantees that switching topics
// cancels the older fetch before it can apply.
func (s service) scheduleRefresh(slug string, token string) <-chan struct{} {
	slug = strings.TrimSpace(slug)
	if slug == "" || s.cache == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.refresh.Load(slug, func(ctx context.Context) (func(), error) {
		if token != "" {
			ctx = commons.WithToken(ctx, token)
		}
		fetched, err := s.gateway.ListLabelPolls(ctx, slug, 1)
		if err != nil {
			return nil, err
		}
		return func() {
			background := context.WithoutCancel(ctx)
			merged := listmerge.Merge(s.cachedSummaries(background, slug), fetched.Items)
			s.storeSummaries(background, slug, merged)
		}, nil
	})
}

func (s service) cachedSummaries(ctx context.Context, slug string) []commons.PollSummary {
	if s.cache == nil {
		return nil
	}
	entry, ok, err := s.cache.GetCacheEntry(ctx, cacheKey(slug))
	if err != nil || !ok {
		return nil
	}
	if !entry.ExpiresAt.IsZero() && !entry.ExpiresAt.After(s.now()) {
		_ = s.cache.DeleteCacheEntry(ctx, cacheKey(slug))
		return nil
	}
	var items []commons.PollSummary
	if err := json.Unmarshal(entry.PayloadBytes, &items); err != nil {
		return nil
	}
	return items
}

func (s service) storeSummaries(ctx context.Context, slug string, items []commons.PollSummary) {
	if s.cache == nil || len(items) == 0 {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	now := s.now()
	// Cache writes are best-effort; the page already has its data.
	_ = s.cache.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     cacheKey(slug),
		Scope:        cacheScope,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(cacheTTL),
	})
}

func cacheKey(slug string) string {
	return cacheScope + ":" + slug
}
