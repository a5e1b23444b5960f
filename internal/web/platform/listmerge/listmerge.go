// Package listmerge reconciles paginated poll summary lists for rendering.
//
// Topic pages accumulate summaries from multiple fetches (initial load, load
// more, background refresh). Naive concatenation produces duplicates and
// unstable ordering, so merging goes through an identity-keyed map with an
// explicit comparator instead.
package listmerge

import (
	"sort"
	"time"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

// Merge folds incoming summaries into existing ones and returns a
// deduplicated, stably ordered list.
//
// Identity is the summary id: an incoming item with the same id overwrites
// the existing one (last write wins). The result is ordered by created_at
// descending; equal timestamps break ties by descending id so repeated merges
// of the same inputs yield identical output. Merging with an empty list
// returns the other operand's content unchanged in value.
//
// Unparseable or missing created_at values sort as epoch 0 (oldest) rather
// than failing: the item keeps its place in the result, just not a
// chronologically meaningful one. Merge never panics for well-typed input.
func Merge(existing, incoming []commons.PollSummary) []commons.PollSummary {
	byID := make(map[string]commons.PollSummary, len(existing)+len(incoming))
	order := make([]string, 0, len(existing)+len(incoming))
	for _, item := range existing {
		if _, ok := byID[item.ID]; !ok {
			order = append(order, item.ID)
		}
		byID[item.ID] = item
	}
	for _, item := range incoming {
		if _, ok := byID[item.ID]; !ok {
			order = append(order, item.ID)
		}
		byID[item.ID] = item
	}

	merged := make([]commons.PollSummary, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		left := parseCreatedAt(merged[i].CreatedAt)
		right := parseCreatedAt(merged[j].CreatedAt)
		if !left.Equal(right) {
			return left.After(right)
		}
		return merged[i].ID > merged[j].ID
	})
	return merged
}

// parseCreatedAt reads a summary timestamp, treating malformed values as
// epoch 0. The tolerance is a documented policy choice: a bad timestamp from
// the backend must not break the whole list.
func parseCreatedAt(value string) time.Time {
	if value == "" {
		return time.Unix(0, 0).UTC()
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return parsed
}
