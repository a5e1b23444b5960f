package listmerge

import (
	"reflect"
	"testing"

	"github.com/kaarlekaarle/commons-web/internal/commons"
)

func summary(id, createdAt string) commons.PollSummary {
	return commons.PollSummary{ID: id, Title: "title " + id, CreatedAt: createdAt}
}

func ids(items []commons.PollSummary) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	t.Parallel()

	base := []commons.PollSummary{
		summary("b", "2025-03-02T10:00:00Z"),
		summary("a", "2025-03-01T10:00:00Z"),
	}
	merged := Merge(base, nil)
	again := Merge(merged, []commons.PollSummary{})
	if !reflect.DeepEqual(merged, again) {
		t.Fatalf("Merge(merged, []) = %v, want %v", ids(again), ids(merged))
	}
}

func TestMergeDeduplicatesLastWriteWins(t *testing.T) {
	t.Parallel()

	existing := []commons.PollSummary{summary("a", "2025-03-01T10:00:00Z")}
	incoming := []commons.PollSummary{
		{ID: "a", Title: "updated title", CreatedAt: "2025-03-01T10:00:00Z", UpdatedAt: "2025-03-03T10:00:00Z"},
	}
	merged := Merge(existing, incoming)
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Title != "updated title" {
		t.Fatalf("merged[0].Title = %q, want incoming to win", merged[0].Title)
	}
}

func TestMergeDeduplicatesInternalDuplicates(t *testing.T) {
	t.Parallel()

	incoming := []commons.PollSummary{
		{ID: "a", Title: "first", CreatedAt: "2025-03-01T10:00:00Z"},
		{ID: "a", Title: "last", CreatedAt: "2025-03-01T10:00:00Z"},
	}
	merged := Merge(nil, incoming)
	if len(merged) != 1 {
		t.Fatalf("len(merged) = %d, want 1", len(merged))
	}
	if merged[0].Title != "last" {
		t.Fatalf("merged[0].Title = %q, want last occurrence", merged[0].Title)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	a := []commons.PollSummary{
		summary("x", "2025-03-05T10:00:00Z"),
		summary("y", "2025-03-04T10:00:00Z"),
	}
	b := []commons.PollSummary{
		summary("z", "2025-03-06T10:00:00Z"),
		summary("x", "2025-03-05T10:00:00Z"),
	}
	first := Merge(a, b)
	second := Merge(a, b)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated merge differs: %v vs %v", ids(first), ids(second))
	}
}

func TestMergeSortsByCreatedAtDescThenIDDesc(t *testing.T) {
	t.Parallel()

	merged := Merge(nil, []commons.PollSummary{
		summary("a", "2025-03-01T10:00:00Z"),
		summary("c", "2025-03-02T10:00:00Z"),
		summary("b", "2025-03-02T10:00:00Z"),
	})
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(ids(merged), want) {
		t.Fatalf("order = %v, want %v", ids(merged), want)
	}
}

func TestMergeToleratesMalformedTimestamps(t *testing.T) {
	t.Parallel()

	merged := Merge(
		[]commons.PollSummary{summary("good", "2025-03-01T10:00:00Z")},
		[]commons.PollSummary{summary("broken", "not-a-date")},
	)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	// Malformed timestamps sort as epoch 0, placing the item last.
	if merged[1].ID != "broken" {
		t.Fatalf("merged[1].ID = %q, want %q", merged[1].ID, "broken")
	}
}

func TestMergePreservesValuesFromBothOperands(t *testing.T) {
	t.Parallel()

	a := []commons.PollSummary{summary("a", "2025-03-01T10:00:00Z")}
	b := []commons.PollSummary{summary("b", "2025-03-02T10:00:00Z")}
	merged := Merge(a, b)
	want := []string{"b", "a"}
	if !reflect.DeepEqual(ids(merged), want) {
		t.Fatalf("order = %v, want %v", ids(merged), want)
	}
}
