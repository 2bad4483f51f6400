package devfolio

import (
	"testing"
	"time"
)

func entry(slug string, date RawDate, draft bool) ContentEntry {
	return ContentEntry{
		FrontMatter: FrontMatter{Title: slug, Date: date, Draft: draft},
		Slug:        slug,
	}
}

func TestNormalizeExcludesDrafts(t *testing.T) {
	entries := []ContentEntry{
		entry("published", StringDate("2024-01-01"), false),
		entry("draft", StringDate("2025-01-01"), true),
	}

	got, _ := Normalize(entries)

	if len(got) != 1 {
		t.Fatalf("Normalize kept %d entries, want 1", len(got))
	}
	if got[0].Slug != "published" {
		t.Errorf("kept entry = %q, want %q", got[0].Slug, "published")
	}
	for _, e := range got {
		if e.Draft {
			t.Errorf("draft entry %q leaked into output", e.Slug)
		}
	}
}

func TestNormalizeDatePrecedence(t *testing.T) {
	native := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date RawDate
		want time.Time
	}{
		{"native value used directly", NativeDate(native), native},
		{"string parsed", StringDate("2024-06-15"), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"verbose string parsed", StringDate("June 15, 2024"), time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"absent defaults to epoch", RawDate{}, epoch},
		{"unparseable defaults to epoch", StringDate("not a date"), epoch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Normalize([]ContentEntry{entry("e", tt.date, false)})
			if len(got) != 1 {
				t.Fatalf("got %d entries, want 1", len(got))
			}
			if !got[0].Published.Equal(tt.want) {
				t.Errorf("Published = %v, want %v", got[0].Published, tt.want)
			}
		})
	}
}

func TestNormalizeSortsNewestFirst(t *testing.T) {
	entries := []ContentEntry{
		entry("old", StringDate("2024-01-01"), false),
		entry("new", StringDate("2024-06-15"), false),
		entry("undated", RawDate{}, false),
		entry("middle", StringDate("2024-03-01"), false),
	}

	got, _ := Normalize(entries)

	wantOrder := []string{"new", "middle", "old", "undated"}
	for i, slug := range wantOrder {
		if got[i].Slug != slug {
			t.Fatalf("position %d = %q, want %q (full order %v)", i, got[i].Slug, slug, slugs(got))
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Published.Before(got[i].Published) {
			t.Errorf("entries %q and %q out of order", got[i-1].Slug, got[i].Slug)
		}
	}
}

func TestNormalizeWarnings(t *testing.T) {
	entries := []ContentEntry{
		entry("fine", StringDate("2024-01-01"), false),
		entry("missing", RawDate{}, false),
		entry("garbled", StringDate("yesterday-ish"), false),
	}

	got, warns := Normalize(entries)

	if len(got) != 3 {
		t.Fatalf("warnings must not drop entries: got %d, want 3", len(got))
	}
	if len(warns) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warns), warns)
	}
	seen := map[string]bool{}
	for _, w := range warns {
		seen[w.Slug] = true
		if w.Detail == "" {
			t.Errorf("warning for %q has no detail", w.Slug)
		}
	}
	if !seen["missing"] || !seen["garbled"] {
		t.Errorf("warnings = %v, want missing and garbled flagged", warns)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	entries := []ContentEntry{
		entry("a", StringDate("2024-01-01"), false),
		entry("b", RawDate{}, false),
		entry("c", StringDate("2024-06-15"), false),
		entry("d", RawDate{}, false),
	}

	first, _ := Normalize(entries)
	second, _ := Normalize(entries)

	if len(first) != len(second) {
		t.Fatalf("runs disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Slug != second[i].Slug {
			t.Errorf("position %d differs between runs: %q vs %q", i, first[i].Slug, second[i].Slug)
		}
	}
}

func TestNormalizeAllKeepsDrafts(t *testing.T) {
	entries := []ContentEntry{
		entry("published", StringDate("2024-01-01"), false),
		entry("draft", StringDate("2025-01-01"), true),
	}

	got, _ := NormalizeAll(entries)

	if len(got) != 2 {
		t.Fatalf("NormalizeAll kept %d entries, want 2", len(got))
	}
	if got[0].Slug != "draft" {
		t.Errorf("first entry = %q, want the newer draft first", got[0].Slug)
	}
}

// The listing scenario: three published entries plus a draft, page size 9.
func TestNormalizeListingScenario(t *testing.T) {
	entries := []ContentEntry{
		entry("jan", StringDate("2024-01-01"), false),
		entry("jun", StringDate("2024-06-15"), false),
		entry("hidden", StringDate("2025-01-01"), true),
		entry("mar", StringDate("2024-03-20"), false),
	}

	got, _ := Normalize(entries)
	page := Paginate(got, 9, 1)

	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0].Slug != "jun" || got[1].Slug != "mar" || got[2].Slug != "jan" {
		t.Errorf("order = %v, want [jun mar jan]", slugs(got))
	}
	if page.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.TotalPages)
	}
}

func slugs(entries []ContentEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Slug
	}
	return out
}
