package devfolio

import "testing"

func tagged(slug string, tags ...string) ContentEntry {
	return ContentEntry{
		FrontMatter: FrontMatter{Title: slug, Tags: tags},
		Slug:        slug,
	}
}

func TestTagIndexDeduplicates(t *testing.T) {
	entries := []ContentEntry{
		tagged("a", "go", "web"),
		tagged("b", "go", "api"),
		tagged("c", "web"),
	}

	got := TagIndex(entries)

	if len(got) != 3 {
		t.Fatalf("TagIndex = %v, want 3 unique labels", got)
	}
	seen := map[string]bool{}
	for _, tag := range got {
		if seen[tag] {
			t.Errorf("duplicate label %q", tag)
		}
		seen[tag] = true
	}
}

// Mixed-case labels are distinct tags and both survive the index.
func TestTagIndexCaseSensitive(t *testing.T) {
	entries := []ContentEntry{
		tagged("a", "flutter", "dart"),
		tagged("b", "dart", "kotlin"),
		tagged("c", "Flutter"),
	}

	got := TagIndex(entries)

	if len(got) != 4 {
		t.Fatalf("TagIndex = %v, want 4 labels", got)
	}
	want := map[string]bool{"Flutter": true, "dart": true, "flutter": true, "kotlin": true}
	for _, tag := range got {
		if !want[tag] {
			t.Errorf("unexpected label %q", tag)
		}
		delete(want, tag)
	}
	for missing := range want {
		t.Errorf("label %q missing from index", missing)
	}
	// Collation order: both case variants sit between dart and kotlin.
	if got[0] != "dart" {
		t.Errorf("first label = %q, want %q", got[0], "dart")
	}
	if got[3] != "kotlin" {
		t.Errorf("last label = %q, want %q", got[3], "kotlin")
	}
}

func TestTagIndexDeterministic(t *testing.T) {
	forward := []ContentEntry{tagged("a", "go", "web"), tagged("b", "api")}
	backward := []ContentEntry{tagged("b", "api"), tagged("a", "web", "go")}

	x := TagIndex(forward)
	y := TagIndex(backward)

	if len(x) != len(y) {
		t.Fatalf("orders disagree: %v vs %v", x, y)
	}
	for i := range x {
		if x[i] != y[i] {
			t.Errorf("index differs at %d: %v vs %v", i, x, y)
		}
	}
}

func TestTagIndexEmpty(t *testing.T) {
	entries := []ContentEntry{tagged("a"), tagged("b")}

	if got := TagIndex(entries); len(got) != 0 {
		t.Errorf("TagIndex = %v, want empty", got)
	}
	if got := TagIndex(nil); len(got) != 0 {
		t.Errorf("TagIndex(nil) = %v, want empty", got)
	}
}

func TestTagIndexSkipsBlankLabels(t *testing.T) {
	entries := []ContentEntry{tagged("a", "go", "", "  ")}

	got := TagIndex(entries)

	if len(got) != 1 || got[0] != "go" {
		t.Errorf("TagIndex = %v, want [go]", got)
	}
}

func TestFilterByTagExactMatch(t *testing.T) {
	entries := []ContentEntry{
		tagged("a", "flutter"),
		tagged("b", "Flutter"),
		tagged("c", "dart"),
	}

	got := FilterByTag(entries, "flutter")
	if len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("FilterByTag(flutter) = %v, want only entry a", slugs(got))
	}

	got = FilterByTag(entries, "Flutter")
	if len(got) != 1 || got[0].Slug != "b" {
		t.Errorf("FilterByTag(Flutter) = %v, want only entry b", slugs(got))
	}

	got = FilterByTag(entries, "")
	if len(got) != 3 {
		t.Errorf("empty tag should return all entries, got %d", len(got))
	}

	got = FilterByTag(entries, "missing")
	if len(got) != 0 {
		t.Errorf("FilterByTag(missing) = %v, want none", slugs(got))
	}
}
