package devfolio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupCache(t *testing.T) (*EntryCache, string) {
	t.Helper()
	s := writeContent(t, map[string]string{
		"blog/first.md":   "---\ntitle: First\ndate: 2024-01-01\ntags: [go]\n---\nBody.\n",
		"blog/second.md":  "---\ntitle: Second\ndate: 2024-06-15\ntags: [go, web]\n---\nBody.\n",
		"blog/hidden.md":  "---\ntitle: Hidden\ndate: 2025-01-01\ndraft: true\ntags: [secret]\n---\nBody.\n",
		"projects/app.md": "---\ntitle: App\ndate: 2024-02-01\ntags: [Go]\n---\nBody.\n",
	})
	return NewEntryCache(s, time.Minute), s.Root()
}

func TestCachePostsExcludeDrafts(t *testing.T) {
	c, _ := setupCache(t)

	posts, err := c.Posts("")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Posts = %v, want 2 published entries", slugs(posts))
	}
	if posts[0].Slug != "second" || posts[1].Slug != "first" {
		t.Errorf("order = %v, want newest first", slugs(posts))
	}
}

func TestCachePostsByTag(t *testing.T) {
	c, _ := setupCache(t)

	posts, err := c.Posts("web")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "second" {
		t.Errorf("Posts(web) = %v, want [second]", slugs(posts))
	}

	// Tag match is exact: the project's "Go" is not the blog's "go",
	// and draft tags never reach the index.
	tags, err := c.PostTags()
	if err != nil {
		t.Fatalf("PostTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "web" {
		t.Errorf("PostTags = %v, want [go web]", tags)
	}
}

func TestCacheProjectTags(t *testing.T) {
	c, _ := setupCache(t)

	tags, err := c.ProjectTags()
	if err != nil {
		t.Fatalf("ProjectTags: %v", err)
	}
	if len(tags) != 1 || tags[0] != "Go" {
		t.Errorf("ProjectTags = %v, want [Go]", tags)
	}
}

func TestCachePostLookup(t *testing.T) {
	c, _ := setupCache(t)

	got, err := c.Post("first")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got.Title != "First" {
		t.Errorf("Title = %q", got.Title)
	}

	if _, err := c.Post("hidden"); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft lookup should return ErrNotFound, got %v", err)
	}
	if _, err := c.Post("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing lookup should return ErrNotFound, got %v", err)
	}
}

func TestCacheAllEntriesIncludesDrafts(t *testing.T) {
	c, _ := setupCache(t)

	all, err := c.AllEntries()
	if err != nil {
		t.Fatalf("AllEntries: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("AllEntries = %v, want 4", slugs(all))
	}
	found := false
	for _, e := range all {
		if e.Slug == "hidden" && e.Draft {
			found = true
		}
	}
	if !found {
		t.Error("draft entry missing from preview listing")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c, root := setupCache(t)

	before, err := c.Posts("")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(before) != 2 {
		t.Fatalf("precondition: %d posts", len(before))
	}

	newPost := "---\ntitle: Third\ndate: 2024-08-01\n---\nBody.\n"
	if err := os.WriteFile(filepath.Join(root, "blog", "third.md"), []byte(newPost), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Still cached: the TTL has not elapsed.
	cached, err := c.Posts("")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(cached) != 2 {
		t.Errorf("cache reloaded early: %v", slugs(cached))
	}

	c.Invalidate()
	after, err := c.Posts("")
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if len(after) != 3 || after[0].Slug != "third" {
		t.Errorf("after invalidate = %v, want third first of 3", slugs(after))
	}
}

func TestCacheWarnings(t *testing.T) {
	s := writeContent(t, map[string]string{
		"blog/ok.md":     "---\ntitle: OK\ndate: 2024-01-01\n---\nBody.\n",
		"blog/nodate.md": "---\ntitle: No Date\n---\nBody.\n",
		"projects/p.md":  "---\ntitle: P\ndate: 2024-01-01\n---\nBody.\n",
	})
	c := NewEntryCache(s, time.Minute)

	warns, err := c.Warnings()
	if err != nil {
		t.Fatalf("Warnings: %v", err)
	}
	if len(warns) != 1 || warns[0].Slug != "nodate" {
		t.Errorf("Warnings = %v, want one for nodate", warns)
	}
}

func TestCacheLoadFailurePropagates(t *testing.T) {
	// A store whose blog collection is missing must fail reads, not
	// serve partial data.
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "projects"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s, err := NewContentStore(root)
	if err != nil {
		t.Fatalf("NewContentStore: %v", err)
	}
	c := NewEntryCache(s, time.Minute)

	if _, err := c.Posts(""); err == nil {
		t.Fatal("expected load error for missing blog collection")
	}
}
