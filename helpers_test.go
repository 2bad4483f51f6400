package devfolio

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces  Around  ", "spaces-around"},
		{"Already-Slugged", "already-slugged"},
		{"Ünïcode & Symbols!", "n-code-symbols"},
		{"trailing punctuation?!", "trailing-punctuation"},
		{"2024 Year In Review", "2024-year-in-review"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"blog", "post"}, "https://example.com/blog/post/"},
		{"https://example.com/", []string{"projects"}, "https://example.com/projects/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"go", "", "  ", "web"})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("FilterEmpty = %v, want [go web]", got)
	}
}

func TestToViewDates(t *testing.T) {
	dated := ContentEntry{
		FrontMatter: FrontMatter{Title: "Dated"},
		Slug:        "dated",
		Published:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	v := toView(dated)
	if v.Date != "Jun 15, 2024" {
		t.Errorf("Date = %q, want %q", v.Date, "Jun 15, 2024")
	}
	if v.ISODate != "2024-06-15" {
		t.Errorf("ISODate = %q, want %q", v.ISODate, "2024-06-15")
	}

	// Epoch fallback renders dateless instead of advertising 1970.
	undated := ContentEntry{Slug: "undated", Published: epoch}
	v = toView(undated)
	if v.Date != "" || v.ISODate != "" {
		t.Errorf("epoch entry rendered dates %q / %q, want empty", v.Date, v.ISODate)
	}
}

func TestListingURL(t *testing.T) {
	tests := []struct {
		page int
		tag  string
		want string
	}{
		{1, "", "/blog/"},
		{2, "", "/blog/?page=2"},
		{1, "go", "/blog/?tag=go"},
		{3, "web dev", "/blog/?page=3&tag=web+dev"},
	}
	for _, tt := range tests {
		if got := listingURL(tt.page, tt.tag); got != tt.want {
			t.Errorf("listingURL(%d, %q) = %q, want %q", tt.page, tt.tag, got, tt.want)
		}
	}
}
