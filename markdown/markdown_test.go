package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestRenderHeading(t *testing.T) {
	got, err := Render([]byte("# Title\n\nBody text.\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, `<h1 id="title">Title</h1>`) {
		t.Errorf("heading not rendered with auto id: %q", got)
	}
	if !strings.Contains(got, "<p>Body text.</p>") {
		t.Errorf("paragraph not rendered: %q", got)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |\n"
	got, err := Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "<table>") {
		t.Errorf("table extension missing: %q", got)
	}
}

func TestRenderStrikethrough(t *testing.T) {
	got, err := Render([]byte("~~gone~~\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(got, "<del>gone</del>") {
		t.Errorf("strikethrough not rendered: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var b strings.Builder
	if err := Markdown("**bold**").Render(context.Background(), &b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(b.String(), "<strong>bold</strong>") {
		t.Errorf("component output = %q", b.String())
	}
}
