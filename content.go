package devfolio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/oyilmaz/devfolio/markdown"
)

// ContentStore reads entries from a directory tree, one subdirectory per
// collection (content/blog, content/projects, ...). The store is read-only;
// entries are immutable once loaded.
type ContentStore struct {
	root string
}

// NewContentStore opens the content store rooted at dir. The directory must
// exist; a missing store is a configuration error, not an empty site.
func NewContentStore(dir string) (*ContentStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("devfolio: open content store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("devfolio: content store %s is not a directory", dir)
	}
	return &ContentStore{root: dir}, nil
}

// Root returns the content store's root directory.
func (s *ContentStore) Root() string {
	return s.root
}

// LoadCollection returns every entry of the named collection, with front
// matter parsed and the body rendered. No filtering or ordering happens here.
// Any unreadable file or malformed front matter fails the whole load; there
// is no partial-result mode.
func (s *ContentStore) LoadCollection(name string) ([]ContentEntry, error) {
	dir := filepath.Join(s.root, name)
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("devfolio: load collection %q: %w", name, err)
	}

	var entries []ContentEntry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, f.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("devfolio: read %s: %w", path, err)
		}

		var fm FrontMatter
		body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
		if err != nil {
			return nil, fmt.Errorf("devfolio: front matter in %s: %w", path, err)
		}

		html, err := markdown.Render(body)
		if err != nil {
			return nil, fmt.Errorf("devfolio: render %s: %w", path, err)
		}

		slug := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
		if fm.Title == "" {
			fm.Title = titleFromSlug(slug)
		}
		entries = append(entries, ContentEntry{
			FrontMatter: fm,
			Slug:        slug,
			Collection:  name,
			Link:        "/" + name + "/" + slug + "/",
			Content:     html,
		})
	}
	return entries, nil
}

// titleFromSlug derives a display title from a filename-based slug
// ("intro-to-dart" -> "Intro To Dart") for files without a title field.
func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
