package devfolio

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/oyilmaz/devfolio/views"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// toView converts a pipeline entry into its display shape. Entries whose
// date fell back to epoch zero render with no date rather than "Jan 1, 1970".
func toView(e ContentEntry) views.Entry {
	v := views.Entry{
		Slug:     e.Slug,
		Title:    e.Title,
		Tags:     e.Tags,
		Summary:  e.Summary,
		Category: e.Category,
		Link:     e.Link,
		Cover:    e.Cover,
		Content:  e.Content,
		Draft:    e.Draft,
	}
	if !e.Published.Equal(epoch) {
		v.Date = e.Published.Format("Jan 2, 2006")
		v.ISODate = e.Published.Format("2006-01-02")
	}
	return v
}

func toViewList(entries []ContentEntry) []views.Entry {
	out := make([]views.Entry, len(entries))
	for i, e := range entries {
		out[i] = toView(e)
	}
	return out
}

func toViewPage(p Page, activeTag string) views.Page {
	vp := views.Page{
		Number:     p.Number,
		TotalPages: p.TotalPages,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		Entries:    toViewList(p.Entries),
	}
	if vp.HasPrev {
		vp.PrevURL = listingURL(p.Number-1, activeTag)
	}
	if vp.HasNext {
		vp.NextURL = listingURL(p.Number+1, activeTag)
	}
	return vp
}

func listingURL(page int, tag string) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if tag != "" {
		q.Set("tag", tag)
	}
	if len(q) == 0 {
		return "/blog/"
	}
	return "/blog/?" + q.Encode()
}
