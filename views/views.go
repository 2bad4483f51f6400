// Package views provides the default templ components for a devfolio site
// plus the helpers user-supplied templates build on. Sites that want full
// control pass their own components through ViewFuncs instead.
package views

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// component wraps an HTML-building function as a templ.Component.
func component(f func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		f(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// statsBeacon reports the viewed path once per page load. The endpoint
// ignores unknown paths, so this is safe to ship on every page.
const statsBeacon = `<script>
if (navigator.sendBeacon) {
  navigator.sendBeacon("/api/stats/hit", new URLSearchParams({path: location.pathname}));
}
</script>`

func layout(b *strings.Builder, site Site, title string, body func(*strings.Builder)) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/>")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + esc(title) + "</title>")
	if site.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + esc(site.Description) + "\"/>")
	}
	b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\"/>")
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
	b.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(site) + `</script>`)
	b.WriteString("</head><body>")
	b.WriteString("<header><nav>")
	b.WriteString("<a href=\"/\">" + esc(site.Name) + "</a> ")
	b.WriteString("<a href=\"/blog/\">Blog</a> ")
	b.WriteString("<a href=\"/projects/\">Projects</a>")
	b.WriteString("</nav></header><main>")
	body(b)
	b.WriteString("</main><footer><p>" + esc(site.Author) + "</p></footer>")
	b.WriteString(statsBeacon)
	b.WriteString("</body></html>")
}

func entryCard(b *strings.Builder, e Entry) {
	b.WriteString("<article class=\"entry-card\">")
	if e.Cover != "" {
		b.WriteString("<img src=\"" + esc(e.Cover) + "\" alt=\"\" loading=\"lazy\"/>")
	}
	b.WriteString("<h2><a href=\"" + esc(e.Link) + "\">" + esc(e.Title) + "</a></h2>")
	if e.Date != "" {
		b.WriteString("<time datetime=\"" + esc(e.ISODate) + "\">" + esc(e.Date) + "</time>")
	}
	if e.Summary != "" {
		b.WriteString("<p>" + esc(e.Summary) + "</p>")
	}
	tagPills(b, e.Tags, "")
	b.WriteString("</article>")
}

func tagPills(b *strings.Builder, tags []string, active string) {
	if len(tags) == 0 {
		return
	}
	b.WriteString("<ul class=\"tags\">")
	for _, t := range tags {
		class := "tag"
		if t == active && active != "" {
			class = "tag tag-active"
		}
		b.WriteString("<li class=\"" + class + "\"><a href=\"/blog/?tag=" + PathEscape(t) + "\">" + esc(t) + "</a></li>")
	}
	b.WriteString("</ul>")
}

func pageNav(b *strings.Builder, page Page, activeTag string) {
	if page.TotalPages <= 1 {
		return
	}
	b.WriteString("<nav class=\"pagination\">")
	if page.HasPrev {
		b.WriteString("<a rel=\"prev\" href=\"" + pageURL(page.Number-1, activeTag) + "\">Prev</a>")
	} else {
		b.WriteString("<span class=\"disabled\">Prev</span>")
	}
	b.WriteString("<span>" + strconv.Itoa(page.Number) + " / " + strconv.Itoa(page.TotalPages) + "</span>")
	if page.HasNext {
		b.WriteString("<a rel=\"next\" href=\"" + pageURL(page.Number+1, activeTag) + "\">Next</a>")
	} else {
		b.WriteString("<span class=\"disabled\">Next</span>")
	}
	b.WriteString("</nav>")
}

func pageURL(n int, tag string) string {
	u := "/blog/?page=" + strconv.Itoa(n)
	if tag != "" {
		u += "&tag=" + PathEscape(tag)
	}
	return u
}

// Home renders the landing page: recent posts plus a projects teaser.
func Home(site Site, posts, projects []Entry) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, site.Name, func(b *strings.Builder) {
			b.WriteString("<section><h1>" + esc(site.Name) + "</h1>")
			if site.Description != "" {
				b.WriteString("<p>" + esc(site.Description) + "</p>")
			}
			b.WriteString("</section><section><h2>Latest posts</h2>")
			for _, e := range posts {
				entryCard(b, e)
			}
			b.WriteString("</section><section><h2>Projects</h2>")
			for _, e := range projects {
				entryCard(b, e)
			}
			b.WriteString("</section>")
		})
	})
}

// Blog renders the server-paginated blog listing.
func Blog(site Site, page Page, activeTag string, tags []string) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Blog — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Blog</h1>")
			tagPills(b, tags, activeTag)
			blogSection(b, page, activeTag)
		})
	})
}

// BlogSection renders just the entry list and pagination, for partial swaps.
func BlogSection(page Page, activeTag string) templ.Component {
	return component(func(b *strings.Builder) {
		blogSection(b, page, activeTag)
	})
}

func blogSection(b *strings.Builder, page Page, activeTag string) {
	b.WriteString("<section id=\"blog-list\">")
	if len(page.Entries) == 0 {
		b.WriteString("<p>No posts here.</p>")
	}
	for _, e := range page.Entries {
		entryCard(b, e)
	}
	b.WriteString("</section>")
	pageNav(b, page, activeTag)
}

// Post renders a single article with related-entry suggestions.
func Post(site Site, e Entry, related []Entry) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, e.Title+" — "+site.Name, func(b *strings.Builder) {
			b.WriteString(`<script type="application/ld+json">` + BlogPostingJsonLD(site, e) + `</script>`)
			b.WriteString("<article><h1>" + esc(e.Title) + "</h1>")
			if e.Date != "" {
				b.WriteString("<time datetime=\"" + esc(e.ISODate) + "\">" + esc(e.Date) + "</time>")
			}
			tagPills(b, e.Tags, "")
			// Content is trusted HTML produced by the site's own renderer.
			b.WriteString(e.Content)
			b.WriteString("</article>")
			if len(related) > 0 {
				b.WriteString("<aside><h2>Related</h2><ul>")
				for _, r := range related {
					b.WriteString("<li><a href=\"" + esc(r.Link) + "\">" + esc(r.Title) + "</a></li>")
				}
				b.WriteString("</ul></aside>")
			}
		})
	})
}

// Projects renders the client-filtered project listing. The full published
// dataset and tag index are inlined as JSON; filter.js re-filters and
// re-paginates in the browser without further requests.
func Projects(site Site, entries []Entry, dataJSON string) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Projects — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Projects</h1>")
			b.WriteString("<div id=\"project-tags\"></div>")
			b.WriteString("<section id=\"project-list\">")
			// Server-rendered fallback for clients without JS.
			b.WriteString("<noscript>")
			for _, e := range entries {
				entryCard(b, e)
			}
			b.WriteString("</noscript>")
			b.WriteString("</section>")
			b.WriteString("<nav id=\"project-pagination\"></nav>")
			safe := strings.ReplaceAll(dataJSON, "</", "<\\/")
			b.WriteString(`<script id="projects-data" type="application/json">` + safe + `</script>`)
			b.WriteString(`<script src="/public/filter.js" defer></script>`)
		})
	})
}

// PreviewLogin renders the draft-preview password form.
func PreviewLogin(site Site, showError bool, csrfToken string) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Preview — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Draft preview</h1>")
			if showError {
				b.WriteString("<p class=\"error\">Wrong password.</p>")
			}
			b.WriteString("<form method=\"post\" action=\"/preview/login/\">")
			b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
			b.WriteString("<input type=\"password\" name=\"password\" autofocus/>")
			b.WriteString("<button type=\"submit\">Enter</button>")
			b.WriteString("</form>")
		})
	})
}

// Preview renders every entry including drafts for proofreading.
func Preview(site Site, entries []Entry, csrfToken string) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Preview — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>All entries</h1>")
			b.WriteString("<form method=\"post\" action=\"/preview/logout/\">")
			b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\"/>")
			b.WriteString("<button type=\"submit\">Log out</button></form>")
			b.WriteString("<ul class=\"preview-list\">")
			for _, e := range entries {
				b.WriteString("<li>")
				if e.Draft {
					b.WriteString("<strong>[draft]</strong> ")
				}
				b.WriteString("<a href=\"" + esc(e.Link) + "\">" + esc(e.Title) + "</a>")
				if e.Date != "" {
					b.WriteString(" — " + esc(e.Date))
				}
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		})
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Not found — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>404</h1><p>Nothing lives at this address.</p><p><a href=\"/\">Back home</a></p>")
		})
	})
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Error — "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Something broke</h1><p>Try again in a moment.</p>")
		})
	})
}
