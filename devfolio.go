// Package devfolio is a personal blog and project-portfolio engine built with
// Go, Echo, and templ. Content lives as Markdown files with YAML front matter
// under a content directory; devfolio loads the collections, filters drafts,
// normalizes dates, builds tag indices, and serves paginated listings, a
// client-filtered project gallery, RSS, and a sitemap.
//
// Users may provide their own templ components via the ViewFuncs struct;
// DefaultViews supplies a plain built-in look.
package devfolio

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/oyilmaz/devfolio/stats"
	"github.com/oyilmaz/devfolio/views"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. This is the inversion-of-control mechanism that lets users own and
// customize all templates.
type ViewFuncs struct {
	Home         func(posts, projects []views.Entry) templ.Component
	Blog         func(page views.Page, activeTag string, tags []string) templ.Component
	BlogSection  func(page views.Page, activeTag string) templ.Component
	Post         func(entry views.Entry, related []views.Entry) templ.Component
	Projects     func(entries []views.Entry, dataJSON string) templ.Component
	PreviewLogin func(showError bool, csrfToken string) templ.Component
	Preview      func(entries []views.Entry, csrfToken string) templ.Component
	NotFound     func() templ.Component
	ServerError  func() templ.Component
}

// DefaultViews wires the built-in components from the views package.
func DefaultViews(site views.Site) ViewFuncs {
	return ViewFuncs{
		Home: func(posts, projects []views.Entry) templ.Component {
			return views.Home(site, posts, projects)
		},
		Blog: func(page views.Page, activeTag string, tags []string) templ.Component {
			return views.Blog(site, page, activeTag, tags)
		},
		BlogSection: views.BlogSection,
		Post: func(entry views.Entry, related []views.Entry) templ.Component {
			return views.Post(site, entry, related)
		},
		Projects: func(entries []views.Entry, dataJSON string) templ.Component {
			return views.Projects(site, entries, dataJSON)
		},
		PreviewLogin: func(showError bool, csrfToken string) templ.Component {
			return views.PreviewLogin(site, showError, csrfToken)
		},
		Preview: func(entries []views.Entry, csrfToken string) templ.Component {
			return views.Preview(site, entries, csrfToken)
		},
		NotFound:    func() templ.Component { return views.NotFound(site) },
		ServerError: func() templ.Component { return views.ServerError(site) },
	}
}

// App is the central devfolio application. It wires together the content
// store, entry cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *ContentStore
	Cache  *EntryCache
	Stats  *stats.Store
	Views  ViewFuncs

	previewLimiter *AttemptLimiter
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new devfolio App with the given configuration and views.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start loads the content store, primes the cache, and starts the server.
// A broken content store aborts startup; bad dates only warn.
func (a *App) Start() error {
	if a.Config.PreviewPassword != "" && a.Config.SessionSecret == "" {
		return fmt.Errorf("devfolio: SessionSecret is required when preview is enabled")
	}

	store, err := NewContentStore(a.Config.ContentDir)
	if err != nil {
		return err
	}
	a.Store = store
	a.Cache = NewEntryCache(store, a.Config.EntryCacheTTL)

	// Prime the cache now so a misconfigured collection fails the start,
	// not the first request.
	warnings, err := a.Cache.Warnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("devfolio: %s", w)
	}

	if a.Config.Thumbnails {
		entries, err := a.Cache.AllEntries()
		if err != nil {
			return err
		}
		if err := GenerateThumbnails(a.staticDir, entries); err != nil {
			return fmt.Errorf("devfolio: thumbnails: %w", err)
		}
	}

	if a.Config.WatchContent {
		if err := a.Cache.Watch(func() {
			log.Printf("devfolio: content changed, cache invalidated")
		}); err != nil {
			return fmt.Errorf("devfolio: watch content: %w", err)
		}
	}

	if a.Config.StatsEnabled {
		st, err := stats.NewStore(a.Config.StatsDatabasePath)
		if err != nil {
			return fmt.Errorf("devfolio: init stats: %w", err)
		}
		a.Stats = st
	}

	a.previewLimiter = NewAttemptLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets fall through to the user's static dir.
	e.GET("/public/filter.js", a.handleEmbeddedAsset)

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/projects/", a.handleProjects)
	e.GET("/api/projects.json", a.handleProjectsJSON)

	if a.previewEnabled() {
		e.GET("/preview/", a.handlePreview)
		e.POST("/preview/login/", a.handlePreviewLogin)
		e.POST("/preview/logout/", a.handlePreviewLogout)
	}

	if a.Config.StatsEnabled {
		e.POST("/api/stats/hit", a.handleStatsHit)
		if a.previewEnabled() {
			e.GET("/api/stats/top", a.handleStatsTop)
		}
	}
}

func (a *App) previewEnabled() bool {
	return a.Config.PreviewPassword != ""
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Cache != nil {
		a.Cache.Close()
	}
	if a.Stats != nil {
		a.Stats.Close()
	}
	if a.previewLimiter != nil {
		a.previewLimiter.Stop()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("devfolio: required environment variable %s is not set", key)
	}
	return v
}
