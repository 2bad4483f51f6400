package devfolio

import "time"

// SiteConfig holds all configuration for a devfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr       string // Listen address (default ":3000")
	ContentDir string // Root of the content store (default "content")
	PageSize   int    // Entries per blog listing page (default 9)

	PreviewPassword string // Enables the draft-preview area when set
	SessionSecret   string // Required when preview is enabled
	CookieSecure    bool   // Set true for HTTPS

	EntryCacheTTL time.Duration // Entry cache TTL (default 5min)
	WatchContent  bool          // Invalidate the cache on content file changes

	StatsEnabled      bool   // Record page views in SQLite
	StatsDatabasePath string // Stats SQLite path (default "data/stats.db")

	Thumbnails bool // Generate cover thumbnails at startup
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.StatsDatabasePath == "" {
		c.StatsDatabasePath = "data/stats.db"
	}
	if c.EntryCacheTTL == 0 {
		c.EntryCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
