package devfolio

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Collection names under the content root.
const (
	CollectionBlog     = "blog"
	CollectionProjects = "projects"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = errors.New("devfolio: entry not found")

// EntryCache is a read-through cache over the content store. It holds the
// already-normalized entry lists and tag indices with a TTL, and can watch
// the content tree so edits invalidate it immediately. The cached values are
// exactly what running the pipeline fresh would produce.
type EntryCache struct {
	mu      sync.RWMutex
	store   *ContentStore
	ttl     time.Duration
	fetched time.Time

	posts       []ContentEntry // published blog entries, newest first
	projects    []ContentEntry // published project entries, newest first
	allPosts    []ContentEntry // including drafts, for the preview listing
	allProjects []ContentEntry
	postTags    []string
	projectTags []string
	warnings    []DateWarning

	watcher   *fsnotify.Watcher
	stopWatch chan struct{}
}

// NewEntryCache creates an EntryCache backed by the given store.
func NewEntryCache(s *ContentStore, ttl time.Duration) *EntryCache {
	return &EntryCache{store: s, ttl: ttl}
}

func (c *EntryCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *EntryCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.projects = nil
	c.allPosts = nil
	c.allProjects = nil
	c.postTags = nil
	c.projectTags = nil
	c.warnings = nil
	c.mu.Unlock()
}

func (c *EntryCache) load() error {
	if c.valid() {
		return nil
	}
	rawPosts, err := c.store.LoadCollection(CollectionBlog)
	if err != nil {
		return err
	}
	rawProjects, err := c.store.LoadCollection(CollectionProjects)
	if err != nil {
		return err
	}

	posts, postWarns := Normalize(rawPosts)
	projects, projWarns := Normalize(rawProjects)
	allPosts, _ := NormalizeAll(rawPosts)
	allProjects, _ := NormalizeAll(rawProjects)

	c.posts = posts
	c.projects = projects
	c.allPosts = allPosts
	c.allProjects = allProjects
	c.postTags = TagIndex(posts)
	c.projectTags = TagIndex(projects)
	c.warnings = append(postWarns, projWarns...)
	c.fetched = time.Now()
	return nil
}

// ensureLoaded refreshes the cache if stale. It tries a read lock first and
// only takes a write lock when a reload is needed.
func (c *EntryCache) ensureLoaded() error {
	c.mu.RLock()
	if c.valid() {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Posts returns published blog entries newest first, optionally narrowed to
// entries carrying the exact tag.
func (c *EntryCache) Posts(tag string) ([]ContentEntry, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FilterByTag(c.posts, tag), nil
}

// Projects returns published project entries newest first.
func (c *EntryCache) Projects() ([]ContentEntry, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projects, nil
}

// PostTags returns the tag index over published blog entries.
func (c *EntryCache) PostTags() ([]string, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.postTags, nil
}

// ProjectTags returns the tag index over published project entries.
func (c *EntryCache) ProjectTags() ([]string, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projectTags, nil
}

// Post returns a single published blog entry by slug.
func (c *EntryCache) Post(slug string) (ContentEntry, error) {
	if err := c.ensureLoaded(); err != nil {
		return ContentEntry{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.posts {
		if e.Slug == slug {
			return e, nil
		}
	}
	return ContentEntry{}, ErrNotFound
}

// AllEntries returns every entry including drafts, newest first, for the
// preview listing.
func (c *EntryCache) AllEntries() ([]ContentEntry, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ContentEntry, 0, len(c.allPosts)+len(c.allProjects))
	out = append(out, c.allPosts...)
	out = append(out, c.allProjects...)
	return out, nil
}

// Warnings returns the date warnings collected during the last load.
func (c *EntryCache) Warnings() ([]DateWarning, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.warnings, nil
}

// Watch starts a filesystem watcher over the content tree that invalidates
// the cache when files change. Events are debounced so a burst of writes
// triggers one invalidation. Call Close to stop watching.
func (c *EntryCache) Watch(onInvalidate func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dirs := []string{
		c.store.Root(),
		filepath.Join(c.store.Root(), CollectionBlog),
		filepath.Join(c.store.Root(), CollectionProjects),
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return err
		}
	}
	c.watcher = w
	c.stopWatch = make(chan struct{})

	go func() {
		const debounce = 500 * time.Millisecond
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					c.Invalidate()
					if onInvalidate != nil {
						onInvalidate()
					}
				})
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-c.stopWatch:
				return
			}
		}
	}()
	return nil
}

// Close stops the content watcher if one was started.
func (c *EntryCache) Close() error {
	if c.watcher == nil {
		return nil
	}
	close(c.stopWatch)
	return c.watcher.Close()
}
