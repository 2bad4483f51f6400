package devfolio

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oyilmaz/devfolio/views"
)

const homeTeaserCount = 3

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	projects, err := a.Cache.Projects()
	if err != nil {
		return err
	}
	if len(posts) > homeTeaserCount {
		posts = posts[:homeTeaserCount]
	}
	if len(projects) > homeTeaserCount {
		projects = projects[:homeTeaserCount]
	}
	return Render(c, a.Views.Home(toViewList(posts), toViewList(projects)))
}

// handleBlog serves the server-paginated listing. ?page is 1-based and
// defaults to 1; a page past the end renders an empty listing, not an error.
// ?tag narrows to entries carrying that exact label.
func (a *App) handleBlog(c echo.Context) error {
	tag := c.QueryParam("tag")
	pageNum := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageNum = n
		}
	}

	posts, err := a.Cache.Posts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.PostTags()
	if err != nil {
		return err
	}

	page := Paginate(posts, a.Config.PageSize, pageNum)
	vp := toViewPage(page, tag)

	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "blog" {
		return Render(c, a.Views.BlogSection(vp, tag))
	}
	return Render(c, a.Views.Blog(vp, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	entry, err := a.Cache.Post(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	ve := toView(entry)
	related := views.RelatedEntries(ve, toViewList(posts))
	return Render(c, a.Views.Post(ve, related))
}

// listingPayload is the full dataset handed to the browser for the
// client-filtered listing: every published entry plus the tag index.
type listingPayload struct {
	Entries  []entryJSON `json:"entries"`
	Tags     []string    `json:"tags"`
	PageSize int         `json:"pageSize"`
}

type entryJSON struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Category string   `json:"category,omitempty"`
	Link     string   `json:"link"`
	Cover    string   `json:"cover,omitempty"`
}

func (a *App) projectsPayload() (listingPayload, error) {
	projects, err := a.Cache.Projects()
	if err != nil {
		return listingPayload{}, err
	}
	tags, err := a.Cache.ProjectTags()
	if err != nil {
		return listingPayload{}, err
	}
	payload := listingPayload{
		Entries:  make([]entryJSON, 0, len(projects)),
		Tags:     tags,
		PageSize: a.Config.PageSize,
	}
	for _, e := range projects {
		j := entryJSON{
			Slug:     e.Slug,
			Title:    e.Title,
			Tags:     e.Tags,
			Summary:  e.Summary,
			Category: e.Category,
			Link:     e.Link,
			Cover:    e.Cover,
		}
		if !e.Published.Equal(epoch) {
			j.Date = e.Published.Format("2006-01-02")
		}
		payload.Entries = append(payload.Entries, j)
	}
	return payload, nil
}

func (a *App) handleProjects(c echo.Context) error {
	payload, err := a.projectsPayload()
	if err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	projects, err := a.Cache.Projects()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Projects(toViewList(projects), string(data)))
}

func (a *App) handleProjectsJSON(c echo.Context) error {
	payload, err := a.projectsPayload()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	projects, err := a.Cache.Projects()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, append(posts, projects...))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleStatsHit(c echo.Context) error {
	path := c.FormValue("path")
	if !strings.HasPrefix(path, "/") || len(path) > 512 {
		return c.NoContent(http.StatusNoContent)
	}
	if err := a.Stats.RecordView(path); err != nil {
		c.Logger().Errorf("record view: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleStatsTop(c echo.Context) error {
	if !IsPreview(c) {
		return c.NoContent(http.StatusForbidden)
	}
	top, err := a.Stats.TopPages(20)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, top)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
