package devfolio

import (
	"embed"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains static assets shipped with the framework,
// currently the client-side tag filter and paginator (filter.js).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func (a *App) handleEmbeddedAsset(c echo.Context) error {
	name := strings.TrimPrefix(c.Request().URL.Path, "/public/")
	data, err := EmbeddedAssets.ReadFile("embedded/" + name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.Blob(http.StatusOK, "application/javascript; charset=utf-8", data)
}
