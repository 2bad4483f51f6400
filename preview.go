package devfolio

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// handlePreview shows the login form to anonymous visitors and the full
// entry list, drafts included, to an authenticated author.
func (a *App) handlePreview(c echo.Context) error {
	if !IsPreview(c) {
		return Render(c, a.Views.PreviewLogin(false, CsrfToken(c)))
	}
	entries, err := a.Cache.AllEntries()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Preview(toViewList(entries), CsrfToken(c)))
}

func (a *App) handlePreviewLogin(c echo.Context) error {
	if !a.previewLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.PreviewPassword)) == 1 {
		if err := setPreviewSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/preview/")
	}
	return Render(c, a.Views.PreviewLogin(true, CsrfToken(c)))
}

func (a *App) handlePreviewLogout(c echo.Context) error {
	if err := clearPreviewSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
