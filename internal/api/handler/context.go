package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// ViewerFrom extracts the viewer capability object injected by the Auth
// middleware. Its presence proves the middleware ran; without it the request
// must not reach any service.
func ViewerFrom(c echo.Context) (domain.Viewer, error) {
	viewer, ok := c.Get("viewer").(domain.Viewer)
	if !ok || viewer.ID == "" {
		return domain.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return viewer, nil
}
