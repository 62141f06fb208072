package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// RequireEditor rejects read-only viewer accounts. Applied to every mutating
// route; the services re-check ownership on top.
func RequireEditor() echo.MiddlewareFunc {
	return requireViewer(func(v domain.Viewer) bool {
		return v.CanCreate()
	})
}

// RequireManager restricts a route to managers and superusers.
func RequireManager() echo.MiddlewareFunc {
	return requireViewer(func(v domain.Viewer) bool {
		return v.CanManage()
	})
}

func requireViewer(allowed func(domain.Viewer) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewer, ok := c.Get(ViewerContextKey).(domain.Viewer)
			if !ok || !allowed(viewer) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
