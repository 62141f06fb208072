package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// incompleteResponse carries the open-schedule count when project completion
// is rejected, so the UI can say how many remain.
type incompleteResponse struct {
	Error           string `json:"error"`
	IncompleteCount int    `json:"incomplete_count"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var incomplete *domain.IncompleteSchedulesError
		if errors.As(err, &incomplete) {
			_ = c.JSON(http.StatusConflict, incompleteResponse{
				Error:           incomplete.Error(),
				IncompleteCount: incomplete.Count,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, domain.ErrScheduleNotFound):
		return http.StatusNotFound, "schedule not found"
	case errors.Is(err, domain.ErrFieldNotFound):
		return http.StatusNotFound, "field not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrProjectHasSchedules):
		return http.StatusConflict, "project still has schedules"
	case errors.Is(err, domain.ErrFieldInUse):
		return http.StatusConflict, "field is referenced by schedules"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, "end date must not precede start date"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
