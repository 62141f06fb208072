package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HolidaySeeder is the slice of the holiday store the handler needs.
type HolidaySeeder interface {
	Seed(ctx context.Context, year int, dates []time.Time) error
}

// HolidayHandler manages the designated-holiday set the calendar consults.
type HolidayHandler struct {
	store HolidaySeeder
}

func NewHolidayHandler(store HolidaySeeder) *HolidayHandler {
	return &HolidayHandler{store: store}
}

type seedHolidaysRequest struct {
	Year  int      `json:"year" validate:"required,min=1,max=9999"`
	Dates []string `json:"dates" validate:"required,dive,datetime=2006-01-02"`
}

// Seed handles PUT /v1/holidays, replacing one year's holiday set.
//
// @Summary      Replace the holiday set for a year
// @Tags         calendar
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  seedHolidaysRequest  true  "Year and ISO dates"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/holidays [put]
func (h *HolidayHandler) Seed(c echo.Context) error {
	var req seedHolidaysRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	dates := make([]time.Time, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := time.Parse(isoDate, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid date: "+raw)
		}
		if d.Year() != req.Year {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "date outside year: "+raw)
		}
		dates = append(dates, d)
	}

	if err := h.store.Seed(c.Request().Context(), req.Year, dates); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
