package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// CalendarHandler serves the month/week grid views and the event feed.
type CalendarHandler struct {
	service ports.CalendarService
	clock   ports.Clock
}

func NewCalendarHandler(service ports.CalendarService, clock ports.Clock) *CalendarHandler {
	return &CalendarHandler{service: service, clock: clock}
}

// View handles GET /v1/calendar.
//
// Query parameters are forgiving: an absent or unparsable year, month or
// week start falls back to today rather than failing the request, so stale
// bookmarked URLs keep working.
//
// @Summary      Calendar grid
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        scope        query  string  false  "month (default) or week"
// @Param        year         query  int     false  "Year, month scope"
// @Param        month        query  int     false  "Month 1-12, month scope"
// @Param        start        query  string  false  "Week start date YYYY-MM-DD, week scope"
// @Param        assigned_to  query  string  false  "Filter by assignee user id"
// @Param        project      query  string  false  "Filter by project id"
// @Success      200  {object}  monthViewResponse
// @Router       /v1/calendar [get]
func (h *CalendarHandler) View(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	filters := ports.CalendarFilters{
		AssigneeID: c.QueryParam("assigned_to"),
		ProjectID:  c.QueryParam("project"),
	}

	if c.QueryParam("scope") == "week" {
		start := h.weekStartParam(c)
		result, err := h.service.WeekView(c.Request().Context(), viewer, start, filters)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toWeekViewResponse(result))
	}

	year, month := h.yearMonthParams(c)
	result, err := h.service.MonthView(c.Request().Context(), viewer, year, month, filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMonthViewResponse(result))
}

// Events handles GET /v1/calendar/events.
//
// @Summary      Machine-readable schedule feed
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.Event
// @Router       /v1/calendar/events [get]
func (h *CalendarHandler) Events(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	events, err := h.service.EventFeed(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) yearMonthParams(c echo.Context) (int, time.Month) {
	today := h.clock.Today()
	year, month := today.Year(), today.Month()

	if y, err := strconv.Atoi(c.QueryParam("year")); err == nil && y >= 1 && y <= 9999 {
		year = y
	}
	if m, err := strconv.Atoi(c.QueryParam("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}

func (h *CalendarHandler) weekStartParam(c echo.Context) time.Time {
	if start, err := time.Parse(isoDate, c.QueryParam("start")); err == nil {
		return start
	}
	return h.clock.Today()
}

func toMonthViewResponse(r *ports.MonthViewResult) monthViewResponse {
	return monthViewResponse{
		Scope:     "month",
		Year:      r.Year,
		Month:     int(r.Month),
		MonthName: r.MonthName,
		Today:     r.Today.Format(isoDate),
		Prev:      toYearMonth(r.Prev),
		Next:      toYearMonth(r.Next),
		Rows:      toCellRows(r.Grid),
		Options:   toFilterOptions(r.Options),
	}
}

func toWeekViewResponse(r *ports.WeekViewResult) weekViewResponse {
	return weekViewResponse{
		Scope:     "week",
		WeekStart: r.WeekStart.Format(isoDate),
		WeekEnd:   r.WeekEnd.Format(isoDate),
		PrevStart: r.PrevStart.Format(isoDate),
		NextStart: r.NextStart.Format(isoDate),
		Year:      r.Year,
		Month:     int(r.Month),
		MonthName: r.MonthName,
		PrevMonth: toYearMonth(r.PrevMonth),
		NextMonth: toYearMonth(r.NextMonth),
		Today:     r.Today.Format(isoDate),
		Rows:      toCellRows(r.Grid),
		Options:   toFilterOptions(r.Options),
	}
}
