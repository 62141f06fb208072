package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

type stubCalendarService struct {
	monthFn func(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error)
	weekFn  func(ctx context.Context, actor domain.Viewer, weekStart time.Time, f ports.CalendarFilters) (*ports.WeekViewResult, error)
	feedFn  func(ctx context.Context, actor domain.Viewer) ([]ports.Event, error)
}

func (s *stubCalendarService) MonthView(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error) {
	return s.monthFn(ctx, actor, year, month, f)
}

func (s *stubCalendarService) WeekView(ctx context.Context, actor domain.Viewer, weekStart time.Time, f ports.CalendarFilters) (*ports.WeekViewResult, error) {
	return s.weekFn(ctx, actor, weekStart, f)
}

func (s *stubCalendarService) EventFeed(ctx context.Context, actor domain.Viewer) ([]ports.Event, error) {
	return s.feedFn(ctx, actor)
}

type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time   { return c.now }
func (c frozenClock) Today() time.Time { return domain.DateOf(c.now) }

func emptyMonthResult(year int, month time.Month) *ports.MonthViewResult {
	return &ports.MonthViewResult{
		Year:      year,
		Month:     month,
		MonthName: month.String(),
		Prev:      calendar.PrevMonth(year, month),
		Next:      calendar.NextMonth(year, month),
		Today:     time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

func runCalendar(t *testing.T, h *CalendarHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("viewer", domain.Viewer{ID: "u1", Username: "sato"})
	if err := h.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestCalendarHandler_View_ExplicitMonth(t *testing.T) {
	stub := &stubCalendarService{
		monthFn: func(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error) {
			if year != 2024 || month != time.June {
				t.Fatalf("expected 2024-06, got %d-%d", year, month)
			}
			if f.AssigneeID != "u2" || f.ProjectID != "p1" {
				t.Fatalf("unexpected filters: %+v", f)
			}
			return emptyMonthResult(year, month), nil
		},
	}
	h := NewCalendarHandler(stub, frozenClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)})

	rec := runCalendar(t, h, "/v1/calendar?year=2024&month=6&assigned_to=u2&project=p1")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["scope"] != "month" || resp["year"] != float64(2024) || resp["month"] != float64(6) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCalendarHandler_View_BadParamsFallBackToToday(t *testing.T) {
	cases := []string{
		"/v1/calendar",
		"/v1/calendar?year=banana&month=0",
		"/v1/calendar?year=-3&month=13",
	}
	for _, target := range cases {
		called := false
		stub := &stubCalendarService{
			monthFn: func(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error) {
				called = true
				if year != 2025 || month != time.January {
					t.Fatalf("%s: expected fallback 2025-01, got %d-%d", target, year, month)
				}
				return emptyMonthResult(year, month), nil
			},
		}
		h := NewCalendarHandler(stub, frozenClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)})

		rec := runCalendar(t, h, target)

		if !called {
			t.Fatalf("%s: service not called", target)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
	}
}

func TestCalendarHandler_View_PartialParamsKeepValidHalf(t *testing.T) {
	stub := &stubCalendarService{
		monthFn: func(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error) {
			if year != 2023 || month != time.January {
				t.Fatalf("expected 2023-01, got %d-%d", year, month)
			}
			return emptyMonthResult(year, month), nil
		},
	}
	h := NewCalendarHandler(stub, frozenClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)})

	runCalendar(t, h, "/v1/calendar?year=2023&month=oops")
}

func TestCalendarHandler_View_WeekScope(t *testing.T) {
	stub := &stubCalendarService{
		weekFn: func(ctx context.Context, actor domain.Viewer, weekStart time.Time, f ports.CalendarFilters) (*ports.WeekViewResult, error) {
			want := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
			if !weekStart.Equal(want) {
				t.Fatalf("expected week start %v, got %v", want, weekStart)
			}
			return &ports.WeekViewResult{
				WeekStart: weekStart,
				WeekEnd:   weekStart.AddDate(0, 0, 6),
				PrevStart: weekStart.AddDate(0, 0, -7),
				NextStart: weekStart.AddDate(0, 0, 7),
				Year:      2024,
				Month:     time.June,
				MonthName: "June",
				Today:     weekStart,
			}, nil
		},
	}
	h := NewCalendarHandler(stub, frozenClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)})

	rec := runCalendar(t, h, "/v1/calendar?scope=week&start=2024-06-09")

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["scope"] != "week" || resp["week_start"] != "2024-06-09" || resp["week_end"] != "2024-06-15" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCalendarHandler_View_WeekBadStartFallsBackToToday(t *testing.T) {
	today := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	stub := &stubCalendarService{
		weekFn: func(ctx context.Context, actor domain.Viewer, weekStart time.Time, f ports.CalendarFilters) (*ports.WeekViewResult, error) {
			if !weekStart.Equal(today) {
				t.Fatalf("expected fallback %v, got %v", today, weekStart)
			}
			return &ports.WeekViewResult{
				WeekStart: weekStart,
				WeekEnd:   weekStart.AddDate(0, 0, 6),
				PrevStart: weekStart.AddDate(0, 0, -7),
				NextStart: weekStart.AddDate(0, 0, 7),
				Year:      2025,
				Month:     time.January,
				MonthName: "January",
				Today:     today,
			}, nil
		},
	}
	h := NewCalendarHandler(stub, frozenClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)})

	runCalendar(t, h, "/v1/calendar?scope=week&start=15-01-2025")
}

func TestCalendarHandler_View_MissingViewer(t *testing.T) {
	h := NewCalendarHandler(&stubCalendarService{}, frozenClock{now: time.Now()})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.View(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCalendarHandler_Events(t *testing.T) {
	stub := &stubCalendarService{
		feedFn: func(ctx context.Context, actor domain.Viewer) ([]ports.Event, error) {
			if actor.ID != "u1" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return []ports.Event{{
				ID:        "s1",
				Title:     "press - wiring",
				Start:     "2024-06-10",
				End:       "2024-06-15",
				Color:     "#007bff",
				DetailURL: "/v1/schedules/s1",
			}}, nil
		},
	}
	h := NewCalendarHandler(stub, frozenClock{now: time.Now()})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/calendar/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("viewer", domain.Viewer{ID: "u1", Username: "sato"})

	if err := h.Events(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var events []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(events) != 1 || events[0]["title"] != "press - wiring" || events[0]["url"] != "/v1/schedules/s1" {
		t.Fatalf("unexpected events: %+v", events)
	}
}
