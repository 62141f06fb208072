package ports

import (
	"context"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// CalendarFilters are the optional equality filters applied before grid
// bucketing. Empty values mean no filter.
type CalendarFilters struct {
	AssigneeID string
	ProjectID  string
}

// FilterOptions are the dropdown choices the calendar view offers.
// Users is empty for regular users (the assignee filter is manager-only).
type FilterOptions struct {
	Users    []*domain.User
	Projects []*domain.Project
}

// MonthViewResult is the render-ready month calendar.
type MonthViewResult struct {
	Grid      calendar.Grid
	Year      int
	Month     time.Month
	MonthName string
	Prev      calendar.YearMonth
	Next      calendar.YearMonth
	Today     time.Time
	Options   FilterOptions
}

// WeekViewResult is the render-ready week calendar. The month anchors point
// at the week start's month so the UI can switch back to month view.
type WeekViewResult struct {
	Grid      calendar.Grid
	WeekStart time.Time
	WeekEnd   time.Time
	PrevStart time.Time
	NextStart time.Time
	Year      int
	Month     time.Month
	MonthName string
	PrevMonth calendar.YearMonth
	NextMonth calendar.YearMonth
	Today     time.Time
	Options   FilterOptions
}

// Event is one entry of the machine-readable feed. End is exclusive: one day
// after the stored inclusive end date, for half-open calendar renderers.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Color     string `json:"color"`
	DetailURL string `json:"url"`
}

// CalendarService builds the calendar read models.
type CalendarService interface {
	MonthView(ctx context.Context, actor domain.Viewer, year int, month time.Month, f CalendarFilters) (*MonthViewResult, error)
	WeekView(ctx context.Context, actor domain.Viewer, weekStart time.Time, f CalendarFilters) (*WeekViewResult, error)
	EventFeed(ctx context.Context, actor domain.Viewer) ([]Event, error)
}
