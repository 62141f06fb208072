package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/api/metrics"
	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

const isoDate = "2006-01-02"

// Event feed colours keyed by derived status.
const (
	eventColorCompleted  = "#28a745"
	eventColorInProgress = "#007bff"
	eventColorPending    = "#dc3545"
)

// CalendarService builds the month/week grids and the machine-readable feed.
type CalendarService struct {
	schedules ports.ScheduleRepository
	projects  ports.ProjectRepository
	users     ports.UserRepository
	builder   *calendar.Builder
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewCalendarService(
	schedules ports.ScheduleRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	builder *calendar.Builder,
	clock ports.Clock,
	logger zerolog.Logger,
) *CalendarService {
	return &CalendarService{
		schedules: schedules,
		projects:  projects,
		users:     users,
		builder:   builder,
		clock:     clock,
		logger:    logger,
	}
}

func (s *CalendarService) MonthView(ctx context.Context, actor domain.Viewer, year int, month time.Month, f ports.CalendarFilters) (*ports.MonthViewResult, error) {
	started := time.Now()

	first, last := calendar.MonthRange(year, month)
	entries, err := s.entriesForRange(ctx, actor, first, last, f)
	if err != nil {
		return nil, err
	}
	grid := s.builder.MonthGrid(ctx, year, month, entries)

	options, err := s.filterOptions(ctx, actor)
	if err != nil {
		return nil, err
	}

	metrics.GridBuildDuration.WithLabelValues("month").Observe(time.Since(started).Seconds())

	return &ports.MonthViewResult{
		Grid:      grid,
		Year:      year,
		Month:     month,
		MonthName: month.String(),
		Prev:      calendar.PrevMonth(year, month),
		Next:      calendar.NextMonth(year, month),
		Today:     s.clock.Today(),
		Options:   options,
	}, nil
}

func (s *CalendarService) WeekView(ctx context.Context, actor domain.Viewer, weekStart time.Time, f ports.CalendarFilters) (*ports.WeekViewResult, error) {
	started := time.Now()

	start := domain.DateOf(weekStart)
	first, last := calendar.WeekRange(start)
	entries, err := s.entriesForRange(ctx, actor, first, last, f)
	if err != nil {
		return nil, err
	}
	grid := s.builder.WeekGrid(ctx, start, entries)

	options, err := s.filterOptions(ctx, actor)
	if err != nil {
		return nil, err
	}

	metrics.GridBuildDuration.WithLabelValues("week").Observe(time.Since(started).Seconds())

	return &ports.WeekViewResult{
		Grid:      grid,
		WeekStart: start,
		WeekEnd:   last,
		PrevStart: calendar.PrevWeekStart(start),
		NextStart: calendar.NextWeekStart(start),
		Year:      start.Year(),
		Month:     start.Month(),
		MonthName: start.Month().String(),
		PrevMonth: calendar.PrevMonth(start.Year(), start.Month()),
		NextMonth: calendar.NextMonth(start.Year(), start.Month()),
		Today:     s.clock.Today(),
		Options:   options,
	}, nil
}

// EventFeed emits every visible schedule as a half-open event: the end date
// is one day after the stored inclusive end, and the colour reflects the
// freshly derived status.
func (s *CalendarService) EventFeed(ctx context.Context, actor domain.Viewer) ([]ports.Event, error) {
	schedules, err := s.schedules.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectsFor(ctx, schedules)
	if err != nil {
		return nil, err
	}

	// The feed is scoped to own projects for everyone but managers and
	// superusers; read-only viewer accounts included.
	seeAll := actor.CanManage()

	events := make([]ports.Event, 0, len(schedules))
	for _, sched := range schedules {
		project, ok := projects[sched.ProjectID]
		if !ok {
			continue
		}
		if !seeAll && project.CreatedByID != actor.ID && project.AssignedTo.ID != actor.ID {
			continue
		}

		refreshStatus(ctx, s.schedules, sched, s.clock.Today(), s.logger)

		color := eventColorPending
		switch sched.Status {
		case domain.StatusCompleted:
			color = eventColorCompleted
		case domain.StatusInProgress:
			color = eventColorInProgress
		}

		events = append(events, ports.Event{
			ID:        sched.ID,
			Title:     project.Name + " - " + sched.FieldName,
			Start:     domain.DateOf(sched.StartDate).Format(isoDate),
			End:       domain.DateOf(sched.EndDate).AddDate(0, 0, 1).Format(isoDate),
			Color:     color,
			DetailURL: "/v1/schedules/" + sched.ID,
		})
	}
	return events, nil
}

// entriesForRange applies the pre-grid pipeline: overlap query, visibility
// scope, optional assignee/project equality filters, lazy status refresh,
// then colour annotation and composite-key sorting.
func (s *CalendarService) entriesForRange(ctx context.Context, actor domain.Viewer, from, to time.Time, f ports.CalendarFilters) ([]calendar.Entry, error) {
	schedules, err := s.schedules.FindOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectsFor(ctx, schedules)
	if err != nil {
		return nil, err
	}

	kept := schedules[:0]
	for _, sched := range schedules {
		project, ok := projects[sched.ProjectID]
		if !ok {
			continue
		}
		if !actor.CanSeeProject(project) {
			continue
		}
		if f.AssigneeID != "" && project.AssignedTo.ID != f.AssigneeID {
			continue
		}
		if f.ProjectID != "" && project.ID != f.ProjectID {
			continue
		}
		kept = append(kept, sched)
	}

	refreshAll(ctx, s.schedules, kept, s.clock.Today(), s.logger)

	return s.builder.Annotate(kept, projects), nil
}

func (s *CalendarService) projectsFor(ctx context.Context, schedules []*domain.Schedule) (map[string]*domain.Project, error) {
	seen := make(map[string]struct{}, len(schedules))
	ids := make([]string, 0, len(schedules))
	for _, sched := range schedules {
		if _, ok := seen[sched.ProjectID]; ok {
			continue
		}
		seen[sched.ProjectID] = struct{}{}
		ids = append(ids, sched.ProjectID)
	}
	if len(ids) == 0 {
		return map[string]*domain.Project{}, nil
	}
	return s.projects.FindByIDs(ctx, ids)
}

func (s *CalendarService) filterOptions(ctx context.Context, actor domain.Viewer) (ports.FilterOptions, error) {
	var options ports.FilterOptions

	// Assignee dropdown: managers, superusers and viewers only. The choices
	// are managers and regular users; superusers and viewer accounts are
	// never assignees.
	if actor.SeesAll() {
		users, err := s.users.List(ctx, ports.UserFilter{
			ExcludeSuperusers: true,
			ExcludeViewers:    true,
		})
		if err != nil {
			return options, err
		}
		options.Users = users
	}

	filter := ports.ProjectListFilter{SortBy: ports.SortByName}
	if !actor.SeesAll() {
		filter.ViewerID = actor.ID
	}
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return options, err
	}
	options.Projects = projects

	return options, nil
}
