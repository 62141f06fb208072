package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

const (
	// dashboardLimit caps the recent-schedule and latest-project lists.
	dashboardLimit = 5
	// recentWindowDays bounds the recent list to a week either side of today.
	recentWindowDays = 7
)

// DashboardService builds the landing-page overview.
type DashboardService struct {
	schedules ports.ScheduleRepository
	projects  ports.ProjectRepository
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewDashboardService(
	schedules ports.ScheduleRepository,
	projects ports.ProjectRepository,
	clock ports.Clock,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		schedules: schedules,
		projects:  projects,
		clock:     clock,
		logger:    logger,
	}
}

// Overview returns today's schedules, schedules within a week of today and
// the five newest projects, all restricted to what the actor may see. Only
// today's schedules run the lazy status refresh; the recent list shows
// stored statuses.
func (s *DashboardService) Overview(ctx context.Context, actor domain.Viewer) (*ports.DashboardResult, error) {
	today := s.clock.Today()

	todayEntries, err := s.entriesOverlapping(ctx, actor, today, today)
	if err != nil {
		return nil, err
	}
	refreshed := make([]*domain.Schedule, 0, len(todayEntries))
	for _, e := range todayEntries {
		refreshed = append(refreshed, e.Schedule)
	}
	refreshAll(ctx, s.schedules, refreshed, today, s.logger)

	from := today.AddDate(0, 0, -recentWindowDays)
	to := today.AddDate(0, 0, recentWindowDays)
	recent, err := s.entriesOverlapping(ctx, actor, from, to)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Schedule.StartDate.After(recent[j].Schedule.StartDate)
	})
	if len(recent) > dashboardLimit {
		recent = recent[:dashboardLimit]
	}

	filter := ports.ProjectListFilter{SortBy: ports.SortByCreatedAt}
	if !actor.SeesAll() {
		filter.ViewerID = actor.ID
	}
	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(projects) > dashboardLimit {
		projects = projects[:dashboardLimit]
	}

	return &ports.DashboardResult{
		Today:    todayEntries,
		Recent:   recent,
		Projects: projects,
	}, nil
}

// entriesOverlapping loads the schedules active in [from, to], joins each to
// its project and drops the ones the actor may not see.
func (s *DashboardService) entriesOverlapping(ctx context.Context, actor domain.Viewer, from, to time.Time) ([]ports.DashboardEntry, error) {
	schedules, err := s.schedules.FindOverlapping(ctx, from, to)
	if err != nil {
		return nil, err
	}

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
		return []ports.DashboardEntry{}, nil
	}
	projects, err := s.projects.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.DashboardEntry, 0, len(schedules))
	for _, sched := range schedules {
		project, ok := projects[sched.ProjectID]
		if !ok {
			continue
		}
		if !actor.CanSeeProject(project) {
			continue
		}
		entries = append(entries, ports.DashboardEntry{Schedule: sched, Project: project})
	}
	return entries, nil
}
