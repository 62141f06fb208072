package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/api/metrics"
	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// ProjectService implements project CRUD, listing and the completion gate.
type ProjectService struct {
	projects  ports.ProjectRepository
	schedules ports.ScheduleRepository
	users     ports.UserRepository
	clock     ports.Clock
	palette   calendar.Palette
	logger    zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	schedules ports.ScheduleRepository,
	users ports.UserRepository,
	clock ports.Clock,
	palette calendar.Palette,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:  projects,
		schedules: schedules,
		users:     users,
		clock:     clock,
		palette:   palette,
		logger:    logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, actor domain.Viewer, in ports.CreateProjectInput) (*domain.Project, error) {
	if !actor.CanCreate() {
		return nil, domain.ErrForbidden
	}

	assigneeID := in.AssignedToID
	if assigneeID == "" || !actor.CanManage() {
		// Regular users always assign to themselves.
		assigneeID = actor.ID
	}
	assignee, err := s.users.FindByID(ctx, assigneeID)
	if err != nil {
		return nil, err
	}
	if assignee.IsSuperuser || !assignee.IsActive {
		return nil, domain.ErrForbidden
	}

	creator, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	project := &domain.Project{
		Name:                in.Name,
		ManufacturingNumber: in.ManufacturingNumber,
		DueDate:             in.DueDate,
		Description:         in.Description,
		CreatedByID:         creator.ID,
		CreatedByName:       creator.DisplayName(),
		AssignedTo:          domain.RefFor(assignee),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().
		Str("project_id", created.ID).
		Str("manufacturing_number", created.ManufacturingNumber).
		Str("assigned_to", assignee.Username).
		Msg("project created")

	return created, nil
}

// Get returns the project with its schedules, each status-refreshed, plus
// the count of schedules that still block completion.
func (s *ProjectService) Get(ctx context.Context, actor domain.Viewer, id string) (*ports.ProjectDetail, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeProject(project) {
		return nil, domain.ErrForbidden
	}

	schedules, err := s.schedules.FindByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	refreshAll(ctx, s.schedules, schedules, s.clock.Today(), s.logger)

	incomplete := 0
	for _, sched := range schedules {
		if sched.Status != domain.StatusCompleted {
			incomplete++
		}
	}

	return &ports.ProjectDetail{
		Project:         project,
		Schedules:       schedules,
		IncompleteCount: incomplete,
	}, nil
}

func (s *ProjectService) List(ctx context.Context, actor domain.Viewer, in ports.ListProjectsInput) ([]ports.ProjectSummary, error) {
	filter := ports.ProjectListFilter{SortBy: in.SortBy}
	if !actor.SeesAll() {
		filter.ViewerID = actor.ID
	}
	// The "mine only" toggle is a manager convenience; viewers and regular
	// users always get the unparameterised list.
	if in.Assignee == "me" && actor.CanManage() {
		filter.AssignedToID = actor.ID
	}

	switch in.Status {
	case "all":
		// no completion filter
	case "completed":
		completed := true
		filter.Completed = &completed
	default: // "active" is the initial state of the list view
		completed := false
		filter.Completed = &completed
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		hasSchedules, err := s.schedules.ExistsByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ports.ProjectSummary{
			Project:      p,
			Color:        s.palette.PairFor(p.AssignedTo.UserNo),
			CanBeDeleted: !hasSchedules,
		})
	}
	return summaries, nil
}

func (s *ProjectService) Update(ctx context.Context, actor domain.Viewer, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanEditProject(project) {
		return nil, domain.ErrForbidden
	}

	project.Name = in.Name
	project.ManufacturingNumber = in.ManufacturingNumber
	project.DueDate = in.DueDate
	project.Description = in.Description

	if in.AssignedToID != "" && in.AssignedToID != project.AssignedTo.ID {
		if !actor.CanManage() && in.AssignedToID != actor.ID {
			return nil, domain.ErrForbidden
		}
		assignee, err := s.users.FindByID(ctx, in.AssignedToID)
		if err != nil {
			return nil, err
		}
		if assignee.IsSuperuser || !assignee.IsActive {
			return nil, domain.ErrForbidden
		}
		project.AssignedTo = domain.RefFor(assignee)
	}
	project.UpdatedAt = s.clock.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor domain.Viewer, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanEditProject(project) {
		return domain.ErrForbidden
	}

	hasSchedules, err := s.schedules.ExistsByProject(ctx, id)
	if err != nil {
		return err
	}
	if hasSchedules {
		return domain.ErrProjectHasSchedules
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Str("name", project.Name).Msg("project deleted")
	return nil
}

// ToggleCompletion completes or reopens a project. Completing first forces a
// re-derivation pass over every schedule, then fails while any remain open;
// reopening is always allowed.
func (s *ProjectService) ToggleCompletion(ctx context.Context, actor domain.Viewer, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanToggleProject(project) {
		return nil, domain.ErrForbidden
	}

	if !project.IsCompleted {
		schedules, err := s.schedules.FindByProject(ctx, id)
		if err != nil {
			return nil, err
		}
		refreshAll(ctx, s.schedules, schedules, s.clock.Today(), s.logger)

		open := 0
		for _, sched := range schedules {
			if sched.Status != domain.StatusCompleted {
				open++
			}
		}
		if open > 0 {
			metrics.ProjectCompletionsTotal.WithLabelValues("blocked").Inc()
			return nil, &domain.IncompleteSchedulesError{Count: open}
		}
	}

	project.ToggleCompletion(s.clock.Now().UTC())
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	result := "reopened"
	if project.IsCompleted {
		result = "completed"
	}
	metrics.ProjectCompletionsTotal.WithLabelValues(result).Inc()

	s.logger.Info().
		Str("project_id", project.ID).
		Bool("is_completed", project.IsCompleted).
		Msg("project completion toggled")

	return project, nil
}
