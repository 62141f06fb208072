package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/api/metrics"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// ScheduleService implements schedule CRUD and the lazy status refresh every
// read path performs.
type ScheduleService struct {
	schedules ports.ScheduleRepository
	projects  ports.ProjectRepository
	fields    ports.FieldRepository
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewScheduleService(
	schedules ports.ScheduleRepository,
	projects ports.ProjectRepository,
	fields ports.FieldRepository,
	clock ports.Clock,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		projects:  projects,
		fields:    fields,
		clock:     clock,
		logger:    logger,
	}
}

func (s *ScheduleService) Create(ctx context.Context, actor domain.Viewer, in ports.CreateScheduleInput) (*domain.Schedule, error) {
	if !actor.CanCreate() {
		return nil, domain.ErrForbidden
	}
	if domain.DateOf(in.EndDate).Before(domain.DateOf(in.StartDate)) {
		return nil, domain.ErrInvalidDateRange
	}

	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !actor.CanEditSchedules(project) {
		return nil, domain.ErrForbidden
	}

	field, err := s.fields.FindByID(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	sched := &domain.Schedule{
		ProjectID:   project.ID,
		FieldID:     field.ID,
		FieldName:   field.Name,
		StartDate:   domain.DateOf(in.StartDate),
		EndDate:     domain.DateOf(in.EndDate),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	sched.Status = sched.DeriveStatus(s.clock.Today())

	created, err := s.schedules.Create(ctx, sched)
	if err != nil {
		s.logger.Error().Err(err).Str("project_id", project.ID).Msg("failed to create schedule")
		return nil, err
	}

	s.logger.Info().
		Str("schedule_id", created.ID).
		Str("project_id", project.ID).
		Str("field", field.Name).
		Msg("schedule created")

	return created, nil
}

func (s *ScheduleService) Get(ctx context.Context, actor domain.Viewer, id string) (*ports.ScheduleDetail, error) {
	sched, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, sched.ProjectID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeProject(project) {
		return nil, domain.ErrForbidden
	}

	s.refreshStatus(ctx, sched)

	return &ports.ScheduleDetail{Schedule: sched, Project: project}, nil
}

func (s *ScheduleService) Update(ctx context.Context, actor domain.Viewer, id string, in ports.UpdateScheduleInput) (*domain.Schedule, error) {
	sched, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, sched.ProjectID)
	if err != nil {
		return nil, err
	}
	if !actor.CanEditSchedules(project) {
		return nil, domain.ErrForbidden
	}
	if domain.DateOf(in.EndDate).Before(domain.DateOf(in.StartDate)) {
		return nil, domain.ErrInvalidDateRange
	}

	if in.FieldID != "" && in.FieldID != sched.FieldID {
		field, err := s.fields.FindByID(ctx, in.FieldID)
		if err != nil {
			return nil, err
		}
		sched.FieldID = field.ID
		sched.FieldName = field.Name
	}
	sched.StartDate = domain.DateOf(in.StartDate)
	sched.EndDate = domain.DateOf(in.EndDate)
	sched.Description = in.Description
	// Edits never complete a schedule; non-completed ones are re-derived
	// against the new dates.
	if sched.Status != domain.StatusCompleted {
		sched.Status = sched.DeriveStatus(s.clock.Today())
	}
	sched.UpdatedAt = s.clock.Now().UTC()

	if err := s.schedules.Update(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *ScheduleService) Delete(ctx context.Context, actor domain.Viewer, id string) error {
	sched, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return err
	}
	project, err := s.projects.FindByID(ctx, sched.ProjectID)
	if err != nil {
		return err
	}
	if !actor.CanEditSchedules(project) {
		return domain.ErrForbidden
	}

	if err := s.schedules.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("schedule_id", id).Str("project_id", project.ID).Msg("schedule deleted")
	return nil
}

func (s *ScheduleService) ToggleCompletion(ctx context.Context, actor domain.Viewer, id string) (*domain.Schedule, error) {
	sched, err := s.schedules.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, sched.ProjectID)
	if err != nil {
		return nil, err
	}
	if !actor.CanEditSchedules(project) {
		return nil, domain.ErrForbidden
	}

	prev := sched.Status
	sched.ToggleCompletion(s.clock.Now().UTC())

	if err := s.schedules.UpdateStatus(ctx, sched.ID, sched.Status, sched.CompletedAt); err != nil {
		return nil, err
	}
	metrics.StatusTransitionsTotal.WithLabelValues(string(prev), string(sched.Status)).Inc()

	s.logger.Info().
		Str("schedule_id", sched.ID).
		Str("from", string(prev)).
		Str("to", string(sched.Status)).
		Msg("schedule completion toggled")

	return sched, nil
}

// refreshStatus re-derives the status against today's date and persists it
// only when it changed. Persistence failures are logged, not propagated: the
// derived value is still correct for this response and the next read retries
// the write.
func (s *ScheduleService) refreshStatus(ctx context.Context, sched *domain.Schedule) {
	refreshStatus(ctx, s.schedules, sched, s.clock.Today(), s.logger)
}
