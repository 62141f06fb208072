package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// FieldService implements work-field management.
type FieldService struct {
	fields    ports.FieldRepository
	schedules ports.ScheduleRepository
	clock     ports.Clock
	logger    zerolog.Logger
}

func NewFieldService(fields ports.FieldRepository, schedules ports.ScheduleRepository, clock ports.Clock, logger zerolog.Logger) *FieldService {
	return &FieldService{fields: fields, schedules: schedules, clock: clock, logger: logger}
}

func (s *FieldService) List(ctx context.Context) ([]*domain.Field, error) {
	return s.fields.List(ctx)
}

func (s *FieldService) Create(ctx context.Context, actor domain.Viewer, name string) (*ports.FieldResult, error) {
	if !actor.CanCreate() {
		return nil, domain.ErrForbidden
	}

	field := &domain.Field{
		Name:        name,
		CreatedByID: actor.ID,
		CreatedAt:   s.clock.Now().UTC(),
	}
	created, err := s.fields.Create(ctx, field)
	if err != nil {
		return nil, err
	}

	// Short reference code echoed in the confirmation message.
	ref := uuid.NewString()[:8]

	s.logger.Info().Str("field_id", created.ID).Str("name", name).Str("ref", ref).Msg("field created")
	return &ports.FieldResult{Field: created, Reference: ref}, nil
}

func (s *FieldService) Update(ctx context.Context, actor domain.Viewer, id, name string) (*domain.Field, error) {
	if !actor.CanCreate() {
		return nil, domain.ErrForbidden
	}

	field, err := s.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	field.Name = name
	if err := s.fields.Update(ctx, field); err != nil {
		return nil, err
	}
	return field, nil
}

func (s *FieldService) Delete(ctx context.Context, actor domain.Viewer, id string) error {
	if !actor.CanCreate() {
		return domain.ErrForbidden
	}

	if _, err := s.fields.FindByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.schedules.ExistsByField(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrFieldInUse
	}

	if err := s.fields.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("field_id", id).Msg("field deleted")
	return nil
}
