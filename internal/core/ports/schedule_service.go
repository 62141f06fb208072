package ports

import (
	"context"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// CreateScheduleInput carries the data for a new schedule.
type CreateScheduleInput struct {
	ProjectID   string
	FieldID     string
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// UpdateScheduleInput carries the editable schedule attributes.
type UpdateScheduleInput struct {
	FieldID     string
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// ScheduleDetail joins a schedule with its owning project.
type ScheduleDetail struct {
	Schedule *domain.Schedule
	Project  *domain.Project
}

// ScheduleService defines use-case operations for schedules. Every read
// path re-derives the status from today's date and persists it only when it
// changed.
type ScheduleService interface {
	Create(ctx context.Context, actor domain.Viewer, in CreateScheduleInput) (*domain.Schedule, error)
	Get(ctx context.Context, actor domain.Viewer, id string) (*ScheduleDetail, error)
	Update(ctx context.Context, actor domain.Viewer, id string, in UpdateScheduleInput) (*domain.Schedule, error)
	Delete(ctx context.Context, actor domain.Viewer, id string) error
	ToggleCompletion(ctx context.Context, actor domain.Viewer, id string) (*domain.Schedule, error)
}
