package ports

import (
	"context"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// ScheduleRepository defines persistence for schedules.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	FindByID(ctx context.Context, id string) (*domain.Schedule, error)
	// FindByProject returns the project's schedules ordered by start date.
	FindByProject(ctx context.Context, projectID string) ([]*domain.Schedule, error)
	// FindOverlapping returns schedules with start_date <= to AND end_date >= from.
	FindOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Schedule, error)
	FindAll(ctx context.Context) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	// UpdateStatus persists a status change from the lazy re-derivation path
	// without touching the rest of the document.
	UpdateStatus(ctx context.Context, id string, status domain.ScheduleStatus, completedAt *time.Time) error
	Delete(ctx context.Context, id string) error
	ExistsByProject(ctx context.Context, projectID string) (bool, error)
	ExistsByField(ctx context.Context, fieldID string) (bool, error)
}
