package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// FieldRepository defines persistence for work fields.
type FieldRepository interface {
	Create(ctx context.Context, f *domain.Field) (*domain.Field, error)
	FindByID(ctx context.Context, id string) (*domain.Field, error)
	// List returns all fields ordered by name.
	List(ctx context.Context) ([]*domain.Field, error)
	Update(ctx context.Context, f *domain.Field) error
	Delete(ctx context.Context, id string) error
}
