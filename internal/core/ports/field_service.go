package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// FieldResult is returned on field creation; Reference is the short
// confirmation code echoed back to the UI.
type FieldResult struct {
	Field     *domain.Field
	Reference string
}

// FieldService defines use-case operations for work fields.
type FieldService interface {
	List(ctx context.Context) ([]*domain.Field, error)
	Create(ctx context.Context, actor domain.Viewer, name string) (*FieldResult, error)
	Update(ctx context.Context, actor domain.Viewer, id, name string) (*domain.Field, error)
	// Delete removes a field nothing references. ErrFieldInUse otherwise.
	Delete(ctx context.Context, actor domain.Viewer, id string) error
}
