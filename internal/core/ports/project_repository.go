package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// Project list sort keys.
const (
	SortByName                = "name"
	SortByManufacturingNumber = "manufacturing_number"
	SortByDueDate             = "due_date"
	SortByCreatedAt           = "created_at"
	SortByCompletedAt         = "completed_at"
	SortByAssignee            = "assigned_to"
)

// ProjectListFilter carries the query parameters for listing projects.
// ViewerID non-empty scopes the result to projects the viewer created or is
// assigned to; empty means unrestricted (managers, superusers, viewers).
type ProjectListFilter struct {
	ViewerID     string
	AssignedToID string // optional equality filter
	Completed    *bool  // nil = no completion filter
	SortBy       string // one of the SortBy* keys, default name
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindByIDs returns the projects for the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Project, error)
	List(ctx context.Context, filter ProjectListFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
