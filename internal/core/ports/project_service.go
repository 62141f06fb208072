package ports

import (
	"context"
	"time"

	"github.com/yamato-seiki/schedule-api/internal/core/calendar"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// CreateProjectInput carries the data for a new project.
type CreateProjectInput struct {
	Name                string
	ManufacturingNumber string
	DueDate             *time.Time
	Description         string
	AssignedToID        string
}

// UpdateProjectInput carries the editable project attributes.
type UpdateProjectInput struct {
	Name                string
	ManufacturingNumber string
	DueDate             *time.Time
	Description         string
	AssignedToID        string
}

// ListProjectsInput carries the list view query parameters. Status is
// "active" (default), "completed" or "all". Assignee is "all" or "me"
// (managers only). SortBy is one of the SortBy* keys.
type ListProjectsInput struct {
	Status   string
	Assignee string
	SortBy   string
}

// ProjectSummary is a project annotated for the list view.
type ProjectSummary struct {
	Project      *domain.Project
	Color        calendar.ColorPair
	CanBeDeleted bool
}

// ProjectDetail is the full project view: schedules status-refreshed, with
// the open-schedule count the completion gate reports.
type ProjectDetail struct {
	Project         *domain.Project
	Schedules       []*domain.Schedule
	IncompleteCount int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Viewer, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor domain.Viewer, id string) (*ProjectDetail, error)
	List(ctx context.Context, actor domain.Viewer, in ListProjectsInput) ([]ProjectSummary, error)
	Update(ctx context.Context, actor domain.Viewer, id string, in UpdateProjectInput) (*domain.Project, error)
	// Delete removes a schedule-less project. ErrProjectHasSchedules otherwise.
	Delete(ctx context.Context, actor domain.Viewer, id string) error
	// ToggleCompletion completes or reopens the project. Completing runs a
	// forced re-derivation pass over the schedules first and fails with
	// IncompleteSchedulesError while any remain open.
	ToggleCompletion(ctx context.Context, actor domain.Viewer, id string) (*domain.Project, error)
}
