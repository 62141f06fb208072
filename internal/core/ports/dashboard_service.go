package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// DashboardEntry joins a schedule with its owning project for display.
type DashboardEntry struct {
	Schedule *domain.Schedule
	Project  *domain.Project
}

// DashboardResult is the landing-page read model: what runs today, what ran
// or runs within a week of today, and the newest projects, all scoped to the
// caller's visibility.
type DashboardResult struct {
	Today    []DashboardEntry
	Recent   []DashboardEntry
	Projects []*domain.Project
}

// DashboardService assembles the landing-page overview.
type DashboardService interface {
	Overview(ctx context.Context, actor domain.Viewer) (*DashboardResult, error)
}
