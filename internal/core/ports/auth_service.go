package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// RegisterInput carries the data for a new account.
type RegisterInput struct {
	Username   string
	Password   string
	Email      string
	FirstName  string
	LastName   string
	Department string
	Phone      string
}

// AuthService implements registration, login and the user selection lists
// the project and calendar views depend on.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// AssignableUsers returns who the actor may assign a project to:
	// managers and superusers pick from all active non-superuser accounts,
	// regular users only themselves.
	AssignableUsers(ctx context.Context, actor domain.Viewer) ([]*domain.User, error)
}
