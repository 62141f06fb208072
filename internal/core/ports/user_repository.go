package ports

import (
	"context"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

// UserFilter narrows the user listing. Results are always ordered by
// last name, first name, username.
type UserFilter struct {
	ActiveOnly        bool
	ExcludeSuperusers bool
	ExcludeViewers    bool
}

// UserRepository defines persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	// NextUserNo allocates the next sequential user number.
	NextUserNo(ctx context.Context) (int, error)
}
