package ports

import (
	"context"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Usernames are
// stored lowercased; uniqueness is enforced by the store and surfaced as
// domain.ErrUsernameTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
