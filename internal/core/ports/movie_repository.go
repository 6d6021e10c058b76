package ports

import (
	"context"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// MovieRepository defines persistence operations for movies. List and
// GetByID left-join the directors table so results carry the director's
// name; List is always ordered by ascending movie id.
type MovieRepository interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id int64) error
}
