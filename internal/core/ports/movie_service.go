package ports

import (
	"context"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// CreateMovieInput carries the writable movie fields.
type CreateMovieInput struct {
	Title      string
	Year       int
	DirectorID *int64
}

type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id int64, input CreateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id int64) error
}
