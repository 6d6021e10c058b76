package ports

import (
	"context"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// DirectorRepository defines persistence operations for directors.
// Deleting a director nulls out movies.director_id on referencing rows;
// the FK rule lives in the store, not here.
type DirectorRepository interface {
	List(ctx context.Context) ([]domain.Director, error)
	GetByID(ctx context.Context, id int64) (*domain.Director, error)
	Create(ctx context.Context, director *domain.Director) (*domain.Director, error)
	Update(ctx context.Context, director *domain.Director) (*domain.Director, error)
	Delete(ctx context.Context, id int64) error
}
