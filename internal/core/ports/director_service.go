package ports

import (
	"context"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// CreateDirectorInput carries the writable director fields.
type CreateDirectorInput struct {
	Name      string
	BirthYear int
}

type DirectorService interface {
	List(ctx context.Context) ([]domain.Director, error)
	Get(ctx context.Context, id int64) (*domain.Director, error)
	Create(ctx context.Context, input CreateDirectorInput) (*domain.Director, error)
	Update(ctx context.Context, id int64, input CreateDirectorInput) (*domain.Director, error)
	Delete(ctx context.Context, id int64) error
}
