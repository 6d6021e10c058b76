package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/ports"
)

// DirectorService implements catalog use-cases for directors.
type DirectorService struct {
	repo   ports.DirectorRepository
	logger zerolog.Logger
}

func NewDirectorService(repo ports.DirectorRepository, logger zerolog.Logger) *DirectorService {
	return &DirectorService{repo: repo, logger: logger}
}

func (s *DirectorService) List(ctx context.Context) ([]domain.Director, error) {
	return s.repo.List(ctx)
}

func (s *DirectorService) Get(ctx context.Context, id int64) (*domain.Director, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DirectorService) Create(ctx context.Context, input ports.CreateDirectorInput) (*domain.Director, error) {
	director, err := s.repo.Create(ctx, &domain.Director{
		Name:      input.Name,
		BirthYear: input.BirthYear,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("director_id", director.ID).Str("name", director.Name).Msg("director created")
	return director, nil
}

func (s *DirectorService) Update(ctx context.Context, id int64, input ports.CreateDirectorInput) (*domain.Director, error) {
	director, err := s.repo.Update(ctx, &domain.Director{
		ID:        id,
		Name:      input.Name,
		BirthYear: input.BirthYear,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("director_id", id).Msg("director updated")
	return director, nil
}

func (s *DirectorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("director_id", id).Msg("director deleted")
	return nil
}
