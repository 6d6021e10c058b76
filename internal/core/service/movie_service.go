package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/ports"
)

// MovieService implements catalog use-cases for movies.
type MovieService struct {
	repo   ports.MovieRepository
	logger zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, logger: logger}
}

func (s *MovieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.repo.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	movie, err := s.repo.Create(ctx, &domain.Movie{
		Title:      input.Title,
		Year:       input.Year,
		DirectorID: input.DirectorID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("movie_id", movie.ID).Str("title", movie.Title).Msg("movie created")
	return movie, nil
}

func (s *MovieService) Update(ctx context.Context, id int64, input ports.CreateMovieInput) (*domain.Movie, error) {
	movie, err := s.repo.Update(ctx, &domain.Movie{
		ID:         id,
		Title:      input.Title,
		Year:       input.Year,
		DirectorID: input.DirectorID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("movie_id", id).Msg("movie updated")
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("movie_id", id).Msg("movie deleted")
	return nil
}
