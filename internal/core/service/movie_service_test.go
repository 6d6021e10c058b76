package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/ports"
)

type stubMovieRepo struct {
	movies map[int64]domain.Movie
	nextID int64
}

func newStubMovieRepo() *stubMovieRepo {
	return &stubMovieRepo{movies: make(map[int64]domain.Movie), nextID: 1}
}

func (r *stubMovieRepo) List(_ context.Context) ([]domain.Movie, error) {
	out := make([]domain.Movie, 0, len(r.movies))
	for id := int64(1); id < r.nextID; id++ {
		if m, ok := r.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMovieRepo) GetByID(_ context.Context, id int64) (*domain.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return &m, nil
}

func (r *stubMovieRepo) Create(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	m := *movie
	m.ID = r.nextID
	r.nextID++
	r.movies[m.ID] = m
	return &m, nil
}

func (r *stubMovieRepo) Update(_ context.Context, movie *domain.Movie) (*domain.Movie, error) {
	if _, ok := r.movies[movie.ID]; !ok {
		return nil, domain.ErrMovieNotFound
	}
	r.movies[movie.ID] = *movie
	return movie, nil
}

func (r *stubMovieRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

func TestMovieService_CreateAndGet(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo, zerolog.Nop())

	directorID := int64(1)
	created, err := svc.Create(context.Background(), ports.CreateMovieInput{
		Title:      "Dune",
		Year:       2021,
		DirectorID: &directorID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Dune" || got.Year != 2021 || got.DirectorID == nil || *got.DirectorID != 1 {
		t.Fatalf("unexpected movie: %+v", got)
	}
}

func TestMovieService_UpdateNotFound(t *testing.T) {
	svc := NewMovieService(newStubMovieRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 42, ports.CreateMovieInput{Title: "x", Year: 2000})
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieService_DeleteThenGone(t *testing.T) {
	repo := newStubMovieRepo()
	svc := NewMovieService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateMovieInput{Title: "Alien", Year: 1979})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound on second delete, got %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound after delete, got %v", err)
	}
}
