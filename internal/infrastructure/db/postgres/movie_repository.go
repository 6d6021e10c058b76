package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

type MovieRepository struct {
	db *sqlx.DB
}

func NewMovieRepository(db *sqlx.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

type movieRow struct {
	ID           int64   `db:"id"`
	Title        string  `db:"title"`
	Year         int     `db:"year"`
	DirectorID   *int64  `db:"director_id"`
	DirectorName *string `db:"director_name"`
}

func (r movieRow) toDomain() domain.Movie {
	return domain.Movie{
		ID:           r.ID,
		Title:        r.Title,
		Year:         r.Year,
		DirectorID:   r.DirectorID,
		DirectorName: r.DirectorName,
	}
}

// movieSelect joins in the director's name; director_name is NULL when the
// movie has no director set.
const movieSelect = `
	SELECT m.id, m.title, m.year, m.director_id, d.name AS director_name
	FROM movies m
	LEFT JOIN directors d ON d.id = m.director_id
`

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	var rows []movieRow
	if err := r.db.SelectContext(ctx, &rows, movieSelect+` ORDER BY m.id ASC`); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movies := make([]domain.Movie, len(rows))
	for i, row := range rows {
		movies[i] = row.toDomain()
	}
	return movies, nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	var row movieRow
	if err := r.db.GetContext(ctx, &row, movieSelect+` WHERE m.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}

	movie := row.toDomain()
	return &movie, nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `INSERT INTO movies (title, director_id, year) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, movie.Title, movie.DirectorID, movie.Year).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	// re-read through the join so the response carries the director's name
	return r.GetByID(ctx, id)
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) (*domain.Movie, error) {
	query := `UPDATE movies SET title = $1, director_id = $2, year = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, movie.Title, movie.DirectorID, movie.Year, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	} else if n == 0 {
		return nil, domain.ErrMovieNotFound
	}

	return r.GetByID(ctx, movie.ID)
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	} else if n == 0 {
		return domain.ErrMovieNotFound
	}

	return nil
}
