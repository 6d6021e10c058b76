package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

type DirectorRepository struct {
	db *sqlx.DB
}

func NewDirectorRepository(db *sqlx.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

type directorRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	BirthYear int    `db:"birthYear"`
}

func (r directorRow) toDomain() domain.Director {
	return domain.Director{
		ID:        r.ID,
		Name:      r.Name,
		BirthYear: r.BirthYear,
	}
}

func (r *DirectorRepository) List(ctx context.Context) ([]domain.Director, error) {
	var rows []directorRow
	query := `SELECT id, name, "birthYear" FROM directors ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list directors: %w", err)
	}

	directors := make([]domain.Director, len(rows))
	for i, row := range rows {
		directors[i] = row.toDomain()
	}
	return directors, nil
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	var row directorRow
	query := `SELECT id, name, "birthYear" FROM directors WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDirectorNotFound
		}
		return nil, fmt.Errorf("get director: %w", err)
	}

	director := row.toDomain()
	return &director, nil
}

func (r *DirectorRepository) Create(ctx context.Context, director *domain.Director) (*domain.Director, error) {
	query := `INSERT INTO directors (name, "birthYear") VALUES ($1, $2) RETURNING id, name, "birthYear"`

	var row directorRow
	err := r.db.QueryRowxContext(ctx, query, director.Name, director.BirthYear).StructScan(&row)
	if err != nil {
		return nil, fmt.Errorf("insert director: %w", err)
	}

	created := row.toDomain()
	return &created, nil
}

func (r *DirectorRepository) Update(ctx context.Context, director *domain.Director) (*domain.Director, error) {
	query := `UPDATE directors SET name = $1, "birthYear" = $2 WHERE id = $3 RETURNING id, name, "birthYear"`

	var row directorRow
	err := r.db.QueryRowxContext(ctx, query, director.Name, director.BirthYear, director.ID).StructScan(&row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDirectorNotFound
		}
		return nil, fmt.Errorf("update director: %w", err)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a director. Movies referencing it keep existing with a
// NULL director_id (ON DELETE SET NULL on the foreign key).
func (r *DirectorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM directors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete director: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete director: %w", err)
	} else if n == 0 {
		return domain.ErrDirectorNotFound
	}

	return nil
}
