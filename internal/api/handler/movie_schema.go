package handler

import "github.com/filmcatalog/film-api/internal/core/domain"

// movieRequest is the body for POST and PUT /movies. DirectorID is a
// pointer so that "required" means the field was present, while the stored
// reference itself stays nullable.
type movieRequest struct {
	Title      string `json:"title"       validate:"required"`
	DirectorID *int64 `json:"director_id" validate:"required"`
	Year       int    `json:"year"        validate:"required"`
}

// movieResponse carries the joined director info; director_id and
// director_name are null when the movie has no director set.
type movieResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	DirectorID   *int64  `json:"director_id"`
	DirectorName *string `json:"director_name"`
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:           m.ID,
		Title:        m.Title,
		Year:         m.Year,
		DirectorID:   m.DirectorID,
		DirectorName: m.DirectorName,
	}
}

func toMovieListResponse(movies []domain.Movie) []movieResponse {
	out := make([]movieResponse, len(movies))
	for i := range movies {
		out[i] = toMovieResponse(&movies[i])
	}
	return out
}
