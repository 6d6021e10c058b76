package domain

import "errors"

var ErrMovieNotFound = errors.New("movie not found")

// Movie is a catalog entry. DirectorID is a nullable reference to a
// Director; a movie does not own its director. DirectorName is read-only
// denormalisation filled in by the joined list/get queries.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	DirectorID   *int64  `json:"director_id"`
	DirectorName *string `json:"director_name"`
}
