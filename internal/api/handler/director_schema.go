package handler

import "github.com/filmcatalog/film-api/internal/core/domain"

// directorRequest is the body for POST and PUT /directors.
type directorRequest struct {
	Name      string `json:"name"      validate:"required"`
	BirthYear int    `json:"birthYear" validate:"required"`
}

type directorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
}

func toDirectorResponse(d *domain.Director) directorResponse {
	return directorResponse{ID: d.ID, Name: d.Name, BirthYear: d.BirthYear}
}

func toDirectorListResponse(directors []domain.Director) []directorResponse {
	out := make([]directorResponse, len(directors))
	for i := range directors {
		out[i] = toDirectorResponse(&directors[i])
	}
	return out
}
