package domain

import "errors"

var ErrDirectorNotFound = errors.New("director not found")

// Director is a person movies may reference.
type Director struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
}
