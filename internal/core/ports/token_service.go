package ports

import "github.com/filmcatalog/film-api/internal/core/domain"

// TokenService issues and verifies self-contained bearer tokens. There is
// no server-side state: verification is a pure function of token, secret
// and current time.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns domain.ErrTokenExpired for tokens past expiry and
	// domain.ErrTokenInvalid for anything malformed, unsigned or tampered.
	Verify(raw string) (domain.Identity, error)
}
