package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It composes after Auth:
// a request with no verified identity is rejected with 401, one whose role
// is not in the allowed set with 403.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
