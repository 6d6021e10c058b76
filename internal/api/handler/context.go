package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/film-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. The
// second return is false when the middleware did not run on this route.
func ctxIdentity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get("identity").(domain.Identity)
	return identity, ok
}

// pathID parses the :id path parameter. A non-numeric id can never match a
// row, so callers treat a parse failure as not-found.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
