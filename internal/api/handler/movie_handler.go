package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/api/metrics"
	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for the movies resource.
type MovieHandler struct {
	service ports.MovieService
	logger  zerolog.Logger
}

func NewMovieHandler(service ports.MovieService, logger zerolog.Logger) *MovieHandler {
	return &MovieHandler{service: service, logger: logger}
}

// List handles GET /movies.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}   movieResponse
// @Failure      500  {object}  map[string]string
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieListResponse(movies))
}

// Get handles GET /movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie id"
// @Success      200  {object}  movieResponse
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	movie, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Create handles POST /movies.
//
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if identity, ok := ctxIdentity(c); ok {
		h.logger.Info().Str("username", identity.Username).Str("title", req.Title).Msg("movie create requested")
	}

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:      req.Title,
		Year:       req.Year,
		DirectorID: req.DirectorID,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("movie", "create").Inc()
	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Update handles PUT /movies/:id.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Movie id"
// @Param        body  body      movieRequest  true  "Movie details"
// @Success      200   {object}  movieResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), id, ports.CreateMovieInput{
		Title:      req.Title,
		Year:       req.Year,
		DirectorID: req.DirectorID,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("movie", "update").Inc()
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete handles DELETE /movies/:id.
//
// @Summary      Delete a movie
// @Tags         movies
// @Security     BearerAuth
// @Param        id  path  int  true  "Movie id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("movie", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
