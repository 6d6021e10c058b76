package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmcatalog/film-api/internal/api/metrics"
	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/ports"
)

// DirectorHandler handles HTTP requests for the directors resource. Its
// guard pattern mirrors movies: reads are public, create needs auth,
// update/delete need the admin role.
type DirectorHandler struct {
	service ports.DirectorService
}

func NewDirectorHandler(service ports.DirectorService) *DirectorHandler {
	return &DirectorHandler{service: service}
}

// List handles GET /directors.
//
// @Summary      List all directors
// @Tags         directors
// @Produce      json
// @Success      200  {array}  directorResponse
// @Router       /directors [get]
func (h *DirectorHandler) List(c echo.Context) error {
	directors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDirectorListResponse(directors))
}

// Get handles GET /directors/:id.
//
// @Summary      Get a director by id
// @Tags         directors
// @Produce      json
// @Param        id   path      int  true  "Director id"
// @Success      200  {object}  directorResponse
// @Failure      404  {object}  map[string]string
// @Router       /directors/{id} [get]
func (h *DirectorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrDirectorNotFound
	}

	director, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDirectorResponse(director))
}

// Create handles POST /directors.
//
// @Summary      Create a director
// @Tags         directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      directorRequest  true  "Director details"
// @Success      201   {object}  directorResponse
// @Failure      400   {object}  map[string]string
// @Router       /directors [post]
func (h *DirectorHandler) Create(c echo.Context) error {
	var req directorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	director, err := h.service.Create(c.Request().Context(), ports.CreateDirectorInput{
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("director", "create").Inc()
	return c.JSON(http.StatusCreated, toDirectorResponse(director))
}

// Update handles PUT /directors/:id.
//
// @Summary      Update a director
// @Tags         directors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Director id"
// @Param        body  body      directorRequest  true  "Director details"
// @Success      200   {object}  directorResponse
// @Failure      404   {object}  map[string]string
// @Router       /directors/{id} [put]
func (h *DirectorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrDirectorNotFound
	}

	var req directorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	director, err := h.service.Update(c.Request().Context(), id, ports.CreateDirectorInput{
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("director", "update").Inc()
	return c.JSON(http.StatusOK, toDirectorResponse(director))
}

// Delete handles DELETE /directors/:id. Movies referencing the director
// keep existing with a null director_id.
//
// @Summary      Delete a director
// @Tags         directors
// @Security     BearerAuth
// @Param        id  path  int  true  "Director id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /directors/{id} [delete]
func (h *DirectorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return domain.ErrDirectorNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("director", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
