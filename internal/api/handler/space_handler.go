package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

type SpaceHandler struct {
	spaces ports.SpaceService
}

func NewSpaceHandler(spaces ports.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaces: spaces}
}

func (h *SpaceHandler) Create(c echo.Context) error {
	var req createSpaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	space, err := h.spaces.Create(c.Request().Context(), ports.CreateSpaceInput{
		Name:        req.Name,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
		Amenities:   req.Amenities,
		Status:      domain.SpaceStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, space)
}

func (h *SpaceHandler) Get(c echo.Context) error {
	space, err := h.spaces.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, space)
}

func (h *SpaceHandler) List(c echo.Context) error {
	spaces, err := h.spaces.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, spaces)
}

func (h *SpaceHandler) Update(c echo.Context) error {
	var req updateSpaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	in := ports.UpdateSpaceInput{
		Name:        req.Name,
		Capacity:    req.Capacity,
		HourlyRate:  req.HourlyRate,
		Description: req.Description,
		Amenities:   req.Amenities,
	}
	if req.Status != nil {
		status := domain.SpaceStatus(*req.Status)
		in.Status = &status
	}

	space, err := h.spaces.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, space)
}

func (h *SpaceHandler) Delete(c echo.Context) error {
	if err := h.spaces.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
