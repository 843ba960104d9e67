package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// OfferingHandler serves the /services routes.
type OfferingHandler struct {
	offerings ports.OfferingService
}

func NewOfferingHandler(offerings ports.OfferingService) *OfferingHandler {
	return &OfferingHandler{offerings: offerings}
}

func (h *OfferingHandler) Create(c echo.Context) error {
	var req createOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	offering, err := h.offerings.Create(c.Request().Context(), ports.CreateOfferingInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Available:       req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, offering)
}

func (h *OfferingHandler) Get(c echo.Context) error {
	offering, err := h.offerings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.offerings.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offerings)
}

func (h *OfferingHandler) Update(c echo.Context) error {
	var req updateOfferingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	offering, err := h.offerings.Update(c.Request().Context(), c.Param("id"), ports.UpdateOfferingInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Available:       req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, offering)
}

func (h *OfferingHandler) Delete(c echo.Context) error {
	if err := h.offerings.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
