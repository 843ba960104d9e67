package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/api/metrics"
	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Create(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		SpaceID:    req.SpaceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: req.TotalPrice,
		Notes:      req.Notes,
	}, payload)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Get(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Get(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) List(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.List(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Update(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	in := ports.UpdateBookingInput{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: req.TotalPrice,
		Notes:      req.Notes,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		in.Status = &status
	}

	booking, err := h.bookings.Update(c.Request().Context(), c.Param("id"), in, payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	if err := h.bookings.Delete(c.Request().Context(), c.Param("id"), payload); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
