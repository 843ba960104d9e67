package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/api/middleware"
	"github.com/coworkia/coworking-api/internal/core/domain"
)

// requesterPayload extracts the verified token payload attached by the Auth
// middleware. Absence means the route was wired without Auth in front; the
// request is rejected rather than reaching business logic unauthenticated.
func requesterPayload(c echo.Context) (domain.TokenPayload, error) {
	payload, ok := middleware.Payload(c)
	if !ok {
		return domain.TokenPayload{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return payload, nil
}
