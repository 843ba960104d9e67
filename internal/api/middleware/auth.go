package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/api/metrics"
	"github.com/coworkia/coworking-api/internal/core/auth"
	"github.com/coworkia/coworking-api/internal/core/domain"
)

// payloadKey is the echo context key under which Auth stores the verified
// token payload.
const payloadKey = "auth_payload"

// Auth validates the bearer token and injects the verified payload into the
// request context. The authorizers below assume Auth ran earlier in the chain.
func Auth(tokens *auth.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			payload, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(payloadKey, *payload)
			return next(c)
		}
	}
}

// Payload extracts the verified token payload attached by Auth.
func Payload(c echo.Context) (domain.TokenPayload, bool) {
	p, ok := c.Get(payloadKey).(domain.TokenPayload)
	return p, ok
}
