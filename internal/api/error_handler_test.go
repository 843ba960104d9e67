package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %s", rec.Body.String())
	}
	return rec, body
}

func TestHTTPErrorHandler_AppErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.NewValidation("name is required"), http.StatusBadRequest, "name is required"},
		{"unauthorized", domain.NewUnauthorized("invalid token"), http.StatusUnauthorized, "invalid token"},
		{"forbidden", domain.NewForbidden("admin privileges required"), http.StatusForbidden, "admin privileges required"},
		{"not found", domain.NewNotFound("user not found"), http.StatusNotFound, "user not found"},
		{"conflict", domain.NewConflict("email already registered"), http.StatusConflict, "email already registered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if body.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_InternalHidesCause(t *testing.T) {
	rec, body := renderError(t, domain.NewInternal(errors.New("dial tcp: connection refused")))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("cause leaked to client: %q", body.Error)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: topology closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("cause leaked to client: %q", body.Error)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(domain.NewNotFound("user not found"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body written after commit: %s", rec.Body.String())
	}
}
