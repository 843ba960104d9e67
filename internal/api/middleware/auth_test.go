package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/core/auth"
	"github.com/coworkia/coworking-api/internal/core/domain"
)

func newTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return tokens
}

func runAuth(t *testing.T, tokens *auth.TokenManager, header string) (error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c), c
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, he.Code, he.Message)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := newTokenManager(t)
	token, err := tokens.Create(domain.TokenPayload{ID: "u1", Name: "Ana", IsAdmin: true, Roles: []string{"staff"}})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	err, c := runAuth(t, tokens, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}

	payload, ok := Payload(c)
	if !ok {
		t.Fatalf("payload not attached to context")
	}
	if payload.ID != "u1" || payload.Name != "Ana" || !payload.IsAdmin {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Roles) != 1 || payload.Roles[0] != "staff" {
		t.Fatalf("roles not carried: %v", payload.Roles)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	err, _ := runAuth(t, newTokenManager(t), "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := newTokenManager(t)
	for _, header := range []string{"Bearer", "Basic abc123", "just-a-token"} {
		err, _ := runAuth(t, tokens, header)
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	err, _ := runAuth(t, newTokenManager(t), "Bearer not.a.token")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_WrongSecret(t *testing.T) {
	other, err := auth.NewTokenManager("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	token, err := other.Create(domain.TokenPayload{ID: "u1"})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	verr, _ := runAuth(t, newTokenManager(t), "Bearer "+token)
	assertHTTPStatus(t, verr, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	short, err := auth.NewTokenManager("test-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	token, err := short.Create(domain.TokenPayload{ID: "u1"})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	verr, _ := runAuth(t, newTokenManager(t), "Bearer "+token)
	assertHTTPStatus(t, verr, http.StatusUnauthorized)
}
