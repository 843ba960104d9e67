package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/api/middleware"
	"github.com/coworkia/coworking-api/internal/core/auth"
	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// stubUserService lets each test pin down exactly the calls it expects.
type stubUserService struct {
	signUpFn  func(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error)
	loginFn   func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	getByIDFn func(ctx context.Context, id string) (*ports.UserProfile, error)
	listFn    func(ctx context.Context, q string, requester domain.TokenPayload) ([]*ports.UserProfile, error)
	updateFn  func(ctx context.Context, id string, in ports.UpdateUserInput) (*ports.UserProfile, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubUserService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*ports.UserProfile, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, q string, requester domain.TokenPayload) ([]*ports.UserProfile, error) {
	return s.listFn(ctx, q, requester)
}

func (s *stubUserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*ports.UserProfile, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertAppErrorStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", want)
	}
	if got := domain.AsAppError(err).Status; got != want {
		t.Fatalf("expected status %d, got %d (%v)", want, got, err)
	}
}

func TestUserHandler_SignUp_Created(t *testing.T) {
	var captured ports.SignUpInput
	h := NewUserHandler(&stubUserService{
		signUpFn: func(_ context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
			captured = in
			return &ports.AuthResult{Message: "user created", Token: "tok"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Ana","email":"a@x.com","password":"secret1","phone":"5511999"}`)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok"`) {
		t.Fatalf("token missing from response: %s", rec.Body.String())
	}
	if captured.Email != "a@x.com" || captured.Phone != "5511999" {
		t.Fatalf("input not forwarded: %+v", captured)
	}
}

func TestUserHandler_SignUp_InvalidJSON(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signUpFn: func(context.Context, ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatal("service must not be called on bind failure")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/users", `{not-json`)
	err := h.SignUp(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_SignUp_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signUpFn: func(context.Context, ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"Ana","email":"a@x.com","password":"123"}`},
		{"bad email", `{"name":"Ana","email":"nope","password":"secret1"}`},
		{"missing name", `{"email":"a@x.com","password":"secret1"}`},
		{"bad document type", `{"name":"Ana","email":"a@x.com","password":"secret1","document_type":"RG"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/users", tc.body)
			assertAppErrorStatus(t, h.SignUp(c), http.StatusBadRequest)
		})
	}
}

func TestUserHandler_SignUp_ConflictPassthrough(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		signUpFn: func(context.Context, ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.NewConflict("email already registered")
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/users",
		`{"name":"Ana","email":"a@x.com","password":"secret1"}`)
	assertAppErrorStatus(t, h.SignUp(c), http.StatusConflict)
}

func TestUserHandler_Login(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "a@x.com" || password != "secret1" {
				return nil, domain.NewBadRequest("invalid credentials")
			}
			return &ports.AuthResult{Message: "login successful", Token: "tok"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong12"}`)
	assertAppErrorStatus(t, h.Login(c), http.StatusBadRequest)

	c, _ = newTestContext(t, http.MethodPost, "/login", `{"email":"a@x.com"}`)
	assertAppErrorStatus(t, h.Login(c), http.StatusBadRequest)
}

func TestUserHandler_GetByID(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getByIDFn: func(_ context.Context, id string) (*ports.UserProfile, error) {
			if id != "u1" {
				return nil, domain.NewNotFound("user not found")
			}
			return &ports.UserProfile{ID: "u1", Name: "Ana", Email: "a@x.com"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.GetByID(c); err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"id":"u1"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatalf("credential material leaked: %s", body)
	}

	c, _ = newTestContext(t, http.MethodGet, "/users/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	assertAppErrorStatus(t, h.GetByID(c), http.StatusNotFound)
}

func TestUserHandler_List(t *testing.T) {
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	token, err := tokens.Create(domain.TokenPayload{ID: "admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	h := NewUserHandler(&stubUserService{
		listFn: func(_ context.Context, q string, requester domain.TokenPayload) ([]*ports.UserProfile, error) {
			if !requester.IsAdmin {
				return nil, domain.NewForbidden("admin privileges required")
			}
			if q != "ana" {
				t.Fatalf("query not forwarded: %q", q)
			}
			return []*ports.UserProfile{{ID: "u1", Name: "Ana"}}, nil
		},
	})

	// Through the auth middleware, as wired in the router.
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/users?q=ana", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := middleware.Auth(tokens)(h.List)(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"u1"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_List_MissingClaims(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context, string, domain.TokenPayload) ([]*ports.UserProfile, error) {
			t.Fatal("service must not be called without claims")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodGet, "/users", "")
	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	var captured ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id string, in ports.UpdateUserInput) (*ports.UserProfile, error) {
			captured = in
			return &ports.UserProfile{ID: id, Name: "Renamed"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPut, "/users/u1", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Name == nil || *captured.Name != "Renamed" {
		t.Fatalf("name not forwarded: %+v", captured)
	}
	if captured.Email != nil || captured.Password != nil {
		t.Fatalf("absent fields must stay nil: %+v", captured)
	}
}

func TestUserHandler_Update_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(context.Context, string, ports.UpdateUserInput) (*ports.UserProfile, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPut, "/users/u1", `{"email":"not-an-email"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	assertAppErrorStatus(t, h.Update(c), http.StatusBadRequest)
}

func TestUserHandler_Delete(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			if id == "root" {
				return domain.NewForbidden("cannot delete an admin account")
			}
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newTestContext(t, http.MethodDelete, "/users/root", "")
	c.SetParamNames("id")
	c.SetParamValues("root")
	assertAppErrorStatus(t, h.Delete(c), http.StatusForbidden)
}
