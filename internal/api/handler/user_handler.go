package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coworkia/coworking-api/internal/api/metrics"
	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SignUp registers a new user and returns a token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	result, err := h.users.SignUp(c.Request().Context(), ports.SignUpInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		IsAdmin:        req.IsAdmin,
		Roles:          req.Roles,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, result)
}

// Login authenticates a user and returns a token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	result, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

// GetByID returns a single user projection (never the credential hash).
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  ports.UserProfile
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	profile, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List returns all user projections, optionally filtered by ?q=.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        q  query  string  false  "Name/email substring filter"
// @Success      200  {array}  ports.UserProfile
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	payload, err := requesterPayload(c)
	if err != nil {
		return err
	}

	profiles, err := h.users.List(c.Request().Context(), c.QueryParam("q"), payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// Update applies a partial update to a user.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to update"
// @Success      200   {object}  ports.UserProfile
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidation(err.Error())
	}

	profile, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		IsAdmin:        req.IsAdmin,
		Roles:          req.Roles,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Delete removes a user. Admin accounts cannot be deleted.
//
// @Summary      Delete user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
