package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/api/metrics"
	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Username     string   `json:"username" validate:"required"`
	Password     string   `json:"password" validate:"required"`
	Roles        []string `json:"roles"`
	Email        string   `json:"email" validate:"omitempty,email"`
	FirstName    string   `json:"first_name"`
	PaternalName string   `json:"paternal_name"`
	MaternalName string   `json:"maternal_name"`
	Description  string   `json:"description"`
	Phone        string   `json:"phone"`
	Image        string   `json:"image"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Roles    []domain.Role `json:"roles"`
}

type authenticatedResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SignUp registers a new user account.
//
// @Summary      Register a new user
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/authentication/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username:     req.Username,
		Password:     req.Password,
		RoleTags:     req.Roles,
		Email:        req.Email,
		FirstName:    req.FirstName,
		PaternalName: req.PaternalName,
		MaternalName: req.MaternalName,
		Description:  req.Description,
		Phone:        req.Phone,
		Image:        req.Image,
	})
	if err != nil {
		metrics.SignUpsTotal.WithLabelValues(signUpResult(err)).Inc()
		return err
	}

	metrics.SignUpsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	})
}

// SignIn authenticates a user and returns a bearer token.
//
// @Summary      Sign in
// @Tags         authentication
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authenticatedResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/authentication/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.SignInsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, authenticatedResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

func signUpResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "duplicate"
	case errors.Is(err, domain.ErrRoleNotFound):
		return "role_not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid"
	default:
		return "error"
	}
}
