package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/api/middleware"
	"github.com/metasoft/restyle-platform/internal/core/domain"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// ProfileHandler serves contractor and remodeler information cards. The
// kind is fixed per route at registration time.
type ProfileHandler struct {
	service ports.ProfileService
	kind    domain.ProfileKind
}

func NewProfileHandler(service ports.ProfileService, kind domain.ProfileKind) *ProfileHandler {
	return &ProfileHandler{service: service, kind: kind}
}

type createProfileRequest struct {
	Description  string `json:"description" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Subscription string `json:"subscription"`
}

// Create handles POST /api/v1/contractors and /api/v1/remodelers. The
// profile is attached to the authenticated user.
func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}

	profile, err := h.service.Create(c.Request().Context(), ports.CreateProfileInput{
		Kind:         h.kind,
		UserID:       principal.Username,
		Description:  req.Description,
		Phone:        req.Phone,
		Subscription: req.Subscription,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// Get handles GET on a single profile by id.
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// List handles GET on all profiles of the handler's kind.
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.ListByKind(c.Request().Context(), h.kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}
