package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// BusinessHandler handles HTTP requests for business operations.
type BusinessHandler struct {
	service ports.BusinessService
}

func NewBusinessHandler(service ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

type createBusinessRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Image       string `json:"image"`
	Expertise   string `json:"expertise"`
	RemodelerID int    `json:"remodeler_id" validate:"gte=0"`
}

// Create handles POST /api/v1/businesses.
//
// @Summary      Register a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBusinessRequest  true  "Business details"
// @Success      201   {object}  domain.Business
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	business, err := h.service.Create(c.Request().Context(), ports.CreateBusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Image:       req.Image,
		Expertise:   req.Expertise,
		RemodelerID: req.RemodelerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, business)
}

// Get handles GET /api/v1/businesses/:id.
func (h *BusinessHandler) Get(c echo.Context) error {
	business, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, business)
}

// List handles GET /api/v1/businesses.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, businesses)
}
