package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// RequestHandler handles HTTP requests for project request operations.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type createRequestRequest struct {
	Name         string    `json:"name" validate:"required"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email" validate:"omitempty,email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Description  string    `json:"description"`
	BusinessID   int       `json:"business_id" validate:"gte=1"`
	ContractorID int       `json:"contractor_id" validate:"gte=1"`
	Deadline     time.Time `json:"deadline"`
	Rooms        int       `json:"rooms" validate:"gte=0"`
	Budget       float64   `json:"budget" validate:"gte=0"`
}

// Create handles POST /api/v1/project-requests.
//
// @Summary      Send a project request to a contractor
// @Tags         project-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  domain.ProjectRequest
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/project-requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Description:  req.Description,
		BusinessID:   req.BusinessID,
		ContractorID: req.ContractorID,
		Deadline:     req.Deadline,
		Rooms:        req.Rooms,
		Budget:       req.Budget,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, request)
}

// Get handles GET /api/v1/project-requests/:id.
func (h *RequestHandler) Get(c echo.Context) error {
	request, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// List handles GET /api/v1/project-requests filtered by business_id or
// contractor_id. Exactly one filter is required.
func (h *RequestHandler) List(c echo.Context) error {
	if raw := c.QueryParam("business_id"); raw != "" {
		businessID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "business_id must be an integer")
		}
		requests, err := h.service.ListByBusiness(c.Request().Context(), businessID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, requests)
	}

	if raw := c.QueryParam("contractor_id"); raw != "" {
		contractorID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "contractor_id must be an integer")
		}
		requests, err := h.service.ListByContractor(c.Request().Context(), contractorID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, requests)
	}

	return echo.NewHTTPError(http.StatusBadRequest, "business_id or contractor_id query is required")
}
