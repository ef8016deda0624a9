package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description"`
	BusinessID   int       `json:"business_id" validate:"gte=1"`
	ContractorID int       `json:"contractor_id" validate:"gte=1"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	FinishDate   time.Time `json:"finish_date" validate:"required"`
	Image        string    `json:"image"`
}

// Create handles POST /api/v1/projects.
//
// @Summary      Open a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		BusinessID:   req.BusinessID,
		ContractorID: req.ContractorID,
		StartDate:    req.StartDate,
		FinishDate:   req.FinishDate,
		Image:        req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /api/v1/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /api/v1/projects. The optional business_id query filters
// by owning business.
func (h *ProjectHandler) List(c echo.Context) error {
	if raw := c.QueryParam("business_id"); raw != "" {
		businessID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "business_id must be an integer")
		}
		projects, err := h.service.ListByBusiness(c.Request().Context(), businessID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, projects)
	}

	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}
