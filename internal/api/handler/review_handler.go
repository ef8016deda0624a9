package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	ContractorID int    `json:"contractor_id" validate:"gte=1"`
	ProjectID    int    `json:"project_id" validate:"gte=1"`
	Duration     string `json:"duration"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment"`
	Image        string `json:"image"`
}

type updateReviewRequest struct {
	Comment  *string `json:"comment"`
	Image    *string `json:"image"`
	Duration *string `json:"duration"`
}

// Create handles POST /api/v1/reviews.
//
// @Summary      Leave a review for a contractor
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		ContractorID: req.ContractorID,
		ProjectID:    req.ProjectID,
		Duration:     req.Duration,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Image:        req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Get handles GET /api/v1/reviews/:id.
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// List handles GET /api/v1/reviews, optionally filtered by contractor_id.
func (h *ReviewHandler) List(c echo.Context) error {
	if raw := c.QueryParam("contractor_id"); raw != "" {
		contractorID, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "contractor_id must be an integer")
		}
		reviews, err := h.service.ListByContractor(c.Request().Context(), contractorID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, reviews)
	}

	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Update handles PATCH /api/v1/reviews/:id. Only comment, image and
// duration are editable.
func (h *ReviewHandler) Update(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateReviewInput{
		Comment:  req.Comment,
		Image:    req.Image,
		Duration: req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}
