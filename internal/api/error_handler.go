package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Collapses authentication failures into one message so the API never
//     reveals whether a username exists.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusBadRequest, "role not found"
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrInvalidCredentials):
		// One message for both: no username-existence oracle.
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenBadSignature),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrBusinessNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicateBusiness),
		errors.Is(err, domain.ErrDuplicateProject),
		errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidProjectDates),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidReviewTarget):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
