package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/credits"
	"github.com/paper-hunter/paper-hunter/internal/simplify"
)

// CompletionRouter serves the credit-gated abstract simplification endpoint.
type CompletionRouter struct {
	e          *echo.Echo
	simplifier *simplify.Simplifier
}

func NewCompletionRouter(e *echo.Echo, simplifier *simplify.Simplifier) *CompletionRouter {
	return &CompletionRouter{
		e:          e,
		simplifier: simplifier,
	}
}

func (r *CompletionRouter) Bind() {
	r.e.POST("/api/completion", r.completionHandler)
}

func (r *CompletionRouter) completionHandler(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	var req simplify.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	text, err := r.simplifier.Simplify(c.Request().Context(), id, req)
	if err != nil {
		return r.completionError(c, err)
	}

	// Only the simplified text; credit state is not exposed here.
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}

func (r *CompletionRouter) completionError(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message})
	}
	if errors.Is(err, credits.ErrNoCredits) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No credits remaining"})
	}
	if errors.Is(err, simplify.ErrAbstractUnavailable) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Could not fetch paper abstract"})
	}

	slog.Error("Error simplifying abstract", "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
