package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/credits"
)

// CreditsRouter exposes the per-user credit balance consumed by the
// simplification feature.
type CreditsRouter struct {
	e     *echo.Echo
	store credits.Store
}

func NewCreditsRouter(e *echo.Echo, store credits.Store) *CreditsRouter {
	return &CreditsRouter{
		e:     e,
		store: store,
	}
}

func (r *CreditsRouter) Bind() {
	r.e.GET("/api/user/credits", r.balanceHandler)
	r.e.POST("/api/user/credits", r.spendHandler)
}

func (r *CreditsRouter) balanceHandler(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	balance, err := r.store.Balance(c.Request().Context(), id)
	if err != nil {
		slog.Error("Failed to fetch user credits", "userId", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch credits"})
	}

	return c.JSON(http.StatusOK, map[string]int{"credits": balance})
}

func (r *CreditsRouter) spendHandler(c echo.Context) error {
	id, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	}

	remaining, err := r.store.Spend(c.Request().Context(), id)
	if errors.Is(err, credits.ErrNoCredits) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "No credits remaining"})
	}
	if err != nil {
		slog.Error("Failed to use credit", "userId", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to use credit"})
	}

	return c.JSON(http.StatusOK, map[string]int{"credits": remaining})
}
