package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/categories"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// CategoriesRouter passes the read-only category reference data through to
// the UI filters.
type CategoriesRouter struct {
	e     *echo.Echo
	store categories.Store
}

func NewCategoriesRouter(e *echo.Echo, store categories.Store) *CategoriesRouter {
	return &CategoriesRouter{
		e:     e,
		store: store,
	}
}

func (r *CategoriesRouter) Bind() {
	r.e.GET("/api/categories", r.arxivHandler)
	r.e.GET("/api/biorxiv/categories", r.listHandler(domain.SourceBiorxiv))
	r.e.GET("/api/medrxiv/categories", r.listHandler(domain.SourceMedrxiv))
}

// arxivHandler returns the full rows including field/description, optionally
// filtered to one field group.
func (r *CategoriesRouter) arxivHandler(c echo.Context) error {
	rows, err := r.store.List(c.Request().Context(), domain.SourceArxiv)
	if err != nil {
		return err
	}

	if field := c.QueryParam("category"); field != "" {
		filtered := make([]domain.Category, 0, len(rows))
		for _, row := range rows {
			if row.Field == field {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	return c.JSON(http.StatusOK, rows)
}

func (r *CategoriesRouter) listHandler(source domain.Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := r.store.List(c.Request().Context(), source)
		if err != nil {
			slog.Error("Failed to list categories", "source", source, "error", err)
			return c.JSON(http.StatusInternalServerError, domain.CategoryList{
				Categories: []domain.Category{},
				Errors:     []string{err.Error()},
			})
		}

		return c.JSON(http.StatusOK, domain.CategoryList{
			Categories: rows,
			Errors:     []string{},
		})
	}
}
