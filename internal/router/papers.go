package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
	"github.com/paper-hunter/paper-hunter/internal/search"
)

// PapersRouter serves the per-source search endpoints. Every response uses
// the same envelope; the status distinguishes validation failure (400) from
// processing failure (500) and success (200).
type PapersRouter struct {
	e        *echo.Echo
	searcher *search.Searcher
}

func NewPapersRouter(e *echo.Echo, searcher *search.Searcher) *PapersRouter {
	return &PapersRouter{
		e:        e,
		searcher: searcher,
	}
}

func (r *PapersRouter) Bind() {
	r.e.GET("/api/papers", r.arxivHandler)
	r.e.POST("/api/papers", r.arxivHandler)
	r.e.GET("/api/biorxiv/papers", r.biorxivHandler)
	r.e.POST("/api/biorxiv/papers", r.biorxivHandler)
	r.e.GET("/api/medrxiv/papers", r.medrxivHandler)
	r.e.POST("/api/medrxiv/papers", r.medrxivHandler)
}

func (r *PapersRouter) arxivHandler(c echo.Context) error {
	return r.searchHandler(c, domain.SourceArxiv, true)
}

func (r *PapersRouter) biorxivHandler(c echo.Context) error {
	return r.searchHandler(c, domain.SourceBiorxiv, false)
}

func (r *PapersRouter) medrxivHandler(c echo.Context) error {
	return r.searchHandler(c, domain.SourceMedrxiv, false)
}

func (r *PapersRouter) searchHandler(c echo.Context, source domain.Source, multiCategory bool) error {
	q, err := parseSearchQuery(c, multiCategory)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.EmptyResult(err.Error()))
	}

	result, err := r.searcher.Search(c.Request().Context(), source, q)
	return c.JSON(searchStatus(err), result)
}

func searchStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
