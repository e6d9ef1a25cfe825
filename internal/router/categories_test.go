package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/categories"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

const routerCategoriesYAML = `
arxiv:
  - value: cs.AI
    label: Artificial Intelligence
    field: Computer Science
  - value: q-bio.NC
    label: Neurons and Cognition
    field: Quantitative Biology
biorxiv:
  - value: neuroscience
    label: Neuroscience
`

func newCategoriesEcho(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := categories.NewFileStoreFromReader(strings.NewReader(routerCategoriesYAML))
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCategoriesRouter(e, store).Bind()
	return e
}

func TestCategoriesArxiv(t *testing.T) {
	e := newCategoriesEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestCategoriesArxiv_FieldFilter(t *testing.T) {
	e := newCategoriesEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories?category=Computer+Science", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "cs.AI", rows[0].Value)
}

func TestCategoriesBiorxiv(t *testing.T) {
	e := newCategoriesEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/biorxiv/categories", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list domain.CategoryList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Categories, 1)
	assert.Equal(t, "neuroscience", list.Categories[0].Value)
	assert.Empty(t, list.Errors)
}

func TestCategoriesMedrxiv_Empty(t *testing.T) {
	e := newCategoriesEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/api/medrxiv/categories", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var list domain.CategoryList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Categories)
	require.Len(t, list.Errors, 1)
	assert.Contains(t, list.Errors[0], "no categories found")
}
