package router

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/feed"
	"github.com/paper-hunter/paper-hunter/pkg/stringsutil"
)

// userIDHeader carries the caller identity resolved by the external
// identity layer in front of this service.
const userIDHeader = "X-User-Id"

type searchRequest struct {
	Categories []string `json:"categories"`
	Category   string   `json:"category"`
	Keywords   []string `json:"keywords"`
	Limit      int      `json:"limit"`
}

// parseSearchQuery reads a search query from either the JSON body (POST) or
// query parameters (GET). multiCategory selects between the arXiv shape
// (categories list) and the bioRxiv/medRxiv shape (single category).
func parseSearchQuery(c echo.Context, multiCategory bool) (feed.Query, error) {
	if c.Request().Method == http.MethodPost {
		var body searchRequest
		if err := c.Bind(&body); err != nil {
			return feed.Query{}, apperr.NewValidationWrap("invalid request body", err)
		}

		categories := stringsutil.RemoveEmptyStrings(body.Categories)
		if !multiCategory {
			categories = nil
			if body.Category != "" {
				categories = []string{body.Category}
			}
		}

		return feed.Query{
			Categories: categories,
			Keywords:   stringsutil.RemoveEmptyStrings(body.Keywords),
			Limit:      body.Limit,
		}, nil
	}

	var categories []string
	if multiCategory {
		categories = stringsutil.SplitCSV(c.QueryParam("categories"))
	} else if category := c.QueryParam("category"); category != "" {
		categories = []string{category}
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	return feed.Query{
		Categories: categories,
		Keywords:   stringsutil.SplitCSV(c.QueryParam("keywords")),
		Limit:      limit,
	}, nil
}

// userID extracts the authenticated caller id. The identity provider is an
// external collaborator; by the time a request reaches us the header either
// holds a valid user id or the caller is anonymous.
func userID(c echo.Context) (uuid.UUID, bool) {
	raw := c.Request().Header.Get(userIDHeader)
	if raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
