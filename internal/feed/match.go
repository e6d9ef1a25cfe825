package feed

import (
	"strings"

	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// MatchesKeywords reports whether any keyword is a case-insensitive
// substring of the paper's title+abstract. An empty keyword list is an open
// filter. Substring semantics, not token or fuzzy, since the exact behavior
// determines result sets.
func MatchesKeywords(paper domain.Paper, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	searchText := strings.ToLower(paper.Title + " " + paper.Abstract)
	for _, keyword := range keywords {
		if strings.Contains(searchText, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
