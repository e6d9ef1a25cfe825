package search

import (
	"context"

	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// Detail fetches and parses a single paper by its external identifier
// (arXiv id or DOI). The response is cached under a per-paper key so detail
// lookups do not collide with feed payloads.
func (s *Searcher) Detail(ctx context.Context, name domain.Source, id string) (*domain.Paper, error) {
	src, err := s.source(name)
	if err != nil {
		return nil, err
	}

	detailURL, cacheKey := src.DetailURL(id)
	payload, err := s.fetcher.FetchWithKey(ctx, detailURL, cacheKey)
	if err != nil {
		return nil, err
	}

	return src.ParseDetail(payload)
}

// Abstract returns only the abstract text of a single paper.
func (s *Searcher) Abstract(ctx context.Context, name domain.Source, id string) (string, error) {
	paper, err := s.Detail(ctx, name, id)
	if err != nil {
		return "", err
	}
	return paper.Abstract, nil
}
