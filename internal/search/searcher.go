package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
	"github.com/paper-hunter/paper-hunter/internal/feed"
)

// Searcher runs the search pipeline for every registered source:
// validate, build URL, fetch, parse, filter by keywords, limit.
type Searcher struct {
	fetcher *feed.Fetcher
	sources map[domain.Source]feed.Source
	now     func() time.Time
}

type SearcherOption func(*Searcher)

func NewSearcher(fetcher *feed.Fetcher, sources []feed.Source, opts ...SearcherOption) *Searcher {
	byName := make(map[domain.Source]feed.Source, len(sources))
	for _, src := range sources {
		byName[src.Name()] = src
	}

	s := &Searcher{
		fetcher: fetcher,
		sources: byName,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithClock injects the time source driving weekday/weekend URL branching.
func WithClock(now func() time.Time) SearcherOption {
	return func(s *Searcher) {
		s.now = now
	}
}

// Search returns the filtered result envelope for one source. The returned
// error, when non-nil, is one of the apperr kinds; validation errors are
// raised before any network access.
func (s *Searcher) Search(ctx context.Context, name domain.Source, q feed.Query) (domain.SearchResult, error) {
	src, err := s.source(name)
	if err != nil {
		return domain.EmptyResult(err.Error()), err
	}

	if err := src.Validate(q); err != nil {
		return domain.EmptyResult(err.Error()), err
	}

	feedURL, mode := src.BuildFeedURL(q, s.now())
	slog.Debug("Searching feed", "source", name, "url", feedURL, "mode", mode)

	payload, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return domain.EmptyResult(err.Error()), err
	}

	papers, err := src.ParseFeed(payload, mode)
	if err != nil {
		return domain.EmptyResult(err.Error()), err
	}

	matched := make([]domain.Paper, 0, len(papers))
	for _, paper := range papers {
		if feed.MatchesKeywords(paper, q.Keywords) {
			matched = append(matched, paper)
		}
	}
	if limit := src.MatchLimit(q); limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return domain.SearchResult{
		Papers:         matched,
		TotalResults:   len(papers),
		MatchedResults: len(matched),
		Errors:         []string{},
	}, nil
}

func (s *Searcher) source(name domain.Source) (feed.Source, error) {
	src, ok := s.sources[name]
	if !ok {
		return nil, apperr.NewValidation("unknown source: " + string(name))
	}
	return src, nil
}
