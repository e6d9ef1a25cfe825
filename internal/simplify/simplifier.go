// Package simplify runs the credit-gated abstract simplification flow:
// check balance, look up the abstract, generate the rewrite, then spend.
package simplify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/credits"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// ErrAbstractUnavailable hides upstream diagnostics from callers when the
// paper lookup fails for any reason.
var ErrAbstractUnavailable = errors.New("could not fetch paper abstract")

// AbstractSource resolves a paper's abstract by external identifier.
type AbstractSource interface {
	Abstract(ctx context.Context, source domain.Source, id string) (string, error)
}

// Generator produces the simplified rewrite of an abstract.
type Generator interface {
	SimplifyAbstract(ctx context.Context, abstract string) (string, error)
}

// Request identifies the paper to simplify: an arXiv id, or a DOI plus the
// source tag telling us which details service to ask. An absent source
// defaults to bioRxiv.
type Request struct {
	ArxivID string        `json:"arxivId"`
	DOI     string        `json:"doi"`
	Source  domain.Source `json:"source"`
}

type Simplifier struct {
	papers  AbstractSource
	llm     Generator
	credits credits.Store
}

func NewSimplifier(papers AbstractSource, llm Generator, creditStore credits.Store) *Simplifier {
	return &Simplifier{
		papers:  papers,
		llm:     llm,
		credits: creditStore,
	}
}

// Simplify returns the rewritten abstract for the identified user. The
// credit is spent only after a successful generation.
func (s *Simplifier) Simplify(ctx context.Context, userID uuid.UUID, req Request) (string, error) {
	if req.ArxivID == "" && req.DOI == "" {
		return "", apperr.NewValidation("missing paper identifier (arXiv ID or DOI)")
	}

	balance, err := s.credits.Balance(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to check credits: %w", err)
	}
	if balance <= 0 {
		return "", credits.ErrNoCredits
	}

	abstract, err := s.lookupAbstract(ctx, req)
	if err != nil {
		slog.Error("Paper abstract lookup failed", "arxivId", req.ArxivID, "doi", req.DOI, "error", err)
		return "", ErrAbstractUnavailable
	}
	if abstract == "" {
		return "", ErrAbstractUnavailable
	}

	text, err := s.llm.SimplifyAbstract(ctx, abstract)
	if err != nil {
		return "", fmt.Errorf("failed to simplify abstract: %w", err)
	}

	if _, err := s.credits.Spend(ctx, userID); err != nil {
		// The text is already generated; report it anyway.
		slog.Error("Failed to decrement credits after generation", "userId", userID, "error", err)
	}

	return text, nil
}

func (s *Simplifier) lookupAbstract(ctx context.Context, req Request) (string, error) {
	if req.ArxivID != "" {
		return s.papers.Abstract(ctx, domain.SourceArxiv, req.ArxivID)
	}

	source := req.Source
	if source != domain.SourceMedrxiv {
		source = domain.SourceBiorxiv
	}
	return s.papers.Abstract(ctx, source, req.DOI)
}
