package feed

import (
	"time"

	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// Mode says which upstream endpoint shape a built URL addresses.
type Mode int

const (
	// ModeLive is the daily RSS/RDF feed.
	ModeLive Mode = iota
	// ModeArchive is the weekend date-range/search API (Atom for arXiv,
	// JSON collections for bioRxiv).
	ModeArchive
)

// Query is a per-request search input. Categories carries one code for
// bioRxiv/medRxiv or one-or-more codes for arXiv. An empty keyword list
// means "match all". Limit <= 0 means "source default".
type Query struct {
	Categories []string
	Keywords   []string
	Limit      int
}

// Source is one upstream preprint feed. Implementations never perform I/O;
// they build URLs and turn raw payloads into canonical papers.
type Source interface {
	Name() domain.Source

	// Validate checks the query before any network access.
	Validate(q Query) error

	// BuildFeedURL computes the upstream URL for q, switching to the
	// archive mode on weekends where the source supports it. The current
	// date is injected so the branch is deterministically testable.
	BuildFeedURL(q Query, now time.Time) (string, Mode)

	// ParseFeed normalizes a raw payload in the given mode. A malformed
	// individual item yields a degraded Paper, never an aborted batch;
	// only an unreadable document is an error.
	ParseFeed(payload []byte, mode Mode) ([]domain.Paper, error)

	// MatchLimit returns the number of matched papers to keep, 0 meaning
	// unlimited. bioRxiv and medRxiv deliberately never limit matches.
	MatchLimit(q Query) int

	// DetailURL builds the single-paper endpoint URL for an external
	// identifier, plus the cache key to store the response under.
	DetailURL(id string) (url string, cacheKey string)

	// ParseDetail extracts one Paper from a detail payload, or a
	// NotFoundError when the payload holds no entry.
	ParseDetail(payload []byte) (*domain.Paper, error)
}
