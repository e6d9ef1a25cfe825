package domain

// Source identifies the upstream preprint feed a paper came from.
type Source string

const (
	SourceArxiv   Source = "arxiv"
	SourceBiorxiv Source = "biorxiv"
	SourceMedrxiv Source = "medrxiv"
)

func (s Source) Valid() bool {
	switch s {
	case SourceArxiv, SourceBiorxiv, SourceMedrxiv:
		return true
	}
	return false
}

// Paper is the canonical record every feed parser produces, regardless of
// the upstream format (RSS/RDF item, Atom entry or JSON collection record).
type Paper struct {
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Abstract string   `json:"abstract"`
	Authors  []string `json:"authors"`
	// Categories carries arXiv subject tags, or a single section label for
	// bioRxiv/medRxiv.
	Categories []string `json:"categories"`
	// PublishDate keeps whatever representation the source emits
	// (RFC-822-like for RSS, ISO-8601-like for Atom/JSON). Consumers parse
	// it defensively.
	PublishDate  string `json:"publishDate"`
	AnnounceType string `json:"announceType"`
	Source       Source `json:"source"`
	// GUID is the arXiv OAI identifier/id, or a DOI for bioRxiv/medRxiv.
	GUID      string `json:"guid,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// SearchResult is the response envelope for every search operation.
type SearchResult struct {
	Papers         []Paper  `json:"papers"`
	TotalResults   int      `json:"totalResults"`
	MatchedResults int      `json:"matchedResults"`
	Errors         []string `json:"errors"`
}

// EmptyResult returns an envelope with no papers and the given error
// messages, keeping Papers and Errors non-nil so they serialize as arrays.
func EmptyResult(errs ...string) SearchResult {
	if errs == nil {
		errs = []string{}
	}
	return SearchResult{
		Papers:         []Paper{},
		TotalResults:   0,
		MatchedResults: 0,
		Errors:         errs,
	}
}
