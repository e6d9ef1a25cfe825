package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// RxivSource covers the two Cold Spring Harbor servers, which share one feed
// grammar: an RDF live feed per subject and a JSON details API. bioRxiv
// switches to a trailing-7-day date-range query on weekends; medRxiv always
// stays on its live feed. That asymmetry is deliberate and kept as-is.
type RxivSource struct {
	name        domain.Source
	displayName string
	rssBaseURL  string
	apiBaseURL  string
	contentBase string

	weekendArchive bool
	withPublisher  bool
}

var _ Source = (*RxivSource)(nil)

func NewBiorxivSource() *RxivSource {
	return &RxivSource{
		name:           domain.SourceBiorxiv,
		displayName:    "bioRxiv",
		rssBaseURL:     "https://connect.biorxiv.org/biorxiv_xml.php?subject=",
		apiBaseURL:     "https://api.biorxiv.org/details/biorxiv",
		contentBase:    "https://www.biorxiv.org/content/",
		weekendArchive: true,
	}
}

func NewMedrxivSource() *RxivSource {
	return &RxivSource{
		name:          domain.SourceMedrxiv,
		displayName:   "medRxiv",
		rssBaseURL:    "https://connect.medrxiv.org/medrxiv_xml.php?subject=",
		apiBaseURL:    "https://api.medrxiv.org/details/medrxiv",
		contentBase:   "https://www.medrxiv.org/content/",
		withPublisher: true,
	}
}

func (s *RxivSource) Name() domain.Source {
	return s.name
}

func (s *RxivSource) Validate(q Query) error {
	if len(q.Categories) == 0 || q.Categories[0] == "" {
		return apperr.NewValidation("a category is required")
	}
	return nil
}

func (s *RxivSource) BuildFeedURL(q Query, now time.Time) (string, Mode) {
	if s.weekendArchive && isWeekend(now) {
		return s.buildArchiveURL(now), ModeArchive
	}
	return s.rssBaseURL + q.Categories[0], ModeLive
}

// buildArchiveURL targets the cursor-paginated details endpoint over the
// trailing 7 calendar days ending today. Cursor fixed at 0.
func (s *RxivSource) buildArchiveURL(now time.Time) string {
	start := now.AddDate(0, 0, -7).Format("2006-01-02")
	end := now.Format("2006-01-02")
	return fmt.Sprintf("%s/%s/%s/0", s.apiBaseURL, start, end)
}

// MatchLimit never caps matched results for these sources; only the raw
// fetch is bounded by upstream pagination.
func (s *RxivSource) MatchLimit(Query) int {
	return 0
}

func (s *RxivSource) ParseFeed(payload []byte, mode Mode) ([]domain.Paper, error) {
	if mode == ModeArchive {
		return s.parseCollection(payload)
	}
	return s.parseRDF(payload)
}

func (s *RxivSource) parseRDF(payload []byte) ([]domain.Paper, error) {
	parser := &rss.Parser{}
	f, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.NewParse(s.displayName, err)
	}

	papers := make([]domain.Paper, 0, len(f.Items))
	for _, item := range f.Items {
		papers = append(papers, s.paperFromRDFItem(item))
	}
	return papers, nil
}

func (s *RxivSource) paperFromRDFItem(item *rss.Item) domain.Paper {
	paper := domain.Paper{
		Title:        stripCDATA(item.Title),
		Link:         stripCDATA(item.Link),
		Abstract:     stripCDATA(item.Description),
		Authors:      []string{},
		Categories:   []string{"Unknown"},
		AnnounceType: "new",
		Source:       s.name,
	}

	if section := extensionValue(item.Extensions, "prism", "section"); section != "" {
		paper.Categories = []string{section}
	}

	if dc := item.DublinCoreExt; dc != nil {
		for _, creator := range dc.Creator {
			paper.Authors = append(paper.Authors, splitAuthors(stripCDATA(creator), ",")...)
		}
		if len(dc.Date) > 0 {
			paper.PublishDate = dc.Date[0]
		}
		if len(dc.Identifier) > 0 {
			paper.GUID = strings.TrimPrefix(dc.Identifier[0], "doi:")
		}
		if s.withPublisher && len(dc.Publisher) > 0 {
			paper.Publisher = stripCDATA(dc.Publisher[0])
		}
	}

	return paper
}

type rxivRecord struct {
	DOI                            string `json:"doi"`
	Title                          string `json:"title"`
	Authors                        string `json:"authors"`
	AuthorCorresponding            string `json:"author_corresponding"`
	AuthorCorrespondingInstitution string `json:"author_corresponding_institution"`
	Date                           string `json:"date"`
	Version                        string `json:"version"`
	Type                           string `json:"type"`
	License                        string `json:"license"`
	Category                       string `json:"category"`
	JatsXML                        string `json:"jatsxml"`
	Abstract                       string `json:"abstract"`
	Published                      string `json:"published"`
	Server                         string `json:"server"`
}

type rxivCollectionResponse struct {
	Collection []rxivRecord `json:"collection"`
}

func (s *RxivSource) parseCollection(payload []byte) ([]domain.Paper, error) {
	var resp rxivCollectionResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, apperr.NewParse(s.displayName, err)
	}

	papers := make([]domain.Paper, 0, len(resp.Collection))
	for _, record := range resp.Collection {
		papers = append(papers, s.paperFromRecord(record))
	}
	return papers, nil
}

func (s *RxivSource) paperFromRecord(record rxivRecord) domain.Paper {
	announceType := record.Type
	if announceType == "" {
		announceType = "new"
	}

	return domain.Paper{
		Title:        record.Title,
		Link:         fmt.Sprintf("%s%sv%s", s.contentBase, record.DOI, record.Version),
		Abstract:     record.Abstract,
		Authors:      splitAuthors(record.Authors, ";"),
		Categories:   []string{record.Category},
		PublishDate:  record.Date,
		AnnounceType: announceType,
		Source:       s.name,
		GUID:         record.DOI,
	}
}

func (s *RxivSource) DetailURL(doi string) (string, string) {
	u := s.apiBaseURL + "/" + doi
	return u, u
}

func (s *RxivSource) ParseDetail(payload []byte) (*domain.Paper, error) {
	var resp rxivCollectionResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, apperr.NewParse(s.displayName, err)
	}
	if len(resp.Collection) == 0 {
		return nil, apperr.NewNotFound("paper not found")
	}

	paper := s.paperFromRecord(resp.Collection[0])
	return &paper, nil
}

func splitAuthors(raw, sep string) []string {
	authors := []string{}
	for _, name := range strings.Split(raw, sep) {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
