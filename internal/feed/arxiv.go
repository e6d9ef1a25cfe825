package feed

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

const (
	arxivRSSBaseURL = "https://rss.arxiv.org/rss/"
	arxivAPIBaseURL = "http://export.arxiv.org/api/query"

	// Page size for the weekend date-range query. Cursor is fixed at 0, no
	// further pagination.
	arxivArchivePageSize = 200

	// Matched-result cap applied when the caller does not request one.
	arxivDefaultMatchLimit = 1000

	arxivOAIPrefix = "oai:arXiv.org:"
)

var arxivAbsURLPattern = regexp.MustCompile(`arxiv\.org/abs/([^\s/?#]+)`)

// ArxivSource serves the arXiv RSS feed on weekdays and the Atom search API
// over the most recently completed Monday-Friday window on weekends.
type ArxivSource struct{}

var _ Source = (*ArxivSource)(nil)

func NewArxivSource() *ArxivSource {
	return &ArxivSource{}
}

func (s *ArxivSource) Name() domain.Source {
	return domain.SourceArxiv
}

func (s *ArxivSource) Validate(q Query) error {
	if len(q.Categories) == 0 {
		return apperr.NewValidation("at least one category is required")
	}
	return nil
}

func (s *ArxivSource) BuildFeedURL(q Query, now time.Time) (string, Mode) {
	if isWeekend(now) {
		return s.buildArchiveURL(q.Categories, now), ModeArchive
	}
	return arxivRSSBaseURL + strings.Join(q.Categories, "+"), ModeLive
}

// buildArchiveURL targets the search API with a boolean OR of cat: terms and
// an inclusive submittedDate range [last Monday 06:00, last Friday 23:59].
func (s *ArxivSource) buildArchiveURL(categories []string, now time.Time) string {
	monday, friday := lastWeekdaySpan(now)

	terms := make([]string, len(categories))
	for i, cat := range categories {
		terms[i] = "cat:" + cat
	}
	query := fmt.Sprintf("(%s) AND submittedDate:[%s0600 TO %s2359]",
		strings.Join(terms, " OR "),
		monday.Format("20060102"),
		friday.Format("20060102"),
	)

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(arxivArchivePageSize))

	return arxivAPIBaseURL + "?" + params.Encode()
}

// lastWeekdaySpan returns the most recently completed Monday-Friday window.
// Only called on weekends.
func lastWeekdaySpan(now time.Time) (monday, friday time.Time) {
	if now.Weekday() == time.Saturday {
		return now.AddDate(0, 0, -5), now.AddDate(0, 0, -1)
	}
	return now.AddDate(0, 0, -6), now.AddDate(0, 0, -2)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (s *ArxivSource) MatchLimit(q Query) int {
	if q.Limit > 0 {
		return q.Limit
	}
	return arxivDefaultMatchLimit
}

func (s *ArxivSource) ParseFeed(payload []byte, mode Mode) ([]domain.Paper, error) {
	if mode == ModeArchive {
		return s.parseAtom(payload)
	}
	return s.parseRSS(payload)
}

func (s *ArxivSource) parseRSS(payload []byte) ([]domain.Paper, error) {
	parser := &rss.Parser{}
	f, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.NewParse("arXiv", err)
	}

	papers := make([]domain.Paper, 0, len(f.Items))
	for _, item := range f.Items {
		papers = append(papers, s.paperFromRSSItem(item))
	}
	return papers, nil
}

func (s *ArxivSource) paperFromRSSItem(item *rss.Item) domain.Paper {
	// The description reads "arXiv:<id> Announce Type: <t> Abstract: <text>";
	// only the part after the literal prefix is the abstract.
	abstract := ""
	if _, after, found := strings.Cut(item.Description, "Abstract:"); found {
		abstract = strings.TrimSpace(after)
	}

	authors := []string{}
	if item.DublinCoreExt != nil {
		for _, creator := range item.DublinCoreExt.Creator {
			for _, name := range strings.Split(creator, ", ") {
				if name = strings.TrimSpace(name); name != "" {
					authors = append(authors, name)
				}
			}
		}
	}

	categories := make([]string, 0, len(item.Categories))
	for _, cat := range item.Categories {
		if cat != nil && cat.Value != "" {
			categories = append(categories, cat.Value)
		}
	}

	announceType := "unknown"
	if v := extensionValue(item.Extensions, "arxiv", "announce_type"); v != "" {
		announceType = v
	}

	guid := ""
	if item.GUID != nil {
		guid = item.GUID.Value
	}

	return domain.Paper{
		Title:        strings.TrimSpace(item.Title),
		Link:         strings.TrimSpace(item.Link),
		Abstract:     abstract,
		Authors:      authors,
		Categories:   categories,
		PublishDate:  item.PubDate,
		AnnounceType: announceType,
		Source:       domain.SourceArxiv,
		GUID:         guid,
	}
}

func (s *ArxivSource) parseAtom(payload []byte) ([]domain.Paper, error) {
	parser := &atom.Parser{}
	f, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.NewParse("arXiv", err)
	}

	papers := make([]domain.Paper, 0, len(f.Entries))
	for _, entry := range f.Entries {
		papers = append(papers, s.paperFromAtomEntry(entry))
	}
	return papers, nil
}

func (s *ArxivSource) paperFromAtomEntry(entry *atom.Entry) domain.Paper {
	authors := []string{}
	for _, a := range entry.Authors {
		if a != nil && a.Name != "" {
			authors = append(authors, a.Name)
		}
	}

	categories := []string{}
	for _, c := range entry.Categories {
		if c != nil && c.Term != "" {
			categories = append(categories, c.Term)
		}
	}

	return domain.Paper{
		Title:       strings.TrimSpace(entry.Title),
		Link:        atomEntryLink(entry.Links),
		Abstract:    strings.TrimSpace(entry.Summary),
		Authors:     authors,
		Categories:  categories,
		PublishDate: entry.Published,
		// The search API does not report an announcement kind.
		AnnounceType: "new",
		Source:       domain.SourceArxiv,
		GUID:         entry.ID,
	}
}

// atomEntryLink prefers the "alternate" relation, then a "pdf"-titled link,
// then whatever comes first.
func atomEntryLink(links []*atom.Link) string {
	pdf := ""
	for _, l := range links {
		if l == nil {
			continue
		}
		if l.Rel == "alternate" {
			return l.Href
		}
		if pdf == "" && l.Title == "pdf" {
			pdf = l.Href
		}
	}
	if pdf != "" {
		return pdf
	}
	if len(links) > 0 && links[0] != nil {
		return links[0].Href
	}
	return ""
}

func (s *ArxivSource) DetailURL(id string) (string, string) {
	params := url.Values{}
	params.Set("id_list", id)
	params.Set("max_results", "1")
	return arxivAPIBaseURL + "?" + params.Encode(), "paper_" + id
}

func (s *ArxivSource) ParseDetail(payload []byte) (*domain.Paper, error) {
	parser := &atom.Parser{}
	f, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.NewParse("arXiv", err)
	}
	if len(f.Entries) == 0 {
		return nil, apperr.NewNotFound("paper not found")
	}

	paper := s.paperFromAtomEntry(f.Entries[0])
	return &paper, nil
}

// ExtractArxivID pulls an arXiv id out of either an OAI-style identifier
// ("oai:arXiv.org:2503.02283v1") or an abstract-page URL
// ("https://arxiv.org/abs/2503.02283v1"). Unrecognized formats yield "".
func ExtractArxivID(s string) string {
	if strings.HasPrefix(s, arxivOAIPrefix) {
		return strings.TrimPrefix(s, arxivOAIPrefix)
	}
	if m := arxivAbsURLPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
