package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

const rxivRDFFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns="http://purl.org/rss/1.0/"
         xmlns:dc="http://purl.org/dc/elements/1.1/"
         xmlns:prism="http://purl.org/rss/1.0/modules/prism/">
  <channel rdf:about="https://connect.biorxiv.org/biorxiv_xml.php?subject=neuroscience">
    <title>bioRxiv Subject Collection: Neuroscience</title>
    <link>https://www.biorxiv.org</link>
    <description/>
  </channel>
  <item rdf:about="https://www.biorxiv.org/content/10.1101/2025.03.01.641017v1">
    <title><![CDATA[Hello]]></title>
    <link>https://www.biorxiv.org/content/10.1101/2025.03.01.641017v1?rss=1</link>
    <description><![CDATA[Cortical maps revisited.]]></description>
    <dc:creator><![CDATA[Santiago Ramon y Cajal, Camillo Golgi]]></dc:creator>
    <dc:date>2025-03-03</dc:date>
    <dc:identifier>doi:10.1101/2025.03.01.641017</dc:identifier>
    <dc:publisher><![CDATA[Cold Spring Harbor Laboratory]]></dc:publisher>
    <prism:section>Neuroscience</prism:section>
  </item>
</rdf:RDF>`

const rxivCollectionFixture = `{
  "messages": [{"status": "ok", "count": 1}],
  "collection": [
    {
      "doi": "10.1101/2025.03.01.641017",
      "title": "Hello",
      "authors": "Ramon y Cajal, S.; Golgi, C.",
      "author_corresponding": "Ramon y Cajal, S.",
      "author_corresponding_institution": "Instituto Cajal",
      "date": "2025-03-03",
      "version": "1",
      "type": "new results",
      "license": "cc_by",
      "category": "neuroscience",
      "jatsxml": "https://www.biorxiv.org/content/early/2025/03/03/2025.03.01.641017.source.xml",
      "abstract": "Cortical maps revisited.",
      "published": "NA",
      "server": "biorxiv"
    }
  ]
}`

func TestBiorxivBuildFeedURL(t *testing.T) {
	src := NewBiorxivSource()
	query := Query{Categories: []string{"neuroscience"}}

	t.Run("weekday live feed", func(t *testing.T) {
		wednesday := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
		url, mode := src.BuildFeedURL(query, wednesday)
		assert.Equal(t, "https://connect.biorxiv.org/biorxiv_xml.php?subject=neuroscience", url)
		assert.Equal(t, ModeLive, mode)
	})

	t.Run("weekend date range", func(t *testing.T) {
		saturday := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)
		url, mode := src.BuildFeedURL(query, saturday)
		assert.Equal(t, "https://api.biorxiv.org/details/biorxiv/2025-03-01/2025-03-08/0", url)
		assert.Equal(t, ModeArchive, mode)
	})
}

func TestMedrxivBuildFeedURL_NeverBranches(t *testing.T) {
	src := NewMedrxivSource()
	query := Query{Categories: []string{"epidemiology"}}

	for _, now := range []time.Time{
		time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC),
	} {
		url, mode := src.BuildFeedURL(query, now)
		assert.Equal(t, "https://connect.medrxiv.org/medrxiv_xml.php?subject=epidemiology", url)
		assert.Equal(t, ModeLive, mode)
	}
}

func TestRxivValidate(t *testing.T) {
	src := NewBiorxivSource()

	err := src.Validate(Query{})
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "a category is required", ve.Message)

	assert.Error(t, src.Validate(Query{Categories: []string{""}}))
	assert.NoError(t, src.Validate(Query{Categories: []string{"neuroscience"}}))
}

func TestRxivParseRDF(t *testing.T) {
	src := NewBiorxivSource()

	papers, err := src.ParseFeed([]byte(rxivRDFFixture), ModeLive)
	require.NoError(t, err)
	require.Len(t, papers, 1)

	paper := papers[0]
	assert.Equal(t, "Hello", paper.Title, "CDATA markers are stripped")
	assert.Equal(t, "https://www.biorxiv.org/content/10.1101/2025.03.01.641017v1?rss=1", paper.Link)
	assert.Equal(t, "Cortical maps revisited.", paper.Abstract)
	assert.Equal(t, []string{"Santiago Ramon y Cajal", "Camillo Golgi"}, paper.Authors)
	assert.Equal(t, []string{"Neuroscience"}, paper.Categories)
	assert.Equal(t, "2025-03-03", paper.PublishDate)
	assert.Equal(t, "10.1101/2025.03.01.641017", paper.GUID, "doi: prefix is trimmed")
	assert.Equal(t, "new", paper.AnnounceType)
	assert.Equal(t, domain.SourceBiorxiv, paper.Source)
	assert.Empty(t, paper.Publisher, "bioRxiv papers carry no publisher")
}

func TestMedrxivParseRDF_KeepsPublisher(t *testing.T) {
	src := NewMedrxivSource()

	papers, err := src.ParseFeed([]byte(rxivRDFFixture), ModeLive)
	require.NoError(t, err)
	require.Len(t, papers, 1)

	assert.Equal(t, "Cold Spring Harbor Laboratory", papers[0].Publisher)
	assert.Equal(t, domain.SourceMedrxiv, papers[0].Source)
}

func TestRxivParseRDF_MissingSection(t *testing.T) {
	src := NewBiorxivSource()

	fixture := `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/">
  <channel rdf:about="x"><title>t</title><link>l</link><description/></channel>
  <item rdf:about="y"><title>Bare</title></item>
</rdf:RDF>`

	papers, err := src.ParseFeed([]byte(fixture), ModeLive)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, []string{"Unknown"}, papers[0].Categories)
}

func TestRxivParseCollection(t *testing.T) {
	src := NewBiorxivSource()

	papers, err := src.ParseFeed([]byte(rxivCollectionFixture), ModeArchive)
	require.NoError(t, err)
	require.Len(t, papers, 1)

	paper := papers[0]
	assert.Equal(t, "Hello", paper.Title)
	assert.Equal(t, "https://www.biorxiv.org/content/10.1101/2025.03.01.641017v1", paper.Link)
	assert.Equal(t, []string{"Ramon y Cajal, S.", "Golgi, C."}, paper.Authors)
	assert.Equal(t, []string{"neuroscience"}, paper.Categories)
	assert.Equal(t, "new results", paper.AnnounceType)
	assert.Equal(t, "10.1101/2025.03.01.641017", paper.GUID)
}

func TestRxivParseFeed_Malformed(t *testing.T) {
	src := NewBiorxivSource()

	_, err := src.ParseFeed([]byte("{broken"), ModeArchive)
	require.Error(t, err)

	var pe *apperr.ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "feed format may have changed")
}

func TestRxivDetail(t *testing.T) {
	src := NewMedrxivSource()

	url, key := src.DetailURL("10.1101/2025.03.01.641017")
	assert.Equal(t, "https://api.medrxiv.org/details/medrxiv/10.1101/2025.03.01.641017", url)
	assert.Equal(t, url, key)

	paper, err := src.ParseDetail([]byte(rxivCollectionFixture))
	require.NoError(t, err)
	assert.Equal(t, "Cortical maps revisited.", paper.Abstract)

	_, err = src.ParseDetail([]byte(`{"collection": []}`))
	var nfe *apperr.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}

func TestExtractDOI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "biorxiv content url", input: "https://www.biorxiv.org/content/10.1101/2025.03.01.641017v1", want: "10.1101/2025.03.01.641017"},
		{name: "medrxiv content url", input: "https://www.medrxiv.org/content/10.1101/2025.02.11.25322067v1", want: "10.1101/2025.02.11.25322067"},
		{name: "raw doi", input: "10.1101/2025.03.01.641017", want: "10.1101/2025.03.01.641017"},
		{name: "doi with prefix text", input: "doi:10.1101/2025.03.01.641017", want: "10.1101/2025.03.01.641017"},
		{name: "arxiv id", input: "oai:arXiv.org:2503.02283v1", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDOI(tt.input))
		})
	}
}

func TestStripCDATA(t *testing.T) {
	assert.Equal(t, "Hello", stripCDATA("<![CDATA[Hello]]>"))
	assert.Equal(t, "Hello", stripCDATA("  Hello  "))
	assert.Equal(t, "", stripCDATA(""))
}
