package feed

import (
	"regexp"
	"strings"

	ext "github.com/mmcdole/gofeed/extensions"
)

var (
	cdataPattern = regexp.MustCompile(`<!\[CDATA\[(.*?)]]>`)

	rxivContentPattern = regexp.MustCompile(`(?:biorxiv|medrxiv)\.org/content/([\d.]+/[\d.]+)`)
	rawDOIPattern      = regexp.MustCompile(`(10\.1101/[\d.]+)`)
)

// stripCDATA unwraps any literal CDATA markers left in a field value and
// trims whitespace. The XML parser already unwraps well-formed CDATA; this
// covers feeds that double-encode it.
func stripCDATA(s string) string {
	return strings.TrimSpace(cdataPattern.ReplaceAllString(s, "$1"))
}

// extensionValue returns the first value of a namespaced feed element such
// as arxiv:announce_type or prism:section, or "".
func extensionValue(exts ext.Extensions, prefix, name string) string {
	if exts == nil {
		return ""
	}
	values, ok := exts[prefix][name]
	if !ok || len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

// ExtractDOI pulls a DOI out of a bioRxiv/medRxiv content-page URL or a raw
// "10.1101/..." identifier. Unrecognized formats yield "".
func ExtractDOI(s string) string {
	if m := rxivContentPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := rawDOIPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
