package services

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CrossRef liefert Abstracts als JATS-XML-Fragmente (<jats:p>, <jats:italic> usw.).
var jatsTagRE = regexp.MustCompile(`</?[A-Za-z][^>]*>`)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// ligatureReplacer ersetzt typografische Ligaturen, die aus Verlags-PDFs
// in die Metadaten durchschlagen.
var ligatureReplacer = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬀ", "ff",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬆ", "st",
)

// CleanAbstract entfernt JATS-Markup aus einem Abstract, dekodiert
// HTML-Entities, normalisiert Unicode (NFC) und kollabiert Whitespace.
func CleanAbstract(s string) string {
	if s == "" {
		return ""
	}
	s = jatsTagRE.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = ligatureReplacer.Replace(s)
	normalized, _, _ := transform.String(transform.Chain(norm.NFC), s)
	normalized = multiSpaceRE.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
