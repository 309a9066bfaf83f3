package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC normalization, trims surrounding whitespace and
// strips control characters other than tab and newline.
func Normalize(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}

// Tokenize normalizes text and splits it on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// TokenSpans tokenizes text and returns the byte span of each token within
// the normalized form of text. string(Normalize(text)[span.Start:span.End])
// recovers the token.
func TokenSpans(text string) []Span {
	normed := Normalize(text)
	var spans []Span
	start := -1
	for i, r := range normed {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(normed)})
	}
	return spans
}
