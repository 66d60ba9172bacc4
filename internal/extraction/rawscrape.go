package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// RawScrapeStrategy is the last text-layer resort: pattern-scrape string
// literals out of uncompressed PDF content streams. It only works for PDFs
// whose text operators are stored in plain deflate-free streams, which is
// exactly the kind of file that defeats the structured readers.
type RawScrapeStrategy struct{}

func (RawScrapeStrategy) Name() string { return model.MethodRawScrape }

// tjLiteralRe matches `(string) Tj` show-text operators.
var tjLiteralRe = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*T[jJ]`)

// tjArrayRe matches `[(a) -12 (b)] TJ` kerned arrays.
var tjArrayRe = regexp.MustCompile(`\[((?:\((?:[^()\\]|\\.)*\)|[^\[\]])*)\]\s*TJ`)

// innerLiteralRe pulls the parenthesised pieces out of a TJ array body.
var innerLiteralRe = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)

func (RawScrapeStrategy) Extract(_ context.Context, data []byte) (string, error) {
	raw := string(data)

	var b strings.Builder
	for _, m := range tjLiteralRe.FindAllStringSubmatch(raw, -1) {
		b.WriteString(unescapePDFString(m[1]))
		b.WriteString(" ")
	}
	for _, m := range tjArrayRe.FindAllStringSubmatch(raw, -1) {
		for _, inner := range innerLiteralRe.FindAllStringSubmatch(m[1], -1) {
			b.WriteString(unescapePDFString(inner[1]))
		}
		b.WriteString(" ")
	}

	text := normalizeWhitespace(b.String())
	if text == "" {
		return "", &ExtractionError{
			Code:    ErrTextLayerEmpty,
			Message: "no text operators found in raw content",
			Method:  model.MethodRawScrape,
		}
	}
	return text, nil
}

// unescapePDFString resolves the escape sequences of a PDF literal string.
func unescapePDFString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '(', ')', '\\':
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
