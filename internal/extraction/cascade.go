// Package extraction obtains raw resume text from uploaded PDFs through an
// ordered cascade of strategies.
package extraction

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

const (
	// MinTextLength is the minimum output size for a strategy to be accepted.
	MinTextLength = 100

	// maxBinaryRatio is the tolerated fraction of non-printable runes.
	maxBinaryRatio = 0.10
)

// Strategy is one ordered attempt to obtain raw text from a PDF.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, data []byte) (string, error)
}

// Cascade tries each strategy in order and stops at the first one producing
// enough artifact-free text. Strategies are independent and stateless;
// failures are logged, never fatal.
type Cascade struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewCascade builds a cascade over the given strategies, in priority order.
func NewCascade(logger *slog.Logger, strategies ...Strategy) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{strategies: strategies, logger: logger}
}

// Run walks the cascade and returns the extracted text together with the
// provenance tag of the winning strategy. When every strategy fails it
// returns empty text tagged model.MethodFallback; it never returns an error.
func (c *Cascade) Run(ctx context.Context, data []byte) (string, string) {
	for _, s := range c.strategies {
		text, err := s.Extract(ctx, data)
		if err != nil {
			c.logger.Warn("extraction strategy failed",
				"strategy", s.Name(), "error", err)
			continue
		}
		if !Acceptable(text) {
			c.logger.Info("extraction strategy output rejected",
				"strategy", s.Name(), "text_len", len(text))
			continue
		}
		c.logger.Info("extraction strategy accepted",
			"strategy", s.Name(), "text_len", len(text))
		return text, s.Name()
	}

	c.logger.Warn("all extraction strategies exhausted", "pdf_bytes", len(data))
	return "", model.MethodFallback
}

// Acceptable reports whether strategy output is long enough and free of
// binary-format artifacts.
func Acceptable(text string) bool {
	text = strings.TrimSpace(text)
	return len(text) >= MinTextLength && !LooksBinary(text)
}

// pdfArtifacts are tokens that indicate the "text" is really raw PDF
// structure that leaked through a reader.
var pdfArtifacts = []string{"%PDF-", "endobj", "endstream", "/FlateDecode", "xref"}

// LooksBinary reports whether text contains PDF structure tokens or an
// excessive share of non-printable runes.
func LooksBinary(text string) bool {
	for _, tok := range pdfArtifacts {
		if strings.Contains(text, tok) {
			return true
		}
	}
	if len(text) == 0 {
		return false
	}
	nonPrintable := 0
	total := 0
	for _, r := range text {
		total++
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		if r < 0x20 || r == 0xFFFD {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(total) > maxBinaryRatio
}
