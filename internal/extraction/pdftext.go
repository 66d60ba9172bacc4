package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

const (
	maxTextBytes     = 100 * 1024 // 100KB cap for extracted text
	scannedThreshold = 50         // chars per page below which the PDF is considered scanned
)

// PDFAnalysis contains the results of reading a PDF's text layer.
type PDFAnalysis struct {
	PageCount     int
	ExtractedText string
	IsScanned     bool
	Error         error
}

// AnalyzePDF extracts the text layer and page metadata from a PDF.
// It is wrapped in recover() and never panics; on any error it returns
// conservative defaults (scanned, one page).
func AnalyzePDF(data []byte) (result *PDFAnalysis) {
	result = &PDFAnalysis{
		PageCount: 1,
		IsScanned: true, // conservative default: the cascade will keep going
	}

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("panic during PDF analysis: %v", r)
			result.IsScanned = true
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		result.Error = fmt.Errorf("open PDF reader: %w", err)
		return result
	}

	result.PageCount = reader.NumPage()
	if result.PageCount < 1 {
		result.PageCount = 1
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		result.Error = fmt.Errorf("extract plain text: %w", err)
		return result
	}

	textBytes, err := io.ReadAll(io.LimitReader(plainText, int64(maxTextBytes)))
	if err != nil {
		result.Error = fmt.Errorf("read plain text: %w", err)
		return result
	}

	result.ExtractedText = normalizeWhitespace(string(textBytes))
	result.IsScanned = isLikelyScanned(result.ExtractedText, result.PageCount)
	return result
}

// isLikelyScanned returns true if the PDF appears to be a scanned image
// (very little extractable text per page).
func isLikelyScanned(text string, pages int) bool {
	if pages <= 0 {
		pages = 1
	}
	return len(text)/pages < scannedThreshold
}

// normalizeWhitespace collapses runs of blank lines and trims trailing
// spaces so downstream heuristics see stable line boundaries.
func normalizeWhitespace(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// PDFTextStrategy is the direct text-layer extraction strategy, first in the
// cascade.
type PDFTextStrategy struct{}

func (PDFTextStrategy) Name() string { return model.MethodPDFText }

func (PDFTextStrategy) Extract(_ context.Context, data []byte) (string, error) {
	analysis := AnalyzePDF(data)
	if analysis.Error != nil {
		return "", analysis.Error
	}
	if analysis.IsScanned {
		return "", &ExtractionError{
			Code:    ErrTextLayerEmpty,
			Message: fmt.Sprintf("text layer too sparse (%d pages)", analysis.PageCount),
			Method:  model.MethodPDFText,
		}
	}
	return analysis.ExtractedText, nil
}

// CountPDFPages returns the page count using the pdf library, swallowing
// any panic. Used to size OCR and vision work.
func CountPDFPages(data []byte) (n int) {
	n = 1
	defer func() { recover() }()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return n
	}
	if pages := reader.NumPage(); pages > 1 {
		n = pages
	}
	return n
}
