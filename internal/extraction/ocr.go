package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// OCRConfig configures the rasterize-and-OCR fallback.
type OCRConfig struct {
	Pdftoppm  string // binary name or absolute path; empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; empty -> "tesseract"
	Language  string // default "eng"
	DPI       int    // rasterization DPI, default 300
	MaxPages  int    // 0 = no limit
}

func (c OCRConfig) withDefaults() OCRConfig {
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.Language == "" {
		c.Language = "eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	return c
}

// OCRStrategy rasterizes PDF pages with pdftoppm and runs tesseract over
// each page image. Reached only when no text layer yields enough text.
type OCRStrategy struct {
	Config OCRConfig
	Runner Runner
}

func (s *OCRStrategy) Name() string { return model.MethodOCR }

func (s *OCRStrategy) Extract(ctx context.Context, data []byte) (string, error) {
	cfg := s.Config.withDefaults()
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	pages, cleanup, err := rasterizePages(ctx, runner, cfg.Pdftoppm, cfg.DPI, cfg.MaxPages, data)
	if err != nil {
		return "", err
	}
	defer cleanup()

	var b strings.Builder
	ocrOK := 0
	for _, img := range pages {
		// tesseract <img> stdout -l eng
		out, errb, err := runner.Run(ctx, cfg.Tesseract, img, "stdout", "-l", cfg.Language)
		if err != nil {
			return "", &ExtractionError{
				Code:    ErrToolUnavailable,
				Message: fmt.Sprintf("tesseract: %s", truncate(string(errb), 512)),
				Method:  model.MethodOCR,
				Cause:   err,
			}
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(string(out))
		ocrOK++
	}

	if ocrOK == 0 {
		return "", &ExtractionError{
			Code:    ErrTextLayerEmpty,
			Message: "OCR produced no text",
			Method:  model.MethodOCR,
		}
	}
	return normalizeWhitespace(b.String()), nil
}

// rasterizePages renders the PDF to per-page PNGs in a scratch directory.
// The returned cleanup removes the directory; pages are sorted by filename
// so page order is preserved.
func rasterizePages(ctx context.Context, runner Runner, pdftoppm string, dpi, maxPages int, data []byte) ([]string, func(), error) {
	dir, pdfPath, err := writePDFToTempDir(data)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	prefix := filepath.Join(dir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <dir/page>
	_, errb, err := runner.Run(ctx, pdftoppm, "-r", fmt.Sprintf("%d", dpi), "-png", pdfPath, prefix)
	if err != nil {
		cleanup()
		return nil, nil, &ExtractionError{
			Code:    ErrToolUnavailable,
			Message: fmt.Sprintf("pdftoppm: %s", truncate(string(errb), 512)),
			Method:  model.MethodOCR,
			Cause:   err,
		}
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if maxPages > 0 && len(matches) > maxPages {
		matches = matches[:maxPages]
	}
	if len(matches) == 0 {
		cleanup()
		return nil, nil, &ExtractionError{
			Code:    ErrInvalidDocument,
			Message: "pdftoppm produced no page images",
			Method:  model.MethodOCR,
		}
	}
	return matches, cleanup, nil
}
