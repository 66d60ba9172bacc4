package extraction

import (
	"context"
	"fmt"
	"os"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// Transcriber turns page images into text via an external vision model.
// Implemented by ai.Client; kept as an interface so the cascade stays free
// of the AI wiring and tests can stub it.
type Transcriber interface {
	TranscribeImages(ctx context.Context, pngPages [][]byte) (string, error)
}

// VisionStrategy rasterizes the PDF and sends the page images to a vision
// model for transcription. Last strategy before the Fallback record.
type VisionStrategy struct {
	Config      OCRConfig // reuses the rasterizer settings
	Runner      Runner
	Transcriber Transcriber
}

func (s *VisionStrategy) Name() string { return model.MethodVision }

func (s *VisionStrategy) Extract(ctx context.Context, data []byte) (string, error) {
	if s.Transcriber == nil {
		return "", &ExtractionError{
			Code:    ErrVisionUnavailable,
			Message: "vision model not configured",
			Method:  model.MethodVision,
		}
	}

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

	images := make([][]byte, 0, len(pages))
	for _, p := range pages {
		img, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("read page image: %w", err)
		}
		images = append(images, img)
	}

	text, err := WithRetry(ctx, DefaultVisionRetryConfig, func(ctx context.Context) (string, error) {
		return s.Transcriber.TranscribeImages(ctx, images)
	})
	if err != nil {
		return "", &ExtractionError{
			Code:    ErrVisionUnavailable,
			Message: "vision transcription failed",
			Method:  model.MethodVision,
			Cause:   err,
		}
	}
	return normalizeWhitespace(text), nil
}
