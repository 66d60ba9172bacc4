package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// PdftotextStrategy is the alternate text-layer reader, second in the
// cascade. It shells out to poppler's pdftotext, which handles encodings
// and layouts the pure-Go reader chokes on.
type PdftotextStrategy struct {
	Binary string // binary name or absolute path; empty -> "pdftotext"
	Runner Runner
}

func (s *PdftotextStrategy) Name() string { return model.MethodPdftotext }

func (s *PdftotextStrategy) Extract(ctx context.Context, data []byte) (string, error) {
	bin := s.Binary
	if bin == "" {
		bin = "pdftotext"
	}
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp pdf: %w", err)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := runner.Run(ctx, bin, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		return "", &ExtractionError{
			Code:    ErrToolUnavailable,
			Message: fmt.Sprintf("pdftotext: %s", truncate(string(errb), 512)),
			Method:  model.MethodPdftotext,
			Cause:   err,
		}
	}
	return normalizeWhitespace(string(out)), nil
}

// writePDFToTempDir persists the upload to a scratch directory so page
// rasterizers can address it by path. Callers must remove the directory.
func writePDFToTempDir(data []byte) (dir, path string, err error) {
	dir, err = os.MkdirTemp("", "resume-pages-*")
	if err != nil {
		return "", "", fmt.Errorf("create scratch dir: %w", err)
	}
	path = filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		os.RemoveAll(dir)
		return "", "", fmt.Errorf("write scratch pdf: %w", err)
	}
	return dir, path, nil
}
