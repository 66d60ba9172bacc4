// Package archive stores uploaded resume PDFs in a Cloud Storage bucket so
// the original document survives re-parsing and field edits.
package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	gcsstorage "cloud.google.com/go/storage"
)

// GCSArchiver writes resume PDFs into a bucket, keyed by candidate ID.
// A nil *GCSArchiver is a valid no-op archiver.
type GCSArchiver struct {
	bucket *gcsstorage.BucketHandle
	logger *slog.Logger
}

// NewGCSArchiver creates an archiver over the given bucket handle.
func NewGCSArchiver(bucket *gcsstorage.BucketHandle, logger *slog.Logger) *GCSArchiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &GCSArchiver{bucket: bucket, logger: logger}
}

// ObjectPath returns the bucket key for a candidate's resume.
func ObjectPath(candidateID string) string {
	return fmt.Sprintf("resumes/%s.pdf", candidateID)
}

// ArchiveResume uploads the raw PDF bytes. Failures are returned to the
// caller but must not fail the upload request itself.
func (a *GCSArchiver) ArchiveResume(ctx context.Context, candidateID string, data []byte) error {
	if a == nil || a.bucket == nil {
		return nil
	}

	start := time.Now()
	obj := a.bucket.Object(ObjectPath(candidateID))
	w := obj.NewWriter(ctx)
	w.ContentType = "application/pdf"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write resume object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close resume object: %w", err)
	}

	a.logger.Info("archive.resume.ok",
		"candidate_id", candidateID,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// FetchResume reads back an archived PDF.
func (a *GCSArchiver) FetchResume(ctx context.Context, candidateID string) ([]byte, error) {
	if a == nil || a.bucket == nil {
		return nil, fmt.Errorf("resume archive not configured")
	}

	r, err := a.bucket.Object(ObjectPath(candidateID)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open resume object: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read resume object: %w", err)
	}
	return data, nil
}
