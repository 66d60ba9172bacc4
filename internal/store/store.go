// Package store persists candidate records. The production backend is a
// hosted tabular store (Google Sheets); Firestore and an in-memory map are
// alternative backends, the latter doubling as the mock mode used when
// external credentials are missing.
package store

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// ErrNotFound is returned when a candidate id is unknown.
var ErrNotFound = errors.New("candidate not found")

// Store defines the candidate persistence operations used by the service.
type Store interface {
	CreateCandidate(ctx context.Context, rec *model.CandidateRecord) error
	GetCandidate(ctx context.Context, id string) (*model.CandidateRecord, error)
	UpdateCandidate(ctx context.Context, rec *model.CandidateRecord) error
	ListCandidates(ctx context.Context, pageSize int32, pageToken string) ([]*model.CandidateRecord, string, error)
}

// EncodePageToken encodes a record ID into a page token.
func EncodePageToken(id string) string {
	if id == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(id))
}

// DecodePageToken decodes a page token back to a record ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// touch stamps create/update times on a record.
func touch(rec *model.CandidateRecord, isCreate bool) {
	now := time.Now().UTC()
	if isCreate || rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
}
