package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

const candidatesCollection = "candidates"

// FirestoreStore implements the Store interface using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateCandidate(ctx context.Context, rec *model.CandidateRecord) error {
	touch(rec, true)
	_, err := s.client.Collection(candidatesCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetCandidate(ctx context.Context, id string) (*model.CandidateRecord, error) {
	doc, err := s.client.Collection(candidatesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	var rec model.CandidateRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse candidate: %w", err)
	}
	return &rec, nil
}

func (s *FirestoreStore) UpdateCandidate(ctx context.Context, rec *model.CandidateRecord) error {
	if _, err := s.GetCandidate(ctx, rec.ID); err != nil {
		return err
	}
	touch(rec, false)
	_, err := s.client.Collection(candidatesCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListCandidates(ctx context.Context, pageSize int32, pageToken string) ([]*model.CandidateRecord, string, error) {
	query := s.client.Collection(candidatesCollection).
		OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1) // +1 to detect next page

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list candidates: %w", err)
	}

	hasMore := len(docs) > int(pageSize)
	if hasMore {
		docs = docs[:pageSize]
	}

	records := make([]*model.CandidateRecord, 0, len(docs))
	for _, doc := range docs {
		var rec model.CandidateRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, "", fmt.Errorf("failed to parse candidate: %w", err)
		}
		records = append(records, &rec)
	}

	next := ""
	if hasMore && len(records) > 0 {
		next = EncodePageToken(records[len(records)-1].ID)
	}
	return records, next, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
