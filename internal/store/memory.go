package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// MemoryStore implements Store with an in-memory map. It backs local
// development and is the degraded mode when external credentials are
// missing, in which case it is pre-seeded with mock records.
type MemoryStore struct {
	mu         sync.RWMutex
	candidates map[string]*model.CandidateRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: make(map[string]*model.CandidateRecord),
	}
}

// SeedMockCandidates loads placeholder records so list/read endpoints return
// data instead of failing when no tabular-store credentials are configured.
func (s *MemoryStore) SeedMockCandidates() {
	mocks := []*model.CandidateRecord{
		{
			ID:                uuid.New().String(),
			Name:              "Jane Doe",
			Email:             "jane.doe@example.com",
			Phone:             "(555) 123-4567",
			Location:          "Austin, TX",
			CurrentJobTitle:   "Senior Software Engineer",
			YearsOfExperience: "8 years",
			Skills:            "Go, PostgreSQL, Kubernetes",
			ParsingMethod:     model.MethodPDFText,
		},
		{
			ID:                uuid.New().String(),
			Name:              "Arjun Mehta",
			Email:             "arjun.mehta@example.com",
			Phone:             "+91 98765 43210",
			Location:          "Bengaluru, India",
			CurrentJobTitle:   "Data Scientist",
			YearsOfExperience: "5 years",
			Skills:            "Python, TensorFlow, Spark",
			ParsingMethod:     model.MethodOCR,
		},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range mocks {
		touch(m, true)
		s.candidates[m.ID] = m
	}
}

func (s *MemoryStore) CreateCandidate(_ context.Context, rec *model.CandidateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	touch(rec, true)
	cp := *rec
	s.candidates[rec.ID] = &cp
	return nil
}

func (s *MemoryStore) GetCandidate(_ context.Context, id string) (*model.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) UpdateCandidate(_ context.Context, rec *model.CandidateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[rec.ID]; !ok {
		return ErrNotFound
	}
	touch(rec, false)
	cp := *rec
	s.candidates[rec.ID] = &cp
	return nil
}

func (s *MemoryStore) ListCandidates(_ context.Context, pageSize int32, pageToken string) ([]*model.CandidateRecord, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.candidates))
	for id := range s.candidates {
		ids = append(ids, id)
	}
	page, next, err := paginateIDs(ids, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	out := make([]*model.CandidateRecord, 0, len(page))
	for _, id := range page {
		cp := *s.candidates[id]
		out = append(out, &cp)
	}
	return out, next, nil
}

// paginateIDs applies cursor-based pagination to a set of IDs. Returns the
// page of IDs and the next page token (empty when no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string, error) {
	if pageSize <= 0 {
		pageSize = 100
	}
	sort.Strings(ids)

	startIdx := 0
	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err != nil {
			return nil, "", err
		}
		for i, id := range ids {
			if id > cursorID {
				startIdx = i
				break
			}
			if i == len(ids)-1 {
				startIdx = len(ids)
			}
		}
	}

	endIdx := startIdx + int(pageSize)
	if endIdx > len(ids) {
		endIdx = len(ids)
	}
	page := ids[startIdx:endIdx]

	next := ""
	if endIdx < len(ids) && len(page) > 0 {
		next = EncodePageToken(page[len(page)-1])
	}
	return page, next, nil
}
