// Package service orchestrates the resume parsing pipeline and exposes it
// over HTTP.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pavitra-programmers/Resume-Parser/internal/archive"
	"github.com/Pavitra-programmers/Resume-Parser/internal/extraction"
	"github.com/Pavitra-programmers/Resume-Parser/internal/fields"
	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
	"github.com/Pavitra-programmers/Resume-Parser/internal/store"
)

// Normalizer reshapes heuristic output with an LLM. Implemented by ai.Client.
type Normalizer interface {
	Normalize(ctx context.Context, resumeText string) (*model.CandidateRecord, error)
}

// Indexer pushes records into a search index. Implemented by search.AlgoliaClient.
type Indexer interface {
	IndexCandidate(ctx context.Context, rec *model.CandidateRecord) error
	SearchCandidates(ctx context.Context, query string, limit int) ([]string, error)
}

// ParserService runs the extraction cascade, field heuristics and optional
// AI normalization, then persists the result. The normalizer, indexer and
// archiver are all optional.
type ParserService struct {
	cascade  *extraction.Cascade
	store    store.Store
	ai       Normalizer
	index    Indexer
	archiver *archive.GCSArchiver
	logger   *slog.Logger
}

func NewParserService(cascade *extraction.Cascade, st store.Store, logger *slog.Logger) *ParserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserService{cascade: cascade, store: st, logger: logger}
}

// SetNormalizer enables AI normalization of heuristic output.
func (s *ParserService) SetNormalizer(n Normalizer) { s.ai = n }

// SetIndexer enables search indexing on create and update.
func (s *ParserService) SetIndexer(idx Indexer) { s.index = idx }

// SetArchiver enables raw PDF archival.
func (s *ParserService) SetArchiver(a *archive.GCSArchiver) { s.archiver = a }

// ParseAndStore runs the full pipeline over one uploaded PDF and persists the
// resulting record. Extraction never fails the request: when every strategy
// is exhausted an all-empty record tagged Fallback is stored. A persistence
// failure is the only error returned.
func (s *ParserService) ParseAndStore(ctx context.Context, pdfData []byte) (*model.CandidateRecord, error) {
	start := time.Now()

	text, method := s.cascade.Run(ctx, pdfData)

	var rec *model.CandidateRecord
	if method == model.MethodFallback {
		rec = model.FallbackRecord()
	} else {
		rec = fields.Extract(text)
		rec.ResumeText = text
		rec.ParsingMethod = method
		s.normalize(ctx, rec, text)
	}
	rec.ID = uuid.New().String()

	if err := s.store.CreateCandidate(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist candidate: %w", err)
	}

	s.archiveResume(ctx, rec.ID, pdfData)
	s.indexCandidate(ctx, rec)

	s.logger.Info("parse.ok",
		"candidate_id", rec.ID,
		"method", rec.ParsingMethod,
		"pages", extraction.CountPDFPages(pdfData),
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// normalize lets the AI overwrite heuristic fields. Failures keep the
// heuristic record untouched.
func (s *ParserService) normalize(ctx context.Context, rec *model.CandidateRecord, text string) {
	if s.ai == nil {
		return
	}
	normalized, err := s.ai.Normalize(ctx, text)
	if err != nil {
		s.logger.Warn("parse.normalize.failed", "error", err)
		return
	}
	rec.Merge(normalized)
	rec.ParsingMethod += model.AISuffix
}

func (s *ParserService) archiveResume(ctx context.Context, id string, data []byte) {
	if err := s.archiver.ArchiveResume(ctx, id, data); err != nil {
		s.logger.Warn("parse.archive.failed", "candidate_id", id, "error", err)
	}
}

func (s *ParserService) indexCandidate(ctx context.Context, rec *model.CandidateRecord) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexCandidate(ctx, rec); err != nil {
		s.logger.Warn("parse.index.failed", "candidate_id", rec.ID, "error", err)
	}
}

// Get returns one stored record.
func (s *ParserService) Get(ctx context.Context, id string) (*model.CandidateRecord, error) {
	return s.store.GetCandidate(ctx, id)
}

// List returns a page of stored records.
func (s *ParserService) List(ctx context.Context, pageSize int32, pageToken string) ([]*model.CandidateRecord, string, error) {
	return s.store.ListCandidates(ctx, pageSize, pageToken)
}

// Search resolves a free-text query through the search index and hydrates the
// matching records from the store. IDs present in the index but missing from
// the store are skipped. Without an index it degrades to a substring scan
// over the stored records.
func (s *ParserService) Search(ctx context.Context, query string, limit int) ([]*model.CandidateRecord, error) {
	if limit <= 0 {
		limit = 25
	}
	if s.index == nil {
		return s.scanStore(ctx, query, limit)
	}
	ids, err := s.index.SearchCandidates(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*model.CandidateRecord, 0, len(ids))
	for _, id := range ids {
		rec, getErr := s.store.GetCandidate(ctx, id)
		if getErr != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// scanStore is the indexless search path: a case-insensitive substring match
// over the text-bearing fields of every stored record.
func (s *ParserService) scanStore(ctx context.Context, query string, limit int) ([]*model.CandidateRecord, error) {
	needle := strings.ToLower(query)
	var out []*model.CandidateRecord
	var pageToken string
	for {
		recs, next, err := s.store.ListCandidates(ctx, 500, pageToken)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			haystack := strings.ToLower(strings.Join([]string{
				rec.Name, rec.Email, rec.Location, rec.CurrentJobTitle,
				rec.Skills, rec.Languages, rec.AreasOfExpertise,
			}, "\n"))
			if strings.Contains(haystack, needle) {
				out = append(out, rec)
				if len(out) >= limit {
					return out, nil
				}
			}
		}
		if next == "" {
			return out, nil
		}
		pageToken = next
	}
}

// Update applies the non-empty fields of patch to the stored record and
// persists the result. Returns the updated record.
func (s *ParserService) Update(ctx context.Context, id string, patch *model.CandidateRecord) (*model.CandidateRecord, error) {
	rec, err := s.store.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.Merge(patch)
	if err := s.store.UpdateCandidate(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist candidate: %w", err)
	}

	s.indexCandidate(ctx, rec)
	return rec, nil
}
