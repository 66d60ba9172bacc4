// Package search maintains an optional Algolia index of candidate records
// for full-text queries over names, titles and skills.
package search

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// Config holds Algolia configuration.
type Config struct {
	AppID     string
	APIKey    string
	IndexName string
}

// AlgoliaClient wraps the Algolia search API client.
type AlgoliaClient struct {
	client    *search.APIClient
	indexName string
}

// NewAlgoliaClient creates a new Algolia search client.
func NewAlgoliaClient(cfg Config) (*AlgoliaClient, error) {
	if cfg.AppID == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("algolia AppID and APIKey are required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "candidates"
	}

	client, err := search.NewClient(cfg.AppID, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating algolia client: %w", err)
	}

	return &AlgoliaClient{client: client, indexName: cfg.IndexName}, nil
}

// IndexCandidate pushes a record into the index; called on create/update.
// The resume body itself is not indexed.
func (c *AlgoliaClient) IndexCandidate(ctx context.Context, rec *model.CandidateRecord) error {
	body := map[string]any{
		"objectID":          rec.ID,
		"Name":              rec.Name,
		"Email":             rec.Email,
		"Location":          rec.Location,
		"CurrentJobTitle":   rec.CurrentJobTitle,
		"Skills":            rec.Skills,
		"Languages":         rec.Languages,
		"YearsOfExperience": rec.YearsOfExperience,
		"ParsingMethod":     rec.ParsingMethod,
	}

	_, err := c.client.SaveObject(c.client.NewApiSaveObjectRequest(c.indexName, body))
	if err != nil {
		return fmt.Errorf("algolia save object: %w", err)
	}
	return nil
}

// SearchCandidates returns the IDs of records matching the query, ranked by
// Algolia relevance. Callers hydrate the full records from the store.
func (c *AlgoliaClient) SearchCandidates(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	hitsPerPage := int32(limit)
	params := search.SearchParamsObjectAsSearchParams(
		search.NewSearchParamsObject().
			SetQuery(query).
			SetHitsPerPage(hitsPerPage),
	)

	resp, err := c.client.SearchSingleIndex(c.client.NewApiSearchSingleIndexRequest(c.indexName).WithSearchParams(params))
	if err != nil {
		return nil, fmt.Errorf("algolia search: %w", err)
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if v, ok := hit.AdditionalProperties["objectID"].(string); ok {
			ids = append(ids, v)
		}
	}
	return ids, nil
}
