// Package ai wraps the Gemini API for resume normalization and page-image
// transcription.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	maxPromptChars = 24 * 1024 // resume text sent to the model is capped
)

// Client calls the Gemini generateContent API.
type Client struct {
	apiKey     string
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger

	// ValidateSchema enables JSON-Schema validation of the normalizer
	// output before it is allowed to overwrite heuristic fields.
	ValidateSchema bool
}

// NewClient creates a Gemini client. Returns nil when no API key is
// configured so callers can treat AI normalization as absent.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	if apiKey == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		modelName: defaultModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger:         logger,
		ValidateSchema: true,
	}
}

// WithBaseURL overrides the API endpoint; used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

// WithModel overrides the model name.
func (c *Client) WithModel(name string) *Client {
	if name != "" {
		c.modelName = name
	}
	return c
}

// WithTimeout overrides the HTTP client timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

const normalizePrompt = `You are a resume parser. Extract candidate information from the resume text below.

Return JSON only, a single object with exactly these string fields (use "" when unknown):
{"name": "", "email": "", "phone": "", "location": "", "linkedinUrl": "", "summary": "", "areasOfExpertise": "", "qualifications": "", "experience": "", "education": "", "skills": "", "languages": "", "currentJobTitle": "", "yearsOfExperience": "", "expectedSalary": ""}

Rules:
- skills and languages are comma-separated lists
- yearsOfExperience is like "5 years"
- do not invent information that is not in the text

Resume text:
%s`

// Normalize re-sends extracted resume text to the model with a fixed
// JSON-shaped prompt and parses the structured reply. Callers fall back to
// heuristic output on any error; Normalize itself never retries.
func (c *Client) Normalize(ctx context.Context, resumeText string) (*model.CandidateRecord, error) {
	if len(resumeText) > maxPromptChars {
		resumeText = resumeText[:maxPromptChars]
	}

	start := time.Now()
	text, err := c.generate(ctx, []part{{Text: fmt.Sprintf(normalizePrompt, resumeText)}}, "application/json")
	if err != nil {
		return nil, err
	}

	payload := []byte(stripCodeFence(text))
	if c.ValidateSchema {
		if err := ValidateCandidateJSON(payload); err != nil {
			c.logger.Warn("ai.normalize.schema_rejected", "error", err)
			return nil, fmt.Errorf("schema validation failed: %w", err)
		}
	}

	var rec model.CandidateRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("parse normalizer response: %w", err)
	}

	c.logger.Info("ai.normalize.ok",
		"model", c.modelName,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"text_len", len(resumeText),
	)
	return &rec, nil
}

const transcribePrompt = `Transcribe all text from these resume page images. ` +
	`Return the plain text content only, in reading order, with no commentary.`

// TranscribeImages sends rasterized PDF pages to the vision model and
// returns the transcribed plain text. Implements extraction.Transcriber.
func (c *Client) TranscribeImages(ctx context.Context, pngPages [][]byte) (string, error) {
	parts := []part{{Text: transcribePrompt}}
	for _, img := range pngPages {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: "image/png",
				Data:     base64.StdEncoding.EncodeToString(img),
			},
		})
	}

	text, err := c.generate(ctx, parts, "text/plain")
	if err != nil {
		return "", err
	}
	return text, nil
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generate calls generateContent and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, parts []part, responseMimeType string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.modelName, c.apiKey)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.1,
			"maxOutputTokens":  8192,
			"responseMimeType": responseMimeType,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error %d: %s", resp.StatusCode, truncateStr(string(respBody), 512))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", fmt.Errorf("parse Gemini response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty Gemini response")
	}

	var b strings.Builder
	for _, p := range geminiResp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

// stripCodeFence tolerates replies wrapped in markdown code fences.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
