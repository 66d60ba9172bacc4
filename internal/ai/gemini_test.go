package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// geminiServer fakes the generateContent endpoint, returning the given text
// as the single candidate part.
func geminiServer(t *testing.T, replyText string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error": {"message": "boom"}}`))
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": replyText}},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestNewClientWithoutKey(t *testing.T) {
	if c := NewClient("", nil); c != nil {
		t.Fatal("expected nil client when API key is empty")
	}
}

func TestNormalize(t *testing.T) {
	reply := `{"name": "Jane Doe", "email": "jane@example.com", "yearsOfExperience": "5 years", "skills": "Go, Kubernetes"}`
	srv := geminiServer(t, reply, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	rec, err := c.Normalize(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Email != "jane@example.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if rec.YearsOfExperience != "5 years" {
		t.Errorf("YearsOfExperience = %q", rec.YearsOfExperience)
	}
}

func TestNormalizeStripsCodeFence(t *testing.T) {
	reply := "```json\n{\"name\": \"Jane Doe\", \"email\": \"\"}\n```"
	srv := geminiServer(t, reply, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	rec, err := c.Normalize(context.Background(), "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q", rec.Name)
	}
}

func TestNormalizeSchemaRejectsWrongTypes(t *testing.T) {
	reply := `{"name": 42, "email": "jane@example.com"}`
	srv := geminiServer(t, reply, http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	if _, err := c.Normalize(context.Background(), "resume text"); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestNormalizeAPIError(t *testing.T) {
	srv := geminiServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	if _, err := c.Normalize(context.Background(), "resume text"); err == nil {
		t.Fatal("expected error on API failure")
	}
}

func TestNormalizeGarbageReply(t *testing.T) {
	srv := geminiServer(t, "sorry, I cannot help with that", http.StatusOK)
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	if _, err := c.Normalize(context.Background(), "resume text"); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestTranscribeImages(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": "page one text"}},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient("test-key", nil).WithBaseURL(srv.URL)
	text, err := c.TranscribeImages(context.Background(), [][]byte{[]byte("png1"), []byte("png2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "page one text" {
		t.Errorf("text = %q", text)
	}

	// prompt part plus one inline image part per page
	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 3 {
		t.Fatalf("sent %d parts, want 3", len(parts))
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateCandidateJSON(t *testing.T) {
	if err := ValidateCandidateJSON([]byte(`{"name": "Jane", "extraKey": "tolerated"}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := ValidateCandidateJSON([]byte(`["not", "an", "object"]`)); err == nil {
		t.Error("array accepted")
	}
	if err := ValidateCandidateJSON([]byte(`{"skills": ["Go"]}`)); err == nil {
		t.Error("non-string field accepted")
	}
}
