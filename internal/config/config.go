// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	AI      AIConfig
	OCR     OCRConfig
	Search  SearchConfig
	Archive ArchiveConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr          string
	MaxUploadSize int64
	AllowedOrigin string
}

// StoreConfig selects and configures the candidate store backend.
// Backend is one of "sheets", "firestore" or "memory".
type StoreConfig struct {
	Backend         string
	ProjectID       string
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
}

// AIConfig holds Gemini configuration. An empty APIKey disables both the
// normalizer and the vision extraction strategy.
type AIConfig struct {
	APIKey   string
	Model    string
	Timeout  time.Duration
	Validate bool
}

// OCRConfig holds the external tool paths for the OCR fallback.
type OCRConfig struct {
	Pdftotext string
	Pdftoppm  string
	Tesseract string
	Language  string
	DPI       int
	MaxPages  int
}

// SearchConfig holds Algolia configuration. Empty AppID disables search.
type SearchConfig struct {
	AppID     string
	APIKey    string
	IndexName string
}

// ArchiveConfig holds the GCS bucket for raw resume archival. Empty Bucket
// disables archival.
type ArchiveConfig struct {
	Bucket string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          getEnv("ADDR", ":8080"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		},
		Store: StoreConfig{
			Backend:         getEnv("STORE_BACKEND", "sheets"),
			ProjectID:       getEnv("GOOGLE_CLOUD_PROJECT", ""),
			SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
			SheetName:       getEnv("SHEETS_SHEET_NAME", "Candidates"),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		},
		AI: AIConfig{
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Model:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			Timeout:  getEnvAsDuration("GEMINI_TIMEOUT", 60*time.Second),
			Validate: getEnvAsBool("GEMINI_VALIDATE_OUTPUT", true),
		},
		OCR: OCRConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:  getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract: getEnv("TESSERACT_BIN", "tesseract"),
			Language:  getEnv("OCR_LANGUAGE", "eng"),
			DPI:       getEnvAsInt("OCR_DPI", 300),
			MaxPages:  getEnvAsInt("OCR_MAX_PAGES", 5),
		},
		Search: SearchConfig{
			AppID:     getEnv("ALGOLIA_APP_ID", ""),
			APIKey:    getEnv("ALGOLIA_API_KEY", ""),
			IndexName: getEnv("ALGOLIA_INDEX_NAME", "candidates"),
		},
		Archive: ArchiveConfig{
			Bucket: getEnv("RESUME_ARCHIVE_BUCKET", ""),
		},
	}
}

// HasStoreCredentials reports whether the configured backend has enough
// configuration to connect. When false the server degrades to the in-memory
// store seeded with mock records.
func (c *Config) HasStoreCredentials() bool {
	switch c.Store.Backend {
	case "sheets":
		return c.Store.SpreadsheetID != ""
	case "firestore":
		return c.Store.ProjectID != ""
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
