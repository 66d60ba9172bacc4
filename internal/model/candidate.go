// Package model defines the candidate record shared by extraction, storage and the HTTP API.
package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parsing method provenance tags. ParsingMethod records which extraction
// strategy produced the resume text; the AISuffix is appended when the
// AI normalizer overwrote the heuristic output.
const (
	MethodPDFText   = "pdf-text"
	MethodPdftotext = "pdftotext"
	MethodRawScrape = "raw-scrape"
	MethodOCR       = "ocr"
	MethodVision    = "vision"
	MethodFallback  = "Fallback"

	AISuffix = "+ai"
)

// CandidateRecord is the single entity of the system. All extraction fields
// are optional strings; a record is created once per upload and overwritten
// wholesale on update.
type CandidateRecord struct {
	ID                string `json:"id" firestore:"Id"`
	Name              string `json:"name" firestore:"Name"`
	Email             string `json:"email" firestore:"Email"`
	Phone             string `json:"phone" firestore:"Phone"`
	Location          string `json:"location" firestore:"Location"`
	LinkedinURL       string `json:"linkedinUrl" firestore:"LinkedinUrl"`
	Summary           string `json:"summary" firestore:"Summary"`
	AreasOfExpertise  string `json:"areasOfExpertise" firestore:"AreasOfExpertise"`
	Qualifications    string `json:"qualifications" firestore:"Qualifications"`
	Experience        string `json:"experience" firestore:"Experience"`
	Education         string `json:"education" firestore:"Education"`
	Skills            string `json:"skills" firestore:"Skills"`
	Languages         string `json:"languages" firestore:"Languages"`
	CurrentJobTitle   string `json:"currentJobTitle" firestore:"CurrentJobTitle"`
	YearsOfExperience string `json:"yearsOfExperience" firestore:"YearsOfExperience"`
	ExpectedSalary    string `json:"expectedSalary" firestore:"ExpectedSalary"`
	ResumeText        string `json:"resumeText,omitempty" firestore:"ResumeText"`
	ParsingMethod     string `json:"parsingMethod" firestore:"ParsingMethod"`

	CreatedAt time.Time `json:"createdAt,omitempty" firestore:"CreatedAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" firestore:"UpdatedAt"`
}

// FallbackRecord returns the all-empty record used when every extraction
// strategy is exhausted.
func FallbackRecord() *CandidateRecord {
	return &CandidateRecord{ParsingMethod: MethodFallback}
}

// Merge copies every non-empty extraction field of other onto r. The ID,
// provenance and timestamps are left untouched; used by the AI normalizer to
// overwrite heuristic output and by PUT to apply partial updates.
func (r *CandidateRecord) Merge(other *CandidateRecord) {
	if other == nil {
		return
	}
	fields := []struct {
		dst *string
		src string
	}{
		{&r.Name, other.Name},
		{&r.Email, other.Email},
		{&r.Phone, other.Phone},
		{&r.Location, other.Location},
		{&r.LinkedinURL, other.LinkedinURL},
		{&r.Summary, other.Summary},
		{&r.AreasOfExpertise, other.AreasOfExpertise},
		{&r.Qualifications, other.Qualifications},
		{&r.Experience, other.Experience},
		{&r.Education, other.Education},
		{&r.Skills, other.Skills},
		{&r.Languages, other.Languages},
		{&r.CurrentJobTitle, other.CurrentJobTitle},
		{&r.YearsOfExperience, other.YearsOfExperience},
		{&r.ExpectedSalary, other.ExpectedSalary},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.src) != "" {
			*f.dst = strings.TrimSpace(f.src)
		}
	}
}

var salaryNumberRe = regexp.MustCompile(`(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*([kK])?`)

// SalaryAmount pre-parses a currency-like string ("$85,000 per year", "90k")
// into an integer for the numeric column of the tabular store. Returns 0 and
// false when no number is present.
func SalaryAmount(s string) (int64, bool) {
	m := salaryNumberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	numeric := strings.ReplaceAll(m[1], ",", "")
	f, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		f *= 1000
	}
	return int64(f), true
}
