// Package fields populates CandidateRecord fields from raw resume text using
// ordered per-field heuristics. Each field carries its own priority list of
// patterns; the first match wins. Vocabulary fields (skills, languages,
// areas of expertise) instead union keyword hits over the text.
package fields

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
)

// heuristic is one regex rule for one field. Group selects the submatch to
// keep (0 = whole match).
type heuristic struct {
	re    *regexp.Regexp
	group int
}

// apply runs an ordered heuristic list over text and returns the first hit.
func apply(hs []heuristic, text string) string {
	for _, h := range hs {
		if m := h.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[h.group])
		}
	}
	return ""
}

var emailHeuristics = []heuristic{
	{regexp.MustCompile(`(?i)e-?mail\s*[:\-]\s*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`), 1},
	{regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`), 0},
}

var phoneHeuristics = []heuristic{
	{regexp.MustCompile(`(?i)(?:phone|mobile|cell|tel)\s*[:\-]\s*(\+?[\d\s().\-]{7,20}\d)`), 1},
	{regexp.MustCompile(`\+\d{1,3}[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}`), 0},
	{regexp.MustCompile(`\(?\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}`), 0},
	{regexp.MustCompile(`\b\d{10}\b`), 0},
}

var linkedinHeuristics = []heuristic{
	{regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_%\-]+/?`), 0},
	{regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/pub/[A-Za-z0-9_%/\-]+`), 0},
}

var yearsHeuristics = []heuristic{
	{regexp.MustCompile(`(?i)(\d{1,2}\+?)\s*years?\s+of\s+(?:[A-Za-z]+\s+)?experience`), 1},
	{regexp.MustCompile(`(?i)(\d{1,2}\+?)\s*years?['’]?\s+experience`), 1},
	{regexp.MustCompile(`(?i)experience\s*[:\-]\s*(\d{1,2}\+?)\s*years?`), 1},
	{regexp.MustCompile(`(?i)over\s+(\d{1,2})\s+years`), 1},
}

var salaryHeuristics = []heuristic{
	{regexp.MustCompile(`(?i)(?:expected|desired|current)\s+(?:salary|ctc|compensation)\s*[:\-]?\s*([$€£₹]?\s?\d[\d,.]*\s*(?:k|K|LPA|lakhs?|(?:per|/)\s*(?:annum|year|yr|month|mo))?)`), 1},
	{regexp.MustCompile(`(?i)salary\s*[:\-]\s*([$€£₹]?\s?\d[\d,.]*\s*(?:k|K|LPA|lakhs?|(?:per|/)\s*(?:annum|year|yr|month|mo))?)`), 1},
}

var locationHeuristics = []heuristic{
	{regexp.MustCompile(`(?im)^(?:location|address|based in)\s*[:\-]\s*(.+)$`), 1},
	{regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?,\s*[A-Z]{2})\b`), 1},
	{regexp.MustCompile(`\b([A-Z][a-z]+(?:\s[A-Z][a-z]+)?,\s*[A-Z][a-z]{3,})\b`), 1},
}

var nameLabelRe = regexp.MustCompile(`(?im)^name\s*[:\-]\s*(.+)$`)

// nameLineRe matches a plausible standalone name line: 2-4 capitalized words.
var nameLineRe = regexp.MustCompile(`^[A-Z][A-Za-z'.\-]+(?:\s+[A-Z][A-Za-z'.\-]+){1,3}$`)

// headingWords disqualify a line from being a person's name.
var headingWords = []string{
	"resume", "curriculum", "vitae", "summary", "objective", "profile",
	"experience", "education", "skills", "contact", "projects",
}

var titleCaser = cases.Title(language.English)

// extractName prefers an explicit label, then scans the first lines for a
// plausible standalone name.
func extractName(text string) string {
	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return titleCaser.String(strings.ToLower(strings.TrimSpace(m[1])))
	}

	lines := strings.Split(text, "\n")
	limit := 5
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if limit--; limit < 0 {
			break
		}
		if strings.ContainsAny(line, "@0123456789|/") {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, w := range headingWords {
			if strings.Contains(lower, w) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		candidate := line
		if nameLineRe.MatchString(candidate) {
			return candidate
		}
		// All-caps header names ("JOHN A. SMITH") are common in resumes.
		if candidate == strings.ToUpper(candidate) {
			titled := titleCaser.String(strings.ToLower(candidate))
			if nameLineRe.MatchString(titled) {
				return titled
			}
		}
	}
	return ""
}

// extractJobTitle looks for a known title near the top of the resume, then
// falls back to the first line of the experience section.
func extractJobTitle(text, experience string) string {
	head := firstLines(text, 15)
	if t := matchTitleVocab(head); t != "" {
		return t
	}
	if experience != "" {
		if t := matchTitleVocab(firstLines(experience, 3)); t != "" {
			return t
		}
		for _, line := range strings.Split(experience, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				return line
			}
		}
	}
	return ""
}

func firstLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// Extract applies every field heuristic to raw resume text and assembles a
// CandidateRecord. Fields with no match stay empty; nothing here errors.
func Extract(text string) *model.CandidateRecord {
	sections := splitSections(text)

	rec := &model.CandidateRecord{
		Email:             apply(emailHeuristics, text),
		Phone:             apply(phoneHeuristics, text),
		LinkedinURL:       apply(linkedinHeuristics, text),
		YearsOfExperience: formatYears(apply(yearsHeuristics, text)),
		ExpectedSalary:    apply(salaryHeuristics, text),
		Location:          apply(locationHeuristics, firstLines(text, 12)),
		Summary:           sections[sectionSummary],
		Experience:        sections[sectionExperience],
		Education:         sections[sectionEducation],
		Qualifications:    sections[sectionQualifications],
		AreasOfExpertise:  sections[sectionExpertise],
	}

	rec.Name = extractName(text)
	rec.CurrentJobTitle = extractJobTitle(text, rec.Experience)
	rec.Skills = matchVocabulary(text, skillVocabulary)

	langScope := text
	if s := sections[sectionLanguages]; s != "" {
		langScope = s
	}
	rec.Languages = matchVocabulary(langScope, languageVocabulary)

	if rec.AreasOfExpertise == "" {
		rec.AreasOfExpertise = matchVocabulary(text, expertiseVocabulary)
	}

	return rec
}

// formatYears normalizes a years-of-experience hit to "N years".
func formatYears(n string) string {
	if n == "" {
		return ""
	}
	return n + " years"
}
