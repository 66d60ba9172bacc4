package fields

import "strings"

// Section keys used by Extract.
const (
	sectionSummary        = "summary"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionQualifications = "qualifications"
	sectionExpertise      = "expertise"
	sectionSkills         = "skills"
	sectionLanguages      = "languages"
)

// sectionHeadings maps every recognized heading spelling to its section key.
// Matching is case-insensitive against the whole heading line.
var sectionHeadings = map[string]string{
	"summary":              sectionSummary,
	"professional summary": sectionSummary,
	"career summary":       sectionSummary,
	"objective":            sectionSummary,
	"career objective":     sectionSummary,
	"profile":              sectionSummary,
	"about me":             sectionSummary,

	"experience":              sectionExperience,
	"work experience":         sectionExperience,
	"professional experience": sectionExperience,
	"employment history":      sectionExperience,
	"work history":            sectionExperience,

	"education":           sectionEducation,
	"academic background": sectionEducation,
	"academics":           sectionEducation,

	"qualifications":              sectionQualifications,
	"certifications":              sectionQualifications,
	"certificates":                sectionQualifications,
	"licenses and certifications": sectionQualifications,

	"areas of expertise": sectionExpertise,
	"core competencies":  sectionExpertise,
	"expertise":          sectionExpertise,
	"specialties":        sectionExpertise,

	"skills":           sectionSkills,
	"technical skills": sectionSkills,
	"key skills":       sectionSkills,

	"languages":       sectionLanguages,
	"languages known": sectionLanguages,
}

const maxSectionLen = 2000 // cap per section body

// splitSections walks the text line by line, treating any recognized heading
// as a section boundary, and returns the body of each section found. When a
// section key appears more than once the first body wins.
func splitSections(text string) map[string]string {
	out := make(map[string]string)

	var current string
	var body []string

	flush := func() {
		if current == "" || len(body) == 0 {
			body = nil
			return
		}
		if _, exists := out[current]; !exists {
			s := strings.TrimSpace(strings.Join(body, "\n"))
			if len(s) > maxSectionLen {
				s = s[:maxSectionLen]
			}
			out[current] = s
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if key, ok := headingKey(line); ok {
			flush()
			current = key
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return out
}

// headingKey reports whether a line is a recognized section heading.
// Headings are short lines, optionally suffixed with a colon.
func headingKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}
	trimmed = strings.TrimSuffix(trimmed, ":")
	key, ok := sectionHeadings[strings.ToLower(strings.TrimSpace(trimmed))]
	return key, ok
}
