package fields

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Doe
Senior Software Engineer
Email: jane.doe@example.com
Phone: (555) 123-4567
Location: Austin, TX
linkedin.com/in/janedoe

Summary
Seasoned engineer with 5 years of experience building backend services.
Expected Salary: $85,000 per year

Skills
Go, Kubernetes, PostgreSQL, Docker

Experience
Senior Software Engineer at Acme Corp
Designed and ran resume ingestion pipelines.

Education
B.S. Computer Science, UT Austin

Languages
English, Spanish
`

func TestExtractFullResume(t *testing.T) {
	rec := Extract(sampleResume)

	if rec.Email != "jane.doe@example.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if rec.Phone != "(555) 123-4567" {
		t.Errorf("Phone = %q", rec.Phone)
	}
	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.YearsOfExperience != "5 years" {
		t.Errorf("YearsOfExperience = %q, want \"5 years\"", rec.YearsOfExperience)
	}
	if rec.CurrentJobTitle != "Senior Software Engineer" {
		t.Errorf("CurrentJobTitle = %q", rec.CurrentJobTitle)
	}
	if rec.Location != "Austin, TX" {
		t.Errorf("Location = %q", rec.Location)
	}
	if rec.LinkedinURL != "linkedin.com/in/janedoe" {
		t.Errorf("LinkedinURL = %q", rec.LinkedinURL)
	}
	if !strings.HasPrefix(rec.ExpectedSalary, "$85,000") {
		t.Errorf("ExpectedSalary = %q", rec.ExpectedSalary)
	}
	for _, skill := range []string{"Go", "Kubernetes", "PostgreSQL", "Docker"} {
		if !strings.Contains(rec.Skills, skill) {
			t.Errorf("Skills = %q, missing %q", rec.Skills, skill)
		}
	}
	if rec.Languages != "English, Spanish" {
		t.Errorf("Languages = %q", rec.Languages)
	}
	if !strings.Contains(rec.Summary, "Seasoned engineer") {
		t.Errorf("Summary = %q", rec.Summary)
	}
	if !strings.Contains(rec.Experience, "Acme Corp") {
		t.Errorf("Experience = %q", rec.Experience)
	}
	if !strings.Contains(rec.Education, "Computer Science") {
		t.Errorf("Education = %q", rec.Education)
	}
}

func TestExtractEmptyText(t *testing.T) {
	rec := Extract("")
	if rec.Email != "" || rec.Name != "" || rec.Skills != "" {
		t.Fatalf("empty text must yield empty fields: %+v", rec)
	}
}

func TestEmailHeuristicsLabelWins(t *testing.T) {
	text := "Contact jane@other.org for references\nE-mail: jane.doe@corp.io"
	if got := apply(emailHeuristics, text); got != "jane.doe@corp.io" {
		t.Errorf("labeled email lost to bare match: %q", got)
	}
}

func TestEmailHeuristicsBareMatch(t *testing.T) {
	if got := apply(emailHeuristics, "reach me at john@example.com anytime"); got != "john@example.com" {
		t.Errorf("got %q, want john@example.com", got)
	}
}

func TestPhoneHeuristics(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Phone: +1 (512) 555-0199", "+1 (512) 555-0199"},
		{"call (555) 123-4567 today", "(555) 123-4567"},
		{"mobile 9876543210 listed", "9876543210"},
	}
	for _, tt := range tests {
		if got := apply(phoneHeuristics, tt.text); got != tt.want {
			t.Errorf("apply(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestYearsHeuristics(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"5 years of experience in Go", "5 years"},
		{"12+ years of professional experience", "12+ years"},
		{"Over 8 years building services", "8 years"},
		{"no experience figure here", ""},
	}
	for _, tt := range tests {
		got := formatYears(apply(yearsHeuristics, tt.text))
		if got != tt.want {
			t.Errorf("years(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractNameLabel(t *testing.T) {
	if got := extractName("Name: john smith\nother text"); got != "John Smith" {
		t.Errorf("got %q, want John Smith", got)
	}
}

func TestExtractNameAllCapsHeader(t *testing.T) {
	if got := extractName("JOHN A. SMITH\nSoftware Developer"); got != "John A. Smith" {
		t.Errorf("got %q, want John A. Smith", got)
	}
}

func TestExtractNameSkipsHeadings(t *testing.T) {
	text := "Curriculum Vitae\nJane Doe\njane@x.io"
	if got := extractName(text); got != "Jane Doe" {
		t.Errorf("got %q, want Jane Doe", got)
	}
}

func TestExtractNameNotFound(t *testing.T) {
	if got := extractName("resume\n12345\n@handle"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSplitSections(t *testing.T) {
	text := `intro line

PROFESSIONAL SUMMARY:
builds things

Work Experience
Acme Corp 2020-2024

Education
State University`

	sections := splitSections(text)

	if sections[sectionSummary] != "builds things" {
		t.Errorf("summary = %q", sections[sectionSummary])
	}
	if !strings.Contains(sections[sectionExperience], "Acme Corp") {
		t.Errorf("experience = %q", sections[sectionExperience])
	}
	if sections[sectionEducation] != "State University" {
		t.Errorf("education = %q", sections[sectionEducation])
	}
}

func TestSplitSectionsFirstBodyWins(t *testing.T) {
	text := "Summary\nfirst body\n\nObjective\nsecond body"
	sections := splitSections(text)
	if !strings.Contains(sections[sectionSummary], "first body") {
		t.Errorf("summary = %q, want first occurrence kept", sections[sectionSummary])
	}
}

func TestHeadingKeyRejectsLongLines(t *testing.T) {
	line := "experience has taught me that long sentences are not headings at all"
	if _, ok := headingKey(line); ok {
		t.Error("long line treated as heading")
	}
}

func TestMatchVocabularyWordBoundaries(t *testing.T) {
	// "Go" must not match inside "algorithms", "Java" not inside "JavaScript".
	text := "Implemented algorithms in JavaScript and some C++ and Node.js services"
	got := matchVocabulary(text, skillVocabulary)

	if strings.Contains(got, "Go") {
		t.Errorf("Skills = %q, Go matched inside another word", got)
	}
	for _, want := range []string{"JavaScript", "C++", "Node.js"} {
		if !strings.Contains(got, want) {
			t.Errorf("Skills = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got+",", "Java,") {
		t.Errorf("Skills = %q, Java matched inside JavaScript", got)
	}
}

func TestMatchTitleVocabMostSpecificFirst(t *testing.T) {
	if got := matchTitleVocab("Senior Software Engineer with a decade of work"); got != "Senior Software Engineer" {
		t.Errorf("got %q", got)
	}
	if got := matchTitleVocab("Software Engineer at a startup"); got != "Software Engineer" {
		t.Errorf("got %q", got)
	}
	if got := matchTitleVocab("professional skydiver"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
