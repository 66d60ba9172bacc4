package fields

import "strings"

// skillVocabulary is the static membership list for the skills field.
// Casing here is what lands in the record.
var skillVocabulary = []string{
	// Languages
	"Go", "Golang", "Python", "Java", "JavaScript", "TypeScript", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "MATLAB", "SQL",
	// Web & frameworks
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django",
	"Flask", "FastAPI", "Spring", "Spring Boot", ".NET", "Rails", "Laravel",
	"GraphQL", "REST", "gRPC", "HTML", "CSS", "Sass", "Tailwind",
	// Data stores
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
	"DynamoDB", "SQLite", "Oracle", "SQL Server", "Kafka", "RabbitMQ",
	// Cloud & infra
	"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"Ansible", "Jenkins", "CircleCI", "GitHub Actions", "CI/CD", "Linux",
	"Nginx", "Serverless", "Lambda", "Firebase",
	// Data & ML
	"Machine Learning", "Deep Learning", "NLP", "Computer Vision",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Spark",
	"Hadoop", "Airflow", "Data Analysis", "Data Engineering", "Tableau",
	"Power BI", "Excel",
	// Tooling & practice
	"Git", "Jira", "Agile", "Scrum", "Kanban", "TDD", "Microservices",
	"Distributed Systems", "System Design", "OAuth", "Selenium", "Cypress",
	// Soft skills kept for parity with typical resume parsers
	"Project Management", "Team Leadership", "Communication", "Mentoring",
	"Stakeholder Management", "Problem Solving",
}

// languageVocabulary is the membership list for spoken languages.
var languageVocabulary = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Dutch", "Russian", "Polish", "Ukrainian", "Mandarin", "Chinese",
	"Cantonese", "Japanese", "Korean", "Arabic", "Hebrew", "Turkish",
	"Hindi", "Bengali", "Tamil", "Telugu", "Marathi", "Punjabi", "Urdu",
	"Gujarati", "Kannada", "Malayalam", "Vietnamese", "Thai", "Indonesian",
	"Swedish", "Norwegian", "Danish", "Finnish", "Greek",
}

// expertiseVocabulary backs areasOfExpertise when the resume has no explicit
// expertise section.
var expertiseVocabulary = []string{
	"Backend Development", "Frontend Development", "Full Stack Development",
	"Mobile Development", "Cloud Architecture", "Data Science",
	"Machine Learning", "DevOps", "Site Reliability", "Security",
	"Quality Assurance", "Product Management", "UI/UX Design",
	"Business Analysis", "Database Administration", "Network Engineering",
	"Embedded Systems", "Game Development", "Blockchain",
}

// titleVocabulary is ordered most-specific first so e.g. "Senior Software
// Engineer" beats "Software Engineer".
var titleVocabulary = []string{
	"Principal Software Engineer", "Staff Software Engineer",
	"Senior Software Engineer", "Lead Software Engineer",
	"Senior Backend Engineer", "Senior Frontend Engineer",
	"Senior Full Stack Developer", "Senior Data Scientist",
	"Senior Data Engineer", "Senior DevOps Engineer",
	"Senior Product Manager", "Engineering Manager",
	"Software Engineer", "Software Developer", "Backend Engineer",
	"Backend Developer", "Frontend Engineer", "Frontend Developer",
	"Full Stack Developer", "Full Stack Engineer", "Web Developer",
	"Mobile Developer", "Android Developer", "iOS Developer",
	"Data Scientist", "Data Engineer", "Data Analyst",
	"Machine Learning Engineer", "DevOps Engineer", "Cloud Engineer",
	"Site Reliability Engineer", "Security Engineer", "QA Engineer",
	"Test Engineer", "Solutions Architect", "Software Architect",
	"Technical Lead", "Tech Lead", "Product Manager", "Project Manager",
	"Business Analyst", "Systems Analyst", "UX Designer", "UI Designer",
	"Scrum Master", "Consultant",
}

// matchVocabulary unions vocabulary hits over the text, preserving the
// vocabulary order and casing, and returns them comma-joined.
func matchVocabulary(text string, vocab []string) string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var hits []string
	for _, term := range vocab {
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		if containsToken(lower, key) {
			seen[key] = true
			hits = append(hits, term)
		}
	}
	return strings.Join(hits, ", ")
}

// matchTitleVocab returns the first (most specific) job title found.
func matchTitleVocab(text string) string {
	lower := strings.ToLower(text)
	for _, title := range titleVocabulary {
		if containsToken(lower, strings.ToLower(title)) {
			return title
		}
	}
	return ""
}

// containsToken is a word-boundary-aware substring test. Plain
// strings.Contains would match "go" inside "algorithm" or "r" everywhere;
// boundaries are any non-alphanumeric rune, which also keeps "c++" and
// "node.js" matchable.
func containsToken(lower, token string) bool {
	for start := 0; ; {
		idx := strings.Index(lower[start:], token)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(token)

		beforeOK := idx == 0 || !isWordByte(lower[idx-1])
		afterOK := end == len(lower) || !isWordByte(lower[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
