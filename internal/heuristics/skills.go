package heuristics

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// technicalSkillKeywords is the cross-language dictionary of skills matched by
// case-insensitive substring. Entries are stored lowercase; matches are
// reported title-cased.
var technicalSkillKeywords = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby",
	"go", "rust", "swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css",
	// Frameworks and libraries
	"react", "angular", "vue", "nodejs", "express", "django", "flask", "spring",
	"laravel", "rails", "tensorflow", "pytorch", "keras", "pandas", "numpy",
	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sqlite",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd",
	"terraform", "ansible",
	// Broader technical and professional skills
	"machine learning", "data science", "artificial intelligence", "blockchain",
	"cybersecurity", "network security", "web development", "mobile development",
	"ui/ux design", "product management", "project management", "agile", "scrum",
}

// skillSectionHeaders introduces a skills section per language.
var skillSectionHeaders = map[string][]string{
	LangEnglish:   {"skills", "technical skills", "core competencies"},
	LangMongolian: {"ур чадвар", "чадвар", "мэргэжлийн ур чадвар"},
}

// sectionStopHeaders ends a skills section when the next section begins.
var sectionStopHeaders = []string{
	"experience", "education", "work history", "employment", "projects",
	"certifications", "languages", "references",
	"туршлага", "боловсрол", "гэрчилгээ", "хэл",
}

// ExtractSkills unions dictionary matches with section-based extraction and
// returns a deduplicated, sorted list of display-cased skills.
func ExtractSkills(text, language string) []string {
	seen := make(map[string]string) // lowercase -> display form
	lower := strings.ToLower(text)

	for _, kw := range technicalSkillKeywords {
		if containsToken(lower, kw) {
			seen[kw] = titleCase(kw)
		}
	}

	for _, token := range extractSkillSectionTokens(text, language) {
		key := strings.ToLower(token)
		if _, ok := seen[key]; !ok {
			seen[key] = titleCase(token)
		}
	}

	skills := make([]string, 0, len(seen))
	for _, display := range seen {
		skills = append(skills, display)
	}
	sort.Strings(skills)
	return skills
}

// extractSkillSectionTokens finds sections introduced by a language-specific
// skills header and splits their content on common delimiters. Tokens must be
// longer than 2 and shorter than 50 characters.
func extractSkillSectionTokens(text, language string) []string {
	headers := skillSectionHeaders[language]
	if headers == nil {
		headers = skillSectionHeaders[LangEnglish]
	}

	var tokens []string
	lines := strings.Split(text, "\n")
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if isHeaderLine(lower, headers) {
			inSection = true
			// Content may follow the header on the same line ("Skills: Go, SQL").
			if idx := strings.Index(trimmed, ":"); idx >= 0 {
				tokens = append(tokens, splitSkillTokens(trimmed[idx+1:])...)
			}
			continue
		}
		if !inSection {
			continue
		}
		if trimmed == "" || isHeaderLine(lower, sectionStopHeaders) {
			inSection = false
			continue
		}
		tokens = append(tokens, splitSkillTokens(trimmed)...)
	}
	return tokens
}

// containsToken reports whether token occurs in text on word boundaries.
// Plain substring search would report single-letter skills like "r" for
// nearly any text.
func containsToken(text, token string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], token)
		if idx < 0 {
			return false
		}
		idx += start

		beforeOK := idx == 0
		if !beforeOK {
			r, _ := utf8.DecodeLastRuneInString(text[:idx])
			beforeOK = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}
		end := idx + len(token)
		afterOK := end == len(text)
		if !afterOK {
			r, _ := utf8.DecodeRuneInString(text[end:])
			afterOK = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isHeaderLine(lower string, headers []string) bool {
	for _, h := range headers {
		if strings.HasPrefix(lower, h) {
			return true
		}
	}
	return false
}

func splitSkillTokens(s string) []string {
	var out []string
	for _, token := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '·' || r == '|'
	}) {
		token = strings.Trim(strings.TrimSpace(token), "-–• \t")
		if len(token) > 2 && len(token) < 50 {
			out = append(out, token)
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		upper := []rune(strings.ToUpper(string(runes[0])))
		words[i] = string(upper) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

// SkillMatchPercentage computes the case-insensitive intersection of candidate
// skills with required skills, as a percentage of the required set. An empty
// requirement list is a vacuous match: 100.
func SkillMatchPercentage(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 100.0
	}

	candidate := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		candidate[strings.ToLower(strings.TrimSpace(s))] = true
	}

	required := make(map[string]bool, len(requiredSkills))
	for _, s := range requiredSkills {
		required[strings.ToLower(strings.TrimSpace(s))] = true
	}

	matched := 0
	for r := range required {
		if candidate[r] {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100.0
}
