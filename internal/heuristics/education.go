package heuristics

import (
	"regexp"
	"strings"
)

// EducationHit is a heuristically extracted education record. The parsing
// stage converts hits into the candidate's education entries when the LLM
// extraction comes back empty.
type EducationHit struct {
	Degree      string
	Institution string
	Year        string
}

var educationSectionHeaders = map[string][]string{
	LangEnglish:   {"education", "academic background", "qualifications"},
	LangMongolian: {"боловсрол", "мэргэжил эзэмшсэн"},
}

var degreeKeywords = []string{
	"phd", "doctorate", "ph.d", "master", "msc", "mba", "ma",
	"bachelor", "bsc", "ba", "b.s", "diploma", "certificate", "degree",
	// Mongolian degree terms
	"доктор", "магистр", "бакалавр", "диплом",
}

var institutionKeywords = []string{
	"university", "college", "institute", "school",
	"их сургууль", "дээд сургууль", "коллеж", "сургууль",
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ExtractEducation scans the education section (or, failing that, the whole
// document) for lines mentioning a degree or institution.
func ExtractEducation(text, language string) []EducationHit {
	headers := educationSectionHeaders[language]
	if headers == nil {
		headers = educationSectionHeaders[LangEnglish]
	}

	section := sectionLines(text, headers)
	if len(section) == 0 {
		section = strings.Split(text, "\n")
	}

	var hits []EducationHit
	for _, line := range section {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)

		hasDegree := containsAnyToken(lower, degreeKeywords)
		hasInstitution := containsAnyToken(lower, institutionKeywords)
		if !hasDegree && !hasInstitution {
			continue
		}

		hit := EducationHit{Year: yearRe.FindString(trimmed)}
		if hasDegree {
			hit.Degree = trimmed
		}
		if hasInstitution {
			hit.Institution = trimmed
		}
		hits = append(hits, hit)
		if len(hits) >= 5 {
			break
		}
	}
	return hits
}

// sectionLines returns the lines between a matching header and the next
// section header.
func sectionLines(text string, headers []string) []string {
	var lines []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if isHeaderLine(lower, headers) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if isHeaderLine(lower, sectionStopHeaders) && !isHeaderLine(lower, headers) {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

// containsAnyToken matches keywords on word boundaries; short degree tokens
// like "ba" and "ma" would otherwise match inside ordinary words.
func containsAnyToken(s string, keywords []string) bool {
	for _, kw := range keywords {
		if containsToken(s, kw) {
			return true
		}
	}
	return false
}
