package heuristics

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// ExtractEmail returns the first email address found in text, or "".
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// Phone patterns, tried in order. Mongolian mobiles are +976 followed by an
// 8-digit number; plain 8-digit locals are common on Mongolian CVs.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+976[\s\-]?\d{4}[\s\-]?\d{4}`),
	regexp.MustCompile(`\+?\d{1,3}[\s\-.]?\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`),
	regexp.MustCompile(`\b\d{8}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
}

// ExtractPhone returns the first phone number found in text, or "".
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

var (
	// Two to four capitalized Latin words near the top of a CV.
	latinNameRe = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*$`)
	// Mongolian Cyrillic names, including Өө and Үү. One to three words;
	// single-word with an initial ("Б. Болд") is also common.
	cyrillicNameRe = regexp.MustCompile(`^((?:[А-ЯЁӨҮ]\.\s*)?[А-ЯЁӨҮ][а-яёөү]+(?:\s+[А-ЯЁӨҮ][а-яёөү]+){0,2})\s*$`)
)

// ExtractName scans the first lines of a CV for something shaped like a
// person's name, using language-specific capitalization patterns. Returns ""
// when nothing plausible is found.
func ExtractName(text, language string) string {
	re := latinNameRe
	if language == LangMongolian {
		re = cyrillicNameRe
	}

	lines := strings.Split(text, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@:") {
			continue
		}
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

var locationMarkers = map[string][]string{
	LangEnglish:   {"address:", "location:", "city:"},
	LangMongolian: {"хаяг:", "байршил:", "хот:"},
}

// ExtractLocation looks for an explicitly labelled address/location line.
func ExtractLocation(text, language string) string {
	markers := locationMarkers[language]
	if markers == nil {
		markers = locationMarkers[LangEnglish]
	}
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, marker := range markers {
			if strings.HasPrefix(lower, marker) {
				loc := strings.TrimSpace(line[strings.Index(strings.ToLower(line), marker)+len(marker):])
				if loc != "" {
					return loc
				}
			}
		}
	}
	return ""
}

// FormatCandidateName normalizes a candidate name for consistent display:
// collapses whitespace and title-cases each word. Empty input maps to the
// placeholder name used for unparsable CVs.
func FormatCandidateName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "Unknown Candidate"
	}
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		first := []rune(strings.ToUpper(string(runes[0])))
		words[i] = string(first) + string(runes[1:])
	}
	return strings.Join(words, " ")
}
