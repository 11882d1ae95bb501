// Package heuristics provides cheap, deterministic signal extraction from CV
// and job posting text. The extractors act as a correctness backstop for LLM
// output: every numeric or structural field the scoring algorithm depends on
// has a non-LLM fallback here.
package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// Language tags returned by DetectLanguage.
const (
	LangEnglish   = "en"
	LangMongolian = "mn"
)

// Keyword thresholds used by the different call sites.
const (
	// KeywordThresholdParsing is the stricter threshold used when parsing CVs.
	KeywordThresholdParsing = 3
	// KeywordThresholdDefault is used by scoring, interview and email stages.
	KeywordThresholdDefault = 2
)

// mongolianKeywords maps section categories to common Mongolian CV terms.
// Used to catch romanization-free Mongolian documents that are typed with a
// low Cyrillic ratio (headers in Latin, body mixed).
var mongolianKeywords = map[string][]string{
	"education":      {"боловсрол", "их сургууль", "сургууль", "зэрэг", "бакалавр", "магистр"},
	"experience":     {"туршлага", "ажлын туршлага", "ажилласан", "албан тушаал"},
	"skills":         {"ур чадвар", "чадвар", "мэдлэг"},
	"languages":      {"хэл", "монгол хэл", "англи хэл"},
	"certifications": {"гэрчилгээ", "сертификат"},
	"contact":        {"утас", "хаяг", "и-мэйл", "цахим шуудан"},
}

// DetectLanguage classifies text as Mongolian or English. It counts Cyrillic
// code points against all alphabetic characters; above a 0.3 fraction the text
// is Mongolian. Otherwise Mongolian keyword hits decide, using the given
// threshold. Pure and total: empty or non-alphabetic input yields English.
func DetectLanguage(text string, keywordThreshold int) string {
	var cyrillic, alphabetic int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		alphabetic++
		if r >= 0x0400 && r <= 0x04FF {
			cyrillic++
		}
	}
	if alphabetic == 0 {
		return LangEnglish
	}

	if float64(cyrillic)/float64(alphabetic) > 0.3 {
		return LangMongolian
	}

	lower := strings.ToLower(text)
	hits := 0
	for _, words := range mongolianKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits++
			}
		}
	}
	if keywordThreshold > 0 && hits >= keywordThreshold {
		return LangMongolian
	}
	return LangEnglish
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	noiseCharsRe = regexp.MustCompile(`[^\p{L}\p{N}\s.,;:\-()@+#/]`)
)

// CleanText normalizes extracted document text before it is handed to the
// LLM: collapses whitespace runs and strips characters that carry no signal.
// Keeps letters in any script so Cyrillic input survives intact.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = noiseCharsRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
