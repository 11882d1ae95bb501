package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage_CyrillicRatio(t *testing.T) {
	assert.Equal(t, LangMongolian, DetectLanguage("Намайг Болд гэдэг. Би программист хүн.", KeywordThresholdParsing))
	assert.Equal(t, LangEnglish, DetectLanguage("My name is John Smith, software engineer.", KeywordThresholdParsing))
}

func TestDetectLanguage_EmptyAndNonAlphabetic(t *testing.T) {
	assert.Equal(t, LangEnglish, DetectLanguage("", KeywordThresholdParsing))
	assert.Equal(t, LangEnglish, DetectLanguage("12345 +++ ---", KeywordThresholdParsing))
}

func TestDetectLanguage_KeywordThreshold(t *testing.T) {
	// Mostly Latin text, so the Cyrillic ratio stays under 0.3, but several
	// Mongolian section keywords are present.
	text := "Curriculum vitae of a senior software engineer with many years " +
		"of professional experience in backend systems and databases. " +
		"боловсрол туршлага ур чадвар"

	assert.Equal(t, LangMongolian, DetectLanguage(text, KeywordThresholdDefault))
	// A zero threshold disables keyword detection entirely.
	assert.Equal(t, LangEnglish, DetectLanguage(text, 0))
}

func TestDetectLanguage_Deterministic(t *testing.T) {
	text := "Software engineer туршлага боловсрол"
	first := DetectLanguage(text, KeywordThresholdDefault)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectLanguage(text, KeywordThresholdDefault))
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hello, world", CleanText("Hello,   world!!!"))
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "Би программист", CleanText("Би   программист★"))
	assert.Equal(t, "a@b.com +976-99112233", CleanText("a@b.com\n\n+976-99112233"))
}
