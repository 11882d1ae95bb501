package heuristics

import (
	"regexp"
	"strconv"
	"strings"
)

// maxPlausibleYears caps experience extraction; larger figures are almost
// always dates or phone fragments.
const maxPlausibleYears = 50

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*(?:of\s*)?(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*\+?\s*yrs?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\s*\+?\s*years?\s*in\b`),
	// Mongolian: "5 жилийн туршлага" / "туршлага 5 жил"
	regexp.MustCompile(`(\d+)\s*жил(?:ийн)?\s*(?:ажлын\s*)?туршлага`),
	regexp.MustCompile(`туршлага\s*(\d+)\s*жил`),
}

// ExtractYearsOfExperience returns the maximum plausible experience figure
// mentioned in the text, or 0 when none is found.
func ExtractYearsOfExperience(text string) int {
	lower := strings.ToLower(text)
	maxYears := 0
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if years > maxYears && years <= maxPlausibleYears {
				maxYears = years
			}
		}
	}
	return maxYears
}
