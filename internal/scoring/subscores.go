package scoring

import (
	"strings"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/types"
)

// skillsScore is the required-skill match percentage plus a preferred-skill
// bonus (up to +30) and a small bilingual bonus, capped at 100. A posting
// with no required skills is a vacuous match.
func skillsScore(candidate types.ParsedCandidate, job *types.JobPosting, lang string) float64 {
	if len(job.RequiredSkills) == 0 {
		return 100
	}

	score := heuristics.SkillMatchPercentage(candidate.Skills, job.RequiredSkills)

	if len(job.PreferredSkills) > 0 {
		score += heuristics.SkillMatchPercentage(candidate.Skills, job.PreferredSkills) * 0.3
	}

	if len(candidate.Languages) >= 2 {
		score += 5
	}
	if listsOppositeLanguage(lang, candidate.Languages) {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// listsOppositeLanguage reports whether a CV written in one of the two
// supported languages also claims proficiency in the other.
func listsOppositeLanguage(lang string, languages []string) bool {
	var wanted []string
	switch lang {
	case heuristics.LangMongolian:
		wanted = []string{"english", "англи"}
	default:
		wanted = []string{"mongolian", "монгол"}
	}
	for _, l := range languages {
		lower := strings.ToLower(l)
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				return true
			}
		}
	}
	return false
}

// experienceScore rewards meeting the posting's minimum with a per-extra-year
// bonus (2 points per year, up to +20, not clamped here so the surplus can
// lift the weighted overall) and ramps down below the minimum.
func experienceScore(candidate types.ParsedCandidate, job *types.JobPosting) float64 {
	if job.MinExperience <= 0 {
		return 100
	}

	years := candidate.ExperienceYears
	if years >= job.MinExperience {
		bonus := float64((years - job.MinExperience) * 2)
		if bonus > 20 {
			bonus = 20
		}
		return 100 + bonus
	}

	ratio := float64(years) / float64(job.MinExperience)
	var score float64
	switch {
	case ratio >= 0.8:
		score = 80 + (ratio-0.8)/0.2*20
	case ratio >= 0.5:
		score = 50 + (ratio-0.5)/0.3*30
	default:
		score = ratio * 100
	}
	score += relevanceBonus(candidate, job)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

var techIndustryKeywords = []string{"software", "developer", "engineer", "programmer", "data", "it"}

// relevanceBonus grants a small credit when the candidate's prior role titles
// overlap the posting's title, softening the below-minimum experience ramp.
func relevanceBonus(candidate types.ParsedCandidate, job *types.JobPosting) float64 {
	titleWords := significantWords(job.Title)
	if len(titleWords) == 0 || len(candidate.WorkHistory) == 0 {
		return 0
	}

	var bonus float64
	for _, entry := range candidate.WorkHistory {
		role := strings.ToLower(entry.Role)
		for _, word := range titleWords {
			if strings.Contains(role, word) {
				bonus += 5
				break
			}
		}
		if bonus > 0 {
			break
		}
	}

	jobTitle := strings.ToLower(job.Title)
	for _, kw := range techIndustryKeywords {
		if !strings.Contains(jobTitle, kw) {
			continue
		}
		for _, entry := range candidate.WorkHistory {
			if strings.Contains(strings.ToLower(entry.Role), kw) {
				bonus += 3
				break
			}
		}
		break
	}
	return bonus
}

func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len(w) > 3 {
			out = append(out, w)
		}
	}
	return out
}

// Degree ladder, highest level found wins.
var degreeLadder = []struct {
	score    float64
	keywords []string
}{
	{100, []string{"phd", "ph.d", "doctorate", "доктор"}},
	{95, []string{"master", "msc", "mba", "магистр"}},
	{85, []string{"bachelor", "bsc", "b.a", "бакалавр"}},
	{75, []string{"diploma", "диплом"}},
	{70, []string{"college", "коллеж"}},
}

var fieldRelevance = []struct {
	bonus      float64
	fieldTerms []string
	titleTerms []string
}{
	{10, []string{"computer science", "software", "information technology", "программ"}, techIndustryKeywords},
	{10, []string{"business", "management", "бизнес", "менежмент"}, []string{"manager", "management", "lead", "director"}},
	{8, []string{"engineering", "mathematics", "physics", "инженер"}, []string{"engineer"}},
}

// educationScore ladders the candidate's highest degree level and adds a
// field-relevance bonus when the field of study matches the role family.
// Missing education records with an explicit requirement score 40.
func educationScore(candidate types.ParsedCandidate, job *types.JobPosting) float64 {
	if len(job.EducationRequirements) == 0 {
		return 100
	}
	if len(candidate.Education) == 0 {
		return 40
	}

	var parts []string
	for _, e := range candidate.Education {
		parts = append(parts, e.Degree, e.Institution, e.Year)
	}
	educationText := strings.ToLower(strings.Join(parts, " "))

	score := 50.0
	for _, level := range degreeLadder {
		if containsAnyOf(educationText, level.keywords) {
			score = level.score
			break
		}
	}

	jobTitle := strings.ToLower(job.Title)
	for _, fr := range fieldRelevance {
		if containsAnyOf(educationText, fr.fieldTerms) && containsAnyOf(jobTitle, fr.titleTerms) {
			score += fr.bonus
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

func containsAnyOf(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// matchedSkills returns the posting skills (required and preferred) the
// candidate covers, using case-insensitive exact-or-substring matching.
func matchedSkills(candidateSkills []string, job *types.JobPosting) []string {
	var matched []string
	seen := make(map[string]bool)
	for _, token := range append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...) {
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		if skillCovered(candidateSkills, token) {
			matched = append(matched, token)
		}
	}
	return matched
}

// missingSkills returns the required skills the candidate does not cover.
func missingSkills(candidateSkills, requiredSkills []string) []string {
	var missing []string
	for _, token := range requiredSkills {
		if !skillCovered(candidateSkills, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// skillCovered treats a skill as covered when a candidate skill equals,
// contains, or is contained by the posting's token.
func skillCovered(candidateSkills []string, token string) bool {
	lowerToken := strings.ToLower(token)
	for _, skill := range candidateSkills {
		lowerSkill := strings.ToLower(skill)
		if lowerSkill == lowerToken ||
			strings.Contains(lowerSkill, lowerToken) ||
			strings.Contains(lowerToken, lowerSkill) {
			return true
		}
	}
	return false
}

type recommendationBand struct {
	min float64
	en  string
	mn  string
}

var recommendationBands = []recommendationBand{
	{85, "Highly Recommended - Strong candidate with excellent fit",
		"Маш сайн - Өндөр нийцтэй, онцгой тохиромжтой нэр дэвшигч"},
	{70, "Recommended - Good candidate with solid qualifications",
		"Санал болгож байна - Сайн ур чадвартай нэр дэвшигч"},
	{60, "Consider - Candidate has potential but may need development",
		"Авч үзэх - Боломжийн ч хөгжүүлэлт шаардлагатай"},
	{50, "Weak Candidate - Significant gaps in requirements",
		"Сул нэр дэвшигч - Шаардлагаас нэлээд зөрүүтэй"},
	{0, "Not Recommended - Poor fit for the role",
		"Санал болгохгүй - Энэ ажилд тохирохгүй"},
}

// recommendation renders the score band in the CV's own language, optionally
// appending up to two LLM-derived highlights.
func recommendation(overall float64, lang string, highlights []string) string {
	var text string
	for _, band := range recommendationBands {
		if overall >= band.min {
			if lang == heuristics.LangMongolian {
				text = band.mn
			} else {
				text = band.en
			}
			break
		}
	}

	if len(highlights) > 2 {
		highlights = highlights[:2]
	}
	if len(highlights) > 0 {
		label := "Key highlights"
		if lang == heuristics.LangMongolian {
			label = "Онцлох"
		}
		text += ". " + label + ": " + strings.Join(highlights, "; ")
	}
	return text
}
