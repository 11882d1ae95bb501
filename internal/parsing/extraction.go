package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/hr-screener/internal/types"
)

// cvExtraction mirrors the JSON object the extraction prompt asks for.
// Models occasionally emit numbers where strings are expected (years,
// durations), so the lenient flexString type absorbs both.
type cvExtraction struct {
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	Location        string               `json:"location"`
	CurrentRole     string               `json:"current_role"`
	ExperienceYears float64              `json:"experience_years"`
	Skills          []string             `json:"skills"`
	Education       []educationPayload   `json:"education"`
	Certifications  []string             `json:"certifications"`
	WorkExperience  []workHistoryPayload `json:"work_experience"`
	Languages       []string             `json:"languages"`
	Summary         string               `json:"summary"`
}

type educationPayload struct {
	Degree      string     `json:"degree"`
	Institution string     `json:"institution"`
	Year        flexString `json:"year"`
}

type workHistoryPayload struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// flexString accepts a JSON string or number and stores it as a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// mergeExtraction folds the LLM extraction into the heuristic candidate.
// Contact details, experience years, and education come with regex-grade
// precision from the heuristics, so those win whenever present; the LLM is
// authoritative for the narrative fields it alone can infer, and skills are
// the union of both sources.
func mergeExtraction(candidate *types.ParsedCandidate, extraction *cvExtraction) {
	if candidate.Name == "" {
		candidate.Name = extraction.Name
	}
	if candidate.Email == "" {
		candidate.Email = extraction.Email
	}
	if candidate.Phone == "" {
		candidate.Phone = extraction.Phone
	}
	if candidate.Location == "" {
		candidate.Location = extraction.Location
	}
	if candidate.ExperienceYears == 0 && extraction.ExperienceYears > 0 {
		candidate.ExperienceYears = int(extraction.ExperienceYears)
	}
	if len(candidate.Education) == 0 {
		for _, e := range extraction.Education {
			candidate.Education = append(candidate.Education, types.EducationEntry{
				Degree:      e.Degree,
				Institution: e.Institution,
				Year:        string(e.Year),
			})
		}
	}

	candidate.Skills = unionSkills(candidate.Skills, extraction.Skills)

	candidate.CurrentRole = extraction.CurrentRole
	candidate.Certifications = extraction.Certifications
	candidate.Languages = extraction.Languages
	candidate.Summary = extraction.Summary
	for _, w := range extraction.WorkExperience {
		candidate.WorkHistory = append(candidate.WorkHistory, types.WorkHistoryEntry{
			Company:          w.Company,
			Role:             w.Role,
			Duration:         w.Duration,
			Responsibilities: w.Responsibilities,
		})
	}
}

// unionSkills merges two skill lists case-insensitively, keeping first-seen
// spelling and order.
func unionSkills(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, skill := range list {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out
}
