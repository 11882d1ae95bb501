package types

// EducationEntry is a single educational qualification extracted from a CV.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// WorkHistoryEntry is a single position in a candidate's work history.
type WorkHistoryEntry struct {
	Company          string   `json:"company,omitempty"`
	Role             string   `json:"role,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ParsedCandidate holds the structured information extracted from one résumé.
// It is produced by the CV-analysis stage and never mutated afterwards.
type ParsedCandidate struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	CurrentRole     string   `json:"current_role,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Skills          []string `json:"skills"`

	Education      []EducationEntry `json:"education"`
	Certifications []string         `json:"certifications"`

	WorkHistory []WorkHistoryEntry `json:"work_experience"`

	Languages []string `json:"languages"`
	Summary   string   `json:"summary,omitempty"`

	// RawText is always present; downstream stages re-detect language from it.
	RawText  string `json:"raw_text"`
	FileName string `json:"file_name"`
}
