package types

// CandidateScore is the scoring breakdown for one candidate against the job
// posting. OverallScore is clamped to [0,100]; ExperienceScore may exceed 100
// when the candidate exceeds the posting's minimum, so the surplus can lift
// the weighted overall. Produced by the scoring stage and read-only
// afterwards.
type CandidateScore struct {
	CandidateName string `json:"candidate_name"`
	FileName      string `json:"file_name"`

	SkillsMatchScore float64 `json:"skills_match_score"`
	ExperienceScore  float64 `json:"experience_score"`
	EducationScore   float64 `json:"education_score"`
	OverallScore     float64 `json:"overall_score"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`

	Recommendation string `json:"recommendation"`
	Reasoning      string `json:"reasoning"`
}

// ScoreWeights is the weighted combination applied to the component scores.
// The four weights must sum to 1.0.
type ScoreWeights struct {
	Skills      float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience  float64 `json:"experience" validate:"gte=0,lte=1"`
	Education   float64 `json:"education" validate:"gte=0,lte=1"`
	CulturalFit float64 `json:"cultural_fit" validate:"gte=0,lte=1"`
}

// DefaultScoreWeights returns the standard 40/30/20/10 split.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Skills:      0.4,
		Experience:  0.3,
		Education:   0.2,
		CulturalFit: 0.1,
	}
}

// Sum returns the total of all four weights.
func (w ScoreWeights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.CulturalFit
}
