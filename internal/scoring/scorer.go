// Package scoring implements the candidate scoring stage: deterministic
// sub-scores for skills, experience, and education, combined with one
// LLM-derived cultural-fit analysis into a weighted overall score.
package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/prompts"
	"github.com/jonathan/hr-screener/internal/types"
)

const promptFile = "scoring.json"

// Scorer evaluates parsed candidates against the job posting. Weights are
// snapshotted at construction; changing configuration mid-run does not affect
// an in-flight batch.
type Scorer struct {
	client  llm.Client
	log     *zap.Logger
	weights types.ScoreWeights
}

// NewScorer builds the scoring stage with the given weight split.
func NewScorer(client llm.Client, log *zap.Logger, weights types.ScoreWeights) *Scorer {
	return &Scorer{client: client, log: log, weights: weights}
}

// Process scores every parsed candidate and stores the results on the state,
// sorted descending by overall score. Per-candidate failures degrade to a
// zero score with the cause recorded in the reasoning field.
func (s *Scorer) Process(ctx context.Context, state *types.PipelineState) {
	if state.JobPosting == nil {
		state.AddError("scoring: no job posting available")
		s.log.Warn("scoring skipped, no job posting")
		return
	}
	if len(state.ParsedCandidates) == 0 {
		state.AddError("scoring: no parsed candidates available")
		s.log.Warn("scoring skipped, no parsed candidates")
		return
	}

	for _, candidate := range state.ParsedCandidates {
		score := s.ScoreCandidate(ctx, candidate, state.JobPosting)
		state.CandidateScores = append(state.CandidateScores, score)
	}

	sort.SliceStable(state.CandidateScores, func(i, j int) bool {
		return state.CandidateScores[i].OverallScore > state.CandidateScores[j].OverallScore
	})

	s.log.Info("scoring complete",
		zap.Int("candidates", len(state.CandidateScores)),
		zap.Float64("top_score", state.CandidateScores[0].OverallScore))
}

// ScoreCandidate produces the full scoring breakdown for one candidate. It
// never fails: an LLM outage degrades the cultural-fit component to its
// default and the deterministic sub-scores stand on their own.
func (s *Scorer) ScoreCandidate(ctx context.Context, candidate types.ParsedCandidate, job *types.JobPosting) types.CandidateScore {
	lang := heuristics.DetectLanguage(candidate.RawText, heuristics.KeywordThresholdDefault)

	skillsScore := skillsScore(candidate, job, lang)
	experienceScore := experienceScore(candidate, job)
	educationScore := educationScore(candidate, job)

	fit := s.fitAnalysis(ctx, candidate, job, lang)

	overall := skillsScore*s.weights.Skills +
		experienceScore*s.weights.Experience +
		educationScore*s.weights.Education +
		fit.CulturalFitScore*s.weights.CulturalFit
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}

	return types.CandidateScore{
		CandidateName:    candidate.Name,
		FileName:         candidate.FileName,
		SkillsMatchScore: skillsScore,
		ExperienceScore:  experienceScore,
		EducationScore:   educationScore,
		OverallScore:     overall,
		MatchedSkills:    matchedSkills(candidate.Skills, job),
		MissingSkills:    missingSkills(candidate.Skills, job.RequiredSkills),
		Strengths:        fit.Strengths,
		Weaknesses:       fit.Weaknesses,
		Recommendation:   recommendation(overall, lang, fit.KeyHighlights),
		Reasoning:        fit.Reasoning,
	}
}

// fitResult mirrors the JSON object the fit-analysis prompt requests.
type fitResult struct {
	CulturalFitScore float64  `json:"cultural_fit_score"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Reasoning        string   `json:"reasoning"`
	KeyHighlights    []string `json:"key_highlights"`
	Concerns         []string `json:"concerns"`
}

// defaultFit is the degraded cultural-fit result used when the LLM call or
// its JSON payload fails.
func defaultFit() fitResult {
	return fitResult{
		CulturalFitScore: 70,
		Strengths:        []string{"Unable to analyze"},
		Weaknesses:       []string{"Analysis unavailable"},
		Reasoning:        "LLM analysis failed",
	}
}

func (s *Scorer) fitAnalysis(ctx context.Context, candidate types.ParsedCandidate, job *types.JobPosting, lang string) fitResult {
	system := prompts.Resolve(promptFile, "fit-analysis-system", lang)
	user := prompts.Format(prompts.MustGet(promptFile, "fit-analysis-user-en"), map[string]string{
		"CandidateProfile": candidateProfile(candidate),
		"JobRequirements":  jobRequirements(job),
	})

	response, err := s.client.Complete(ctx, system, user, llm.TierStandard)
	if err != nil {
		s.log.Warn("fit analysis call failed, using default",
			zap.String("candidate", candidate.Name), zap.Error(err))
		return defaultFit()
	}

	var fit fitResult
	if err := llm.DecodeFirstObject(response, &fit); err != nil {
		s.log.Warn("fit analysis payload unparsable, using default",
			zap.String("candidate", candidate.Name), zap.Error(err))
		return defaultFit()
	}

	if fit.CulturalFitScore < 0 {
		fit.CulturalFitScore = 0
	}
	if fit.CulturalFitScore > 100 {
		fit.CulturalFitScore = 100
	}
	return fit
}

// candidateProfile renders the compact candidate summary the fit prompt sees.
func candidateProfile(c types.ParsedCandidate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidate: %s\n", c.Name)
	fmt.Fprintf(&sb, "Current Role: %s\n", orNotSpecified(c.CurrentRole))
	if c.ExperienceYears > 0 {
		fmt.Fprintf(&sb, "Experience: %d years\n", c.ExperienceYears)
	} else {
		sb.WriteString("Experience: Not specified\n")
	}
	fmt.Fprintf(&sb, "Skills: %s\n", orNotSpecified(strings.Join(c.Skills, ", ")))
	if len(c.Education) > 0 {
		var entries []string
		for _, e := range c.Education {
			entries = append(entries, strings.TrimSpace(strings.Join([]string{e.Degree, e.Institution, e.Year}, " ")))
		}
		fmt.Fprintf(&sb, "Education: %s\n", strings.Join(entries, "; "))
	} else {
		sb.WriteString("Education: Not specified\n")
	}
	fmt.Fprintf(&sb, "Summary: %s\n", orNotSpecified(c.Summary))
	return sb.String()
}

func jobRequirements(j *types.JobPosting) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job Title: %s\n", j.Title)
	fmt.Fprintf(&sb, "Company: %s\n", j.Company)
	fmt.Fprintf(&sb, "Required Skills: %s\n", orNotSpecified(strings.Join(j.RequiredSkills, ", ")))
	fmt.Fprintf(&sb, "Preferred Skills: %s\n", orNotSpecified(strings.Join(j.PreferredSkills, ", ")))
	if j.MinExperience > 0 {
		fmt.Fprintf(&sb, "Min Experience: %d years\n", j.MinExperience)
	} else {
		sb.WriteString("Min Experience: Not specified\n")
	}
	fmt.Fprintf(&sb, "Education Requirements: %s\n", orNotSpecified(strings.Join(j.EducationRequirements, ", ")))
	fmt.Fprintf(&sb, "Job Description: %s\n", truncate(j.Description, 500))
	return sb.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

// truncate caps s at n bytes without splitting a multibyte rune, so Cyrillic
// descriptions stay valid UTF-8 in the prompt.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
