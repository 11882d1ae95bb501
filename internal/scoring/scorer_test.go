package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/types"
)

func testJob() *types.JobPosting {
	return &types.JobPosting{
		Title:                 "Software Engineer",
		Company:               "Acme LLC",
		Description:           "Build backend services.",
		RequiredSkills:        []string{"Python", "SQL"},
		PreferredSkills:       []string{"AWS"},
		MinExperience:         3,
		EducationRequirements: []string{"Bachelor's degree"},
	}
}

func strongCandidate() types.ParsedCandidate {
	return types.ParsedCandidate{
		Name:            "Alice Strong",
		FileName:        "alice.txt",
		Skills:          []string{"Python", "SQL", "AWS"},
		ExperienceYears: 5,
		Education:       []types.EducationEntry{{Degree: "Bachelor of Computer Science", Institution: "NUM", Year: "2018"}},
		RawText:         "Alice Strong, software engineer with 5 years of experience.",
	}
}

func weakCandidate() types.ParsedCandidate {
	return types.ParsedCandidate{
		Name:            "Bob Weak",
		FileName:        "bob.txt",
		Skills:          []string{"Java"},
		ExperienceYears: 1,
		RawText:         "Bob Weak, junior developer.",
	}
}

func failingClient() llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return "", errors.New("llm down")
	})
}

func fitClient(payload string) llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return payload, nil
	})
}

func newTestScorer(client llm.Client) *Scorer {
	return NewScorer(client, zap.NewNop(), types.DefaultScoreWeights())
}

func TestProcess_SortsDescending(t *testing.T) {
	s := newTestScorer(failingClient())
	state := types.NewPipelineState(testJob(), nil)
	state.ParsedCandidates = []types.ParsedCandidate{weakCandidate(), strongCandidate()}

	s.Process(context.Background(), state)

	require.Len(t, state.CandidateScores, 2)
	assert.Equal(t, "Alice Strong", state.CandidateScores[0].CandidateName)
	assert.Equal(t, "Bob Weak", state.CandidateScores[1].CandidateName)
	assert.Greater(t, state.CandidateScores[0].OverallScore, state.CandidateScores[1].OverallScore)
}

func TestProcess_Guards(t *testing.T) {
	s := newTestScorer(failingClient())

	state := types.NewPipelineState(nil, nil)
	s.Process(context.Background(), state)
	assert.Empty(t, state.CandidateScores)
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0], "no job posting")

	state = types.NewPipelineState(testJob(), nil)
	s.Process(context.Background(), state)
	assert.Empty(t, state.CandidateScores)
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0], "no parsed candidates")
}

func TestScoreCandidate_LLMFailureUsesDefaultFit(t *testing.T) {
	s := newTestScorer(failingClient())

	score := s.ScoreCandidate(context.Background(), strongCandidate(), testJob())

	assert.Equal(t, []string{"Unable to analyze"}, score.Strengths)
	assert.Equal(t, []string{"Analysis unavailable"}, score.Weaknesses)
	assert.Equal(t, "LLM analysis failed", score.Reasoning)

	// Deterministic sub-scores are unaffected by the outage.
	assert.Equal(t, 100.0, score.SkillsMatchScore)
	assert.Equal(t, 104.0, score.ExperienceScore) // 100 + 2 per extra year
	assert.Equal(t, 95.0, score.EducationScore)   // bachelor 85 + field bonus 10
	assert.InDelta(t, 97.2, score.OverallScore, 0.01)
}

func TestScoreCandidate_UsesFitPayload(t *testing.T) {
	payload := `{
		"cultural_fit_score": 90,
		"strengths": ["Strong communicator"],
		"weaknesses": ["Limited cloud exposure"],
		"reasoning": "Great match for the team.",
		"key_highlights": ["Led a migration", "Mentored juniors", "Third highlight"]
	}`
	s := newTestScorer(fitClient(payload))

	score := s.ScoreCandidate(context.Background(), strongCandidate(), testJob())

	assert.Equal(t, []string{"Strong communicator"}, score.Strengths)
	assert.Equal(t, "Great match for the team.", score.Reasoning)
	assert.Contains(t, score.Recommendation, "Highly Recommended")
	assert.Contains(t, score.Recommendation, "Led a migration")
	assert.NotContains(t, score.Recommendation, "Third highlight")
}

func TestScoreCandidate_OverallClamped(t *testing.T) {
	s := newTestScorer(fitClient(`{"cultural_fit_score": 100, "reasoning": "r"}`))
	job := &types.JobPosting{Title: "Engineer", Description: "d"} // no requirements at all

	score := s.ScoreCandidate(context.Background(), strongCandidate(), job)
	assert.LessOrEqual(t, score.OverallScore, 100.0)
	assert.GreaterOrEqual(t, score.OverallScore, 0.0)
}

func TestScoreCandidate_MatchedAndMissingSkills(t *testing.T) {
	s := newTestScorer(failingClient())

	score := s.ScoreCandidate(context.Background(), weakCandidate(), testJob())
	assert.Empty(t, score.MatchedSkills)
	assert.ElementsMatch(t, []string{"Python", "SQL"}, score.MissingSkills)

	score = s.ScoreCandidate(context.Background(), strongCandidate(), testJob())
	assert.ElementsMatch(t, []string{"Python", "SQL", "AWS"}, score.MatchedSkills)
	assert.Empty(t, score.MissingSkills)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 500))

	text := strings.Repeat("Монгол улсын програм хангамжийн инженер. ", 30)
	out := truncate(text, 500)
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), 503)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestScoreCandidate_MongolianRecommendation(t *testing.T) {
	s := newTestScorer(failingClient())
	candidate := strongCandidate()
	candidate.RawText = `Болд Батаа
Программ хангамжийн инженер, 5 жилийн туршлагатай.
Боловсрол: Бакалавр, МУИС. Ур чадвар: Python, SQL.`

	score := s.ScoreCandidate(context.Background(), candidate, testJob())
	assert.Contains(t, score.Recommendation, "нэр дэвшигч")
}
