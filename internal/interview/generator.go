// Package interview implements the interview-question-generation stage. For
// every shortlisted candidate it requests technical, behavioral,
// role-specific, and general questions from the LLM; a category whose call or
// payload fails gets one static fallback question so no candidate ever ends
// up with an empty category.
package interview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/prompts"
	"github.com/jonathan/hr-screener/internal/schemas"
	"github.com/jonathan/hr-screener/internal/types"
)

const (
	promptFile = "interview.json"

	// maxConcurrentCandidates bounds the per-candidate fan-out. Question sets
	// are keyed by candidate name, so completion order does not matter.
	maxConcurrentCandidates = 3
)

var categories = []string{
	types.CategoryTechnical,
	types.CategoryBehavioral,
	types.CategoryRoleSpecific,
	types.CategoryGeneral,
}

// Generator produces interview question sets for shortlisted candidates.
type Generator struct {
	client llm.Client
	log    *zap.Logger
}

// NewGenerator builds the question-generation stage.
func NewGenerator(client llm.Client, log *zap.Logger) *Generator {
	return &Generator{client: client, log: log}
}

// Process generates a question set per shortlisted candidate and stores them
// on the state keyed by candidate name. Candidates are processed in parallel;
// the interview language follows the job posting, not the individual CV.
func (g *Generator) Process(ctx context.Context, state *types.PipelineState) {
	if len(state.ShortlistedCandidates) == 0 {
		state.AddError("interview questions: no shortlisted candidates available")
		g.log.Warn("question generation skipped, empty shortlist")
		return
	}
	if state.JobPosting == nil {
		state.AddError("interview questions: no job posting available")
		g.log.Warn("question generation skipped, no job posting")
		return
	}

	lang := heuristics.DetectLanguage(state.JobPosting.Text(), heuristics.KeywordThresholdDefault)

	sets := make([]types.CandidateQuestionSet, len(state.ShortlistedCandidates))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentCandidates)
	for i, candidate := range state.ShortlistedCandidates {
		i, candidate := i, candidate
		group.Go(func() error {
			sets[i] = g.GenerateForCandidate(gctx, candidate, state.JobPosting, lang)
			return nil
		})
	}
	_ = group.Wait() // workers never return errors, they degrade per category

	if state.InterviewQuestions == nil {
		state.InterviewQuestions = make(map[string]types.CandidateQuestionSet, len(sets))
	}
	total := 0
	for _, set := range sets {
		state.InterviewQuestions[set.CandidateName] = set
		total += set.TotalQuestions
	}

	g.log.Info("question generation complete",
		zap.Int("candidates", len(sets)),
		zap.Int("total_questions", total))
}

// GenerateForCandidate runs the four category calls for one candidate.
func (g *Generator) GenerateForCandidate(ctx context.Context, candidate types.CandidateScore, job *types.JobPosting, lang string) types.CandidateQuestionSet {
	byCategory := make(map[string][]types.InterviewQuestion, len(categories))
	for _, category := range categories {
		questions, err := g.generateCategory(ctx, candidate, job, lang, category)
		if err != nil || len(questions) == 0 {
			if err != nil {
				g.log.Warn("question generation degraded to fallback",
					zap.String("candidate", candidate.CandidateName),
					zap.String("category", category),
					zap.Error(err))
			}
			questions = []types.InterviewQuestion{FallbackQuestion(category)}
		}
		byCategory[category] = questions
	}

	return types.NewCandidateQuestionSet(
		candidate.CandidateName,
		job.Title,
		byCategory[types.CategoryTechnical],
		byCategory[types.CategoryBehavioral],
		byCategory[types.CategoryRoleSpecific],
		byCategory[types.CategoryGeneral],
	)
}

// questionPayload is one entry of the JSON array the prompts request.
type questionPayload struct {
	Question             string   `json:"question"`
	Category             string   `json:"category"`
	Difficulty           string   `json:"difficulty"`
	ExpectedAnswerPoints []string `json:"expected_answer_points"`
}

func (g *Generator) generateCategory(ctx context.Context, candidate types.CandidateScore, job *types.JobPosting, lang, category string) ([]types.InterviewQuestion, error) {
	system := prompts.Resolve(promptFile, category+"-system", lang)
	user := prompts.Format(prompts.MustGet(promptFile, "question-user-en"), map[string]string{
		"CandidateProfile": candidateProfile(candidate),
		"JobDetails":       jobDetails(job),
		"Category":         category,
	})

	response, err := g.client.Complete(ctx, system, user, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var payloads []questionPayload
	if err := llm.DecodeFirstArray(response, &payloads); err != nil {
		return nil, err
	}

	// Entries without a question text fail the schema and are dropped.
	var questions []types.InterviewQuestion
	for _, p := range payloads {
		doc := fmt.Sprintf(`{"question":%q}`, p.Question)
		if schemas.Validate(schemas.InterviewQuestion, []byte(doc)) != nil {
			continue
		}
		if p.Category == "" {
			p.Category = category
		}
		if p.Difficulty == "" {
			p.Difficulty = types.DifficultyMedium
		}
		questions = append(questions, types.InterviewQuestion{
			Question:             p.Question,
			Category:             p.Category,
			Difficulty:           p.Difficulty,
			ExpectedAnswerPoints: p.ExpectedAnswerPoints,
		})
	}
	return questions, nil
}

func candidateProfile(c types.CandidateScore) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidate: %s\n", c.CandidateName)
	fmt.Fprintf(&sb, "Overall Score: %.1f/100\n", c.OverallScore)
	if len(c.MatchedSkills) > 0 {
		fmt.Fprintf(&sb, "Matched Skills: %s\n", strings.Join(c.MatchedSkills, ", "))
	}
	if len(c.MissingSkills) > 0 {
		fmt.Fprintf(&sb, "Missing Skills: %s\n", strings.Join(c.MissingSkills, ", "))
	}
	if len(c.Strengths) > 0 {
		fmt.Fprintf(&sb, "Strengths: %s\n", strings.Join(c.Strengths, "; "))
	}
	if len(c.Weaknesses) > 0 {
		fmt.Fprintf(&sb, "Weaknesses: %s\n", strings.Join(c.Weaknesses, "; "))
	}
	return sb.String()
}

func jobDetails(j *types.JobPosting) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", j.Title)
	fmt.Fprintf(&sb, "Company: %s\n", j.Company)
	if len(j.RequiredSkills) > 0 {
		fmt.Fprintf(&sb, "Required Skills: %s\n", strings.Join(j.RequiredSkills, ", "))
	}
	if len(j.Responsibilities) > 0 {
		fmt.Fprintf(&sb, "Responsibilities: %s\n", strings.Join(j.Responsibilities, "; "))
	}
	fmt.Fprintf(&sb, "Description: %s\n", j.Description)
	return sb.String()
}
