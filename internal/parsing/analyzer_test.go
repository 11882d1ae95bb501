package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/types"
)

const sampleCV = `John Smith
Email: john.smith@example.com
Phone: +1-555-123-4567
Address: Ulaanbaatar, Mongolia

5 years of experience in backend development.

Skills: Python, PostgreSQL, Team Leadership

Education
Bachelor of Science in Computer Science, 2015
`

func stubAnalyzer(client llm.Client, text string, extractErr error) *Analyzer {
	a := NewAnalyzer(client, zap.NewNop())
	a.extract = func(path string) (string, error) {
		if extractErr != nil {
			return "", extractErr
		}
		return text, nil
	}
	return a
}

func llmResponse(payload string) llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return payload, nil
	})
}

func failingLLM() llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return "", errors.New("llm down")
	})
}

func TestParseFile_MergesHeuristicsAndLLM(t *testing.T) {
	payload := `{
		"name": "J. Smith",
		"email": "other@example.com",
		"current_role": "Backend Engineer",
		"experience_years": 3,
		"skills": ["Python", "Kubernetes"],
		"languages": ["English", "Mongolian"],
		"summary": "Experienced backend developer.",
		"work_experience": [{"company": "Acme", "role": "Engineer", "duration": "2019-2024"}]
	}`
	a := stubAnalyzer(llmResponse(payload), sampleCV, nil)

	candidate, err := a.ParseFile(context.Background(), "/cvs/john.txt")
	require.NoError(t, err)

	// Heuristic values win for contact fields and experience.
	assert.Equal(t, "John Smith", candidate.Name)
	assert.Equal(t, "john.smith@example.com", candidate.Email)
	assert.Equal(t, "+1-555-123-4567", candidate.Phone)
	assert.Equal(t, "Ulaanbaatar, Mongolia", candidate.Location)
	assert.Equal(t, 5, candidate.ExperienceYears)

	// The LLM is authoritative for narrative fields.
	assert.Equal(t, "Backend Engineer", candidate.CurrentRole)
	assert.Equal(t, "Experienced backend developer.", candidate.Summary)
	assert.Equal(t, []string{"English", "Mongolian"}, candidate.Languages)
	require.Len(t, candidate.WorkHistory, 1)
	assert.Equal(t, "Acme", candidate.WorkHistory[0].Company)

	// Skills are the union of both sources.
	assert.Contains(t, candidate.Skills, "Python")
	assert.Contains(t, candidate.Skills, "Kubernetes")
	assert.Contains(t, candidate.Skills, "Team Leadership")

	assert.Equal(t, sampleCV, candidate.RawText)
	assert.Equal(t, "john.txt", candidate.FileName)
}

func TestParseFile_LLMFailureKeepsHeuristics(t *testing.T) {
	a := stubAnalyzer(failingLLM(), sampleCV, nil)

	candidate, err := a.ParseFile(context.Background(), "/cvs/john.txt")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", candidate.Name)
	assert.Equal(t, "john.smith@example.com", candidate.Email)
	assert.Contains(t, candidate.Skills, "Python")
	assert.Empty(t, candidate.CurrentRole)
	assert.Empty(t, candidate.Summary)
}

func TestParseFile_UnparsableLLMResponse(t *testing.T) {
	a := stubAnalyzer(llmResponse("I could not parse this CV, sorry."), sampleCV, nil)

	candidate, err := a.ParseFile(context.Background(), "/cvs/john.txt")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", candidate.Name)
	assert.Empty(t, candidate.CurrentRole)
}

func TestParseFile_SchemaRejectedPayload(t *testing.T) {
	// skills as a plain string fails the extraction schema; the LLM
	// contribution is dropped entirely.
	a := stubAnalyzer(llmResponse(`{"skills": "Python, SQL", "current_role": "Engineer"}`), sampleCV, nil)

	candidate, err := a.ParseFile(context.Background(), "/cvs/john.txt")
	require.NoError(t, err)
	assert.Empty(t, candidate.CurrentRole)
	assert.Contains(t, candidate.Skills, "Python") // heuristic result survives
}

func TestProcess_PlaceholderOnExtractionFailure(t *testing.T) {
	a := stubAnalyzer(failingLLM(), "", errors.New("corrupt file"))

	state := types.NewPipelineState(&types.JobPosting{Title: "Engineer", Description: "d"}, []string{"/cvs/broken.pdf"})
	a.Process(context.Background(), state)

	require.Len(t, state.ParsedCandidates, 1)
	candidate := state.ParsedCandidates[0]
	assert.Equal(t, "Unknown Candidate", candidate.Name)
	assert.Contains(t, candidate.RawText, "corrupt file")
	assert.Equal(t, "broken.pdf", candidate.FileName)
	assert.NotEmpty(t, state.Errors)
}

func TestProcess_OrderPreserving(t *testing.T) {
	texts := map[string]string{
		"/cvs/a.txt": "Alice Jones\nalice@example.com\nSkills: Python",
		"/cvs/b.txt": "Bob Brown\nbob@example.com\nSkills: Java",
	}
	a := NewAnalyzer(failingLLM(), zap.NewNop())
	a.extract = func(path string) (string, error) { return texts[path], nil }

	state := types.NewPipelineState(&types.JobPosting{Title: "Engineer", Description: "d"}, []string{"/cvs/a.txt", "/cvs/b.txt"})
	a.Process(context.Background(), state)

	require.Len(t, state.ParsedCandidates, 2)
	assert.Equal(t, "Alice Jones", state.ParsedCandidates[0].Name)
	assert.Equal(t, "Bob Brown", state.ParsedCandidates[1].Name)
}

func TestProcess_NoFiles(t *testing.T) {
	a := stubAnalyzer(failingLLM(), "", nil)
	state := types.NewPipelineState(&types.JobPosting{Title: "Engineer", Description: "d"}, nil)

	a.Process(context.Background(), state)

	assert.Empty(t, state.ParsedCandidates)
	assert.NotEmpty(t, state.Errors)
}
