package drafting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/types"
)

func testJob() *types.JobPosting {
	return &types.JobPosting{
		Title:       "Software Engineer",
		Company:     "Acme LLC",
		Description: "Build backend services.",
	}
}

func staticClient(payload string) llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return payload, nil
	})
}

func failingClient() llm.Client {
	return llm.CompleteFunc(func(ctx context.Context, system, user string, tier llm.ModelTier) (string, error) {
		return "", errors.New("llm down")
	})
}

func newTestDrafter(client llm.Client) *Drafter {
	d := NewDrafter(client, zap.NewNop())
	d.now = func() time.Time { return time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC) }
	return d
}

func TestProcess_DraftCounts(t *testing.T) {
	d := newTestDrafter(staticClient("SUBJECT: Hello\nBODY: World"))

	state := types.NewPipelineState(testJob(), nil)
	state.CandidateScores = []types.CandidateScore{
		{CandidateName: "Alice Strong", OverallScore: 90},
		{CandidateName: "Bob Weak", OverallScore: 40},
	}
	state.ShortlistedCandidates = state.CandidateScores[:1]

	d.Process(context.Background(), state)

	// 1 invitation + 1 rejection + 2 acknowledgments.
	require.Len(t, state.EmailDrafts, 4)

	byType := make(map[string][]types.EmailDraft)
	for _, draft := range state.EmailDrafts {
		byType[draft.EmailType] = append(byType[draft.EmailType], draft)
	}
	require.Len(t, byType[types.EmailInterviewInvitation], 1)
	require.Len(t, byType[types.EmailRejection], 1)
	require.Len(t, byType[types.EmailAcknowledgment], 2)

	assert.Equal(t, "Alice Strong", byType[types.EmailInterviewInvitation][0].RecipientName)
	assert.Equal(t, "Bob Weak", byType[types.EmailRejection][0].RecipientName)
}

func TestDraft_InterviewScheduling(t *testing.T) {
	d := newTestDrafter(staticClient("SUBJECT: Hello\nBODY: World"))

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), "en", types.EmailInterviewInvitation, nil)

	// Seven days after the pinned clock.
	assert.Equal(t, "Monday, March 10, 2025", draft.InterviewDate)
	assert.Equal(t, "[To be scheduled]", draft.InterviewTime)

	rejection := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Bob Weak"},
		testJob(), "en", types.EmailRejection, nil)
	assert.Empty(t, rejection.InterviewDate)
	assert.Empty(t, rejection.InterviewTime)
}

func TestDraft_RecipientEmail(t *testing.T) {
	d := newTestDrafter(staticClient("SUBJECT: s\nBODY: b"))
	addresses := map[string]string{"Alice Strong": "alice@real.example"}

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), "en", types.EmailAcknowledgment, addresses)
	assert.Equal(t, "alice@real.example", draft.RecipientEmail)

	draft = d.Draft(context.Background(), types.CandidateScore{CandidateName: "Bob Weak"},
		testJob(), "en", types.EmailAcknowledgment, addresses)
	assert.Equal(t, "bob.weak@email.com", draft.RecipientEmail)
}

func TestDraft_FallbackTemplateOnFailure(t *testing.T) {
	d := newTestDrafter(failingClient())

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), "en", types.EmailInterviewInvitation, nil)

	assert.Equal(t, "Interview Invitation - Software Engineer Position", draft.Subject)
	assert.Contains(t, draft.Body, "Dear Alice Strong,")
	assert.Contains(t, draft.Body, "Acme LLC")
}

func TestDraft_MongolianFallbackTemplate(t *testing.T) {
	d := newTestDrafter(failingClient())

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Болд Бат"},
		testJob(), "mn", types.EmailRejection, nil)

	assert.Contains(t, draft.Subject, "Өргөдлийн хариу")
	assert.Contains(t, draft.Body, "Эрхэм Болд Бат,")
}

func TestDraft_DefaultSubjectWhenMissing(t *testing.T) {
	d := newTestDrafter(staticClient("BODY: Thanks for applying."))

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), "en", types.EmailAcknowledgment, nil)

	assert.Equal(t, "Regarding Your Application", draft.Subject)
	assert.Equal(t, "Thanks for applying.", draft.Body)
}

func TestDraft_EmptyBodyFallsBack(t *testing.T) {
	d := newTestDrafter(staticClient("SUBJECT: Only a subject, no body"))

	draft := d.Draft(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), "en", types.EmailAcknowledgment, nil)

	assert.Equal(t, "Application Received - Software Engineer Position", draft.Subject)
	assert.NotEmpty(t, draft.Body)
}

func TestDraftFollowUp(t *testing.T) {
	d := newTestDrafter(failingClient())

	draft := d.DraftFollowUp(context.Background(), types.CandidateScore{CandidateName: "Alice Strong"},
		testJob(), nil)

	assert.Equal(t, types.EmailFollowUp, draft.EmailType)
	assert.Contains(t, draft.Subject, "Additional Information Needed")
}

func TestProcess_Guards(t *testing.T) {
	d := newTestDrafter(failingClient())

	state := types.NewPipelineState(testJob(), nil)
	d.Process(context.Background(), state)
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0], "no candidate scores")

	state = types.NewPipelineState(nil, nil)
	state.CandidateScores = []types.CandidateScore{{CandidateName: "Alice"}}
	d.Process(context.Background(), state)
	require.Len(t, state.Errors, 1)
	assert.Contains(t, state.Errors[0], "no job posting")
}
