// Package drafting implements the email-drafting stage: an interview
// invitation for every shortlisted candidate, a rejection for everyone else,
// and an acknowledgment for all applicants. Drafts that cannot be generated
// fall back to fixed bilingual templates.
package drafting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/prompts"
	"github.com/jonathan/hr-screener/internal/types"
)

const (
	promptFile = "email.json"

	interviewLeadDays = 7
	interviewDateFmt  = "Monday, January 2, 2006"
)

// Drafter produces candidate email drafts.
type Drafter struct {
	client llm.Client
	log    *zap.Logger
	now    func() time.Time
}

// NewDrafter builds the email-drafting stage.
func NewDrafter(client llm.Client, log *zap.Logger) *Drafter {
	return &Drafter{client: client, log: log, now: time.Now}
}

// Process drafts emails for every scored candidate: invitation for the
// shortlisted, rejection for the rest, acknowledgment for all. The email
// language follows the job posting.
func (d *Drafter) Process(ctx context.Context, state *types.PipelineState) {
	if len(state.CandidateScores) == 0 {
		state.AddError("email drafting: no candidate scores available")
		d.log.Warn("email drafting skipped, no scores")
		return
	}
	if state.JobPosting == nil {
		state.AddError("email drafting: no job posting available")
		d.log.Warn("email drafting skipped, no job posting")
		return
	}

	lang := heuristics.DetectLanguage(state.JobPosting.Text(), heuristics.KeywordThresholdDefault)
	addresses := harvestedAddresses(state.ParsedCandidates)

	shortlisted := make(map[string]bool, len(state.ShortlistedCandidates))
	for _, c := range state.ShortlistedCandidates {
		shortlisted[c.CandidateName] = true
	}

	for _, candidate := range state.ShortlistedCandidates {
		draft := d.Draft(ctx, candidate, state.JobPosting, lang, types.EmailInterviewInvitation, addresses)
		state.EmailDrafts = append(state.EmailDrafts, draft)
	}
	for _, candidate := range state.CandidateScores {
		if shortlisted[candidate.CandidateName] {
			continue
		}
		draft := d.Draft(ctx, candidate, state.JobPosting, lang, types.EmailRejection, addresses)
		state.EmailDrafts = append(state.EmailDrafts, draft)
	}
	for _, candidate := range state.CandidateScores {
		draft := d.Draft(ctx, candidate, state.JobPosting, lang, types.EmailAcknowledgment, addresses)
		state.EmailDrafts = append(state.EmailDrafts, draft)
	}

	d.log.Info("email drafting complete",
		zap.Int("drafts", len(state.EmailDrafts)),
		zap.Int("shortlisted", len(state.ShortlistedCandidates)))
}

// Draft generates one email of the given type for one candidate. It never
// fails: call or parse failures degrade to the fixed template for the
// posting's language.
func (d *Drafter) Draft(ctx context.Context, candidate types.CandidateScore, job *types.JobPosting, lang, emailType string, addresses map[string]string) types.EmailDraft {
	draft := types.EmailDraft{
		RecipientName:  candidate.CandidateName,
		RecipientEmail: recipientEmail(candidate.CandidateName, addresses),
		EmailType:      emailType,
		JobTitle:       job.Title,
		CompanyName:    job.Company,
	}
	if emailType == types.EmailInterviewInvitation {
		draft.InterviewDate = d.now().AddDate(0, 0, interviewLeadDays).Format(interviewDateFmt)
		draft.InterviewTime = "[To be scheduled]"
	}

	subject, body, err := d.generate(ctx, candidate, job, lang, emailType)
	if err != nil {
		d.log.Warn("email generation degraded to template",
			zap.String("candidate", candidate.CandidateName),
			zap.String("email_type", emailType),
			zap.Error(err))
		subject, body = fallbackEmail(lang, emailType, candidate.CandidateName, job)
	}
	draft.Subject = subject
	draft.Body = body
	return draft
}

// DraftFollowUp drafts a request for additional information from one
// candidate. It is exposed for operator use and not part of the fixed
// pipeline.
func (d *Drafter) DraftFollowUp(ctx context.Context, candidate types.CandidateScore, job *types.JobPosting, addresses map[string]string) types.EmailDraft {
	lang := heuristics.DetectLanguage(job.Text(), heuristics.KeywordThresholdDefault)
	return d.Draft(ctx, candidate, job, lang, types.EmailFollowUp, addresses)
}

func (d *Drafter) generate(ctx context.Context, candidate types.CandidateScore, job *types.JobPosting, lang, emailType string) (subject, body string, err error) {
	system := prompts.Resolve(promptFile, emailType+"-system", lang)
	user := prompts.Format(prompts.MustGet(promptFile, "email-user-en"), map[string]string{
		"EmailType":     strings.ReplaceAll(emailType, "_", " "),
		"CandidateName": candidate.CandidateName,
		"JobTitle":      job.Title,
		"Company":       job.Company,
		"Score":         fmt.Sprintf("%.1f", candidate.OverallScore),
		"Notes":         draftNotes(candidate, emailType),
	})

	response, err := d.client.Complete(ctx, system, user, llm.TierLite)
	if err != nil {
		return "", "", err
	}

	subject, body = ParseEmailContent(response)
	if body == "" {
		return "", "", fmt.Errorf("no email body found in response")
	}
	if subject == "" {
		subject = "Regarding Your Application"
	}
	return subject, body, nil
}

// draftNotes gives the prompt the per-type context the draft should lean on.
func draftNotes(candidate types.CandidateScore, emailType string) string {
	switch emailType {
	case types.EmailInterviewInvitation:
		if len(candidate.Strengths) > 0 {
			return "Candidate strengths: " + strings.Join(firstN(candidate.Strengths, 3), ", ")
		}
		return "Strong background"
	case types.EmailRejection:
		return "Assessment: " + candidate.Recommendation
	case types.EmailFollowUp:
		if len(candidate.MissingSkills) > 0 {
			return "Clarification needed on: " + strings.Join(firstN(candidate.MissingSkills, 3), ", ")
		}
		return "Additional details needed"
	default:
		return "Application received"
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// harvestedAddresses maps candidate names to the email addresses found during
// CV parsing.
func harvestedAddresses(candidates []types.ParsedCandidate) map[string]string {
	addresses := make(map[string]string, len(candidates))
	for _, c := range candidates {
		if c.Email != "" {
			addresses[c.Name] = c.Email
		}
	}
	return addresses
}

// recipientEmail prefers the address harvested from the CV and synthesizes a
// first.last placeholder only when parsing found none.
func recipientEmail(candidateName string, addresses map[string]string) string {
	if addr, ok := addresses[candidateName]; ok {
		return addr
	}
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(candidateName), " ", ".")) + "@email.com"
}
