package types

import (
	"sync"

	"github.com/google/uuid"
)

// Processing statuses for a pipeline run.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Pipeline step tags, in execution order.
const (
	StepStart                  = "start"
	StepParsingCVs             = "parsing_cvs"
	StepCVsParsed              = "cvs_parsed"
	StepScoringCandidates      = "scoring_candidates"
	StepCandidatesScored       = "candidates_scored"
	StepShortlistingCandidates = "shortlisting_candidates"
	StepCandidatesShortlisted  = "candidates_shortlisted"
	StepGeneratingQuestions    = "generating_questions"
	StepQuestionsGenerated     = "questions_generated"
	StepDraftingEmails         = "drafting_emails"
	StepEmailsDrafted          = "emails_drafted"
	StepCompleted              = "completed"
)

// PipelineState is the single mutable aggregate threaded through every stage.
// Each stage mutates exactly its own output fields and may append to Errors;
// the errors list is append-only and never cleared.
type PipelineState struct {
	RunID uuid.UUID `json:"run_id"`

	JobPosting *JobPosting `json:"job_description"`
	CVFiles    []string    `json:"cv_files"`

	ParsedCandidates      []ParsedCandidate               `json:"parsed_cvs"`
	CandidateScores       []CandidateScore                `json:"candidate_scores"`
	ShortlistedCandidates []CandidateScore                `json:"shortlisted_candidates"`
	InterviewQuestions    map[string]CandidateQuestionSet `json:"interview_questions"`
	EmailDrafts           []EmailDraft                    `json:"email_drafts"`

	CurrentStep      string   `json:"current_step"`
	Errors           []string `json:"errors"`
	ProcessingStatus string   `json:"processing_status"`

	// errMu guards Errors: stages append while the progress query reads.
	errMu sync.Mutex
}

// NewPipelineState creates the initial state for one workflow run.
func NewPipelineState(job *JobPosting, cvFiles []string) *PipelineState {
	return &PipelineState{
		RunID:              uuid.New(),
		JobPosting:         job,
		CVFiles:            cvFiles,
		InterviewQuestions: make(map[string]CandidateQuestionSet),
		CurrentStep:        StepStart,
		ProcessingStatus:   StatusPending,
	}
}

// AddError appends an error message to the state's append-only error list.
// Safe for concurrent use with ErrorLog.
func (s *PipelineState) AddError(msg string) {
	s.errMu.Lock()
	s.Errors = append(s.Errors, msg)
	s.errMu.Unlock()
}

// ErrorLog returns a copy of the errors recorded so far. Safe to call while
// stages are still appending.
func (s *PipelineState) ErrorLog() []string {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return append([]string(nil), s.Errors...)
}
