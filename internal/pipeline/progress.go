package pipeline

import "github.com/jonathan/hr-screener/internal/types"

// progressTable maps each pipeline step to its completion percentage.
var progressTable = map[string]int{
	types.StepStart:                  0,
	types.StepParsingCVs:             10,
	types.StepCVsParsed:              20,
	types.StepScoringCandidates:      30,
	types.StepCandidatesScored:       50,
	types.StepShortlistingCandidates: 60,
	types.StepCandidatesShortlisted:  70,
	types.StepGeneratingQuestions:    80,
	types.StepQuestionsGenerated:     85,
	types.StepDraftingEmails:         90,
	types.StepEmailsDrafted:          95,
	types.StepCompleted:              100,
}

// ProgressPercent returns the completion percentage for a step tag. Unknown
// tags report 0.
func ProgressPercent(step string) int {
	return progressTable[step]
}

// Status is a point-in-time view of a run for progress reporting.
type Status struct {
	Status          string   `json:"status"`
	CurrentStep     string   `json:"current_step"`
	ProgressPercent int      `json:"progress_percent"`
	Errors          []string `json:"errors"`
}

// Status reports the tracked run's progress. Before any run it reports a
// pending status at step "start".
func (w *Workflow) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == nil {
		return Status{
			Status:          types.StatusPending,
			CurrentStep:     types.StepStart,
			ProgressPercent: 0,
		}
	}
	return Status{
		Status:          w.state.ProcessingStatus,
		CurrentStep:     w.state.CurrentStep,
		ProgressPercent: ProgressPercent(w.state.CurrentStep),
		Errors:          w.state.ErrorLog(),
	}
}
