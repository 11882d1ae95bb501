// Package pipeline provides the high-level orchestration for a screening
// run: a fixed linear state machine over a shared PipelineState. Stages are
// invoked unconditionally in sequence; a stage that cannot proceed records an
// error and leaves the state otherwise unchanged, and the finalize step
// always runs.
package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/drafting"
	"github.com/jonathan/hr-screener/internal/interview"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/logger"
	"github.com/jonathan/hr-screener/internal/parsing"
	"github.com/jonathan/hr-screener/internal/scoring"
	"github.com/jonathan/hr-screener/internal/shortlist"
	"github.com/jonathan/hr-screener/internal/snapshot"
	"github.com/jonathan/hr-screener/internal/types"
)

// Options holds the wiring for one workflow instance. Shortlisting and
// scoring parameters are snapshotted here; changing configuration after
// construction does not affect a running workflow.
type Options struct {
	Client llm.Client
	Log    *zap.Logger

	// SinkFor returns the snapshot sink for a run. Nil disables snapshots.
	SinkFor func(state *types.PipelineState) snapshot.Sink

	Weights           types.ScoreWeights
	MaxShortlist      int
	MinScoreThreshold float64
}

// Workflow runs the screening pipeline: parse -> score -> shortlist ->
// questions -> emails -> finalize.
type Workflow struct {
	parser    *parsing.Analyzer
	scorer    *scoring.Scorer
	selector  *shortlist.Selector
	generator *interview.Generator
	drafter   *drafting.Drafter
	sinkFor   func(state *types.PipelineState) snapshot.Sink
	log       *zap.Logger

	mu    sync.Mutex
	state *types.PipelineState
}

// New wires the five stage agents. The LLM client is wrapped with the
// standard retry policy so transient call failures are absorbed before a
// stage falls back to its degraded output.
func New(opts Options) *Workflow {
	log := logger.Or(opts.Log)
	client := llm.WithRetry(opts.Client, llm.DefaultRetryAttempts, llm.DefaultRetryBase)

	return &Workflow{
		parser:    parsing.NewAnalyzer(client, log.Named("parsing")),
		scorer:    scoring.NewScorer(client, log.Named("scoring"), opts.Weights),
		selector:  shortlist.NewSelector(log.Named("shortlist"), opts.MaxShortlist, opts.MinScoreThreshold),
		generator: interview.NewGenerator(client, log.Named("interview")),
		drafter:   drafting.NewDrafter(client, log.Named("drafting")),
		sinkFor:   opts.SinkFor,
		log:       log,
	}
}

// Run executes the full pipeline synchronously and returns the final state.
// It never returns an error: failures are recorded on the state's error list
// and reflected in its processing status.
func (w *Workflow) Run(ctx context.Context, job *types.JobPosting, cvFiles []string) *types.PipelineState {
	state := types.NewPipelineState(job, cvFiles)
	w.track(state)

	w.log.Info("workflow started",
		zap.String("run_id", state.RunID.String()),
		zap.Int("cv_files", len(cvFiles)))

	w.setStatus(state, types.StatusRunning)

	w.setStep(state, types.StepParsingCVs)
	w.parser.Process(ctx, state)
	w.setStep(state, types.StepCVsParsed)

	w.setStep(state, types.StepScoringCandidates)
	w.scorer.Process(ctx, state)
	w.setStep(state, types.StepCandidatesScored)

	w.setStep(state, types.StepShortlistingCandidates)
	w.selector.Process(state)
	w.setStep(state, types.StepCandidatesShortlisted)

	w.setStep(state, types.StepGeneratingQuestions)
	w.generator.Process(ctx, state)
	w.setStep(state, types.StepQuestionsGenerated)

	w.setStep(state, types.StepDraftingEmails)
	w.drafter.Process(ctx, state)
	w.setStep(state, types.StepEmailsDrafted)

	w.finalize(state)
	w.setStep(state, types.StepCompleted)

	w.logSummary(state)
	return state
}

// finalize snapshots every populated collection as an independent unit,
// continuing past individual save failures. Only a failure to persist the
// full state marks the run failed; per-collection failures are recorded and
// the run still completes.
func (w *Workflow) finalize(state *types.PipelineState) {
	if w.sinkFor == nil {
		w.setStatus(state, types.StatusCompleted)
		return
	}
	sink := w.sinkFor(state)

	collections := []struct {
		name      string
		data      any
		populated bool
	}{
		{"parsed_candidates", state.ParsedCandidates, len(state.ParsedCandidates) > 0},
		{"candidate_scores", state.CandidateScores, len(state.CandidateScores) > 0},
		{"shortlisted_candidates", state.ShortlistedCandidates, len(state.ShortlistedCandidates) > 0},
		{"interview_questions", state.InterviewQuestions, len(state.InterviewQuestions) > 0},
		{"email_drafts", state.EmailDrafts, len(state.EmailDrafts) > 0},
	}
	for _, c := range collections {
		if !c.populated {
			continue
		}
		if err := sink.Save(c.name, c.data); err != nil {
			state.AddError("finalize: failed to save " + c.name + ": " + err.Error())
			w.log.Warn("snapshot failed", zap.String("collection", c.name), zap.Error(err))
		}
	}

	if err := sink.Save("pipeline_state", state); err != nil {
		state.AddError("finalize: failed to save pipeline state: " + err.Error())
		w.log.Error("failed to persist pipeline state", zap.Error(err))
		w.setStatus(state, types.StatusFailed)
		return
	}
	w.setStatus(state, types.StatusCompleted)
}

func (w *Workflow) track(state *types.PipelineState) {
	w.mu.Lock()
	w.state = state
	w.mu.Unlock()
}

func (w *Workflow) setStep(state *types.PipelineState, step string) {
	w.mu.Lock()
	state.CurrentStep = step
	w.mu.Unlock()
	w.log.Debug("step", zap.String("current_step", step))
}

func (w *Workflow) setStatus(state *types.PipelineState, status string) {
	w.mu.Lock()
	state.ProcessingStatus = status
	w.mu.Unlock()
}

func (w *Workflow) logSummary(state *types.PipelineState) {
	var avg float64
	for _, s := range state.CandidateScores {
		avg += s.OverallScore
	}
	if len(state.CandidateScores) > 0 {
		avg /= float64(len(state.CandidateScores))
	}

	top := make([]string, 0, 3)
	for i, s := range state.CandidateScores {
		if i == 3 {
			break
		}
		top = append(top, s.CandidateName)
	}

	emailTypes := make(map[string]int)
	for _, d := range state.EmailDrafts {
		emailTypes[d.EmailType]++
	}

	w.log.Info("workflow finished",
		zap.String("run_id", state.RunID.String()),
		zap.String("status", state.ProcessingStatus),
		zap.Int("parsed", len(state.ParsedCandidates)),
		zap.Int("scored", len(state.CandidateScores)),
		zap.Int("shortlisted", len(state.ShortlistedCandidates)),
		zap.Int("question_sets", len(state.InterviewQuestions)),
		zap.Float64("average_score", avg),
		zap.Strings("top_candidates", top),
		zap.Any("email_drafts", emailTypes),
		zap.Int("errors", len(state.Errors)))
}
