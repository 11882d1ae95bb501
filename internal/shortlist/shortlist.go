// Package shortlist implements the shortlisting stage: a deterministic
// threshold filter plus top-N truncation over the sorted score list. It is
// the only stage with no LLM dependency.
package shortlist

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/types"
)

// Defaults applied when the configuration leaves the parameters unset.
const (
	DefaultMaxShortlist      = 5
	DefaultMinScoreThreshold = 60.0
)

// Selector picks the interview shortlist from the scored candidates.
// Parameters are snapshotted at construction.
type Selector struct {
	log          *zap.Logger
	maxShortlist int
	minScore     float64
}

// NewSelector builds the shortlisting stage.
func NewSelector(log *zap.Logger, maxShortlist int, minScore float64) *Selector {
	if maxShortlist <= 0 {
		maxShortlist = DefaultMaxShortlist
	}
	return &Selector{log: log, maxShortlist: maxShortlist, minScore: minScore}
}

// Process fills state.ShortlistedCandidates from state.CandidateScores.
func (s *Selector) Process(state *types.PipelineState) {
	if len(state.CandidateScores) == 0 {
		state.AddError("shortlisting: no candidate scores available")
		s.log.Warn("shortlisting skipped, no scores")
		return
	}

	shortlist, fellBack := s.Select(state.CandidateScores)
	if fellBack {
		msg := fmt.Sprintf("shortlisting: no candidate reached the %.0f threshold, falling back to the full list", s.minScore)
		state.AddError(msg)
		s.log.Warn("no candidate above threshold, using unfiltered list",
			zap.Float64("threshold", s.minScore))
	}
	state.ShortlistedCandidates = shortlist

	s.log.Info("shortlisting complete",
		zap.Int("shortlisted", len(shortlist)),
		zap.Int("scored", len(state.CandidateScores)))
}

// Select filters the scores to those at or above the threshold, falls back to
// the full list when nothing qualifies (better something than nothing), then
// re-sorts descending and truncates to the configured maximum. The returned
// flag reports whether the fallback was taken.
func (s *Selector) Select(scores []types.CandidateScore) ([]types.CandidateScore, bool) {
	var qualified []types.CandidateScore
	for _, score := range scores {
		if score.OverallScore >= s.minScore {
			qualified = append(qualified, score)
		}
	}

	fellBack := false
	if len(qualified) == 0 {
		qualified = append([]types.CandidateScore{}, scores...)
		fellBack = true
	}

	// Input should already be sorted; re-establish it anyway.
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].OverallScore > qualified[j].OverallScore
	})

	if len(qualified) > s.maxShortlist {
		qualified = qualified[:s.maxShortlist]
	}
	return qualified, fellBack
}
