// Package parsing implements the CV-analysis stage: extract text from each
// submitted file, detect its language, run heuristic extraction, and merge in
// a structured LLM extraction. A file that cannot be processed degrades to a
// placeholder candidate so the pipeline always produces one record per input.
package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/ingestion"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/prompts"
	"github.com/jonathan/hr-screener/internal/schemas"
	"github.com/jonathan/hr-screener/internal/types"
)

const promptFile = "parsing.json"

// Analyzer turns CV files into structured candidate records.
type Analyzer struct {
	client  llm.Client
	log     *zap.Logger
	extract func(path string) (string, error)
}

// NewAnalyzer builds the CV-analysis stage.
func NewAnalyzer(client llm.Client, log *zap.Logger) *Analyzer {
	return &Analyzer{
		client:  client,
		log:     log,
		extract: ingestion.ExtractText,
	}
}

// Process parses every file in state.CVFiles, in input order, and appends one
// ParsedCandidate per file to state.ParsedCandidates. Per-file failures are
// recorded on the state and replaced with a placeholder record; they never
// abort the stage.
func (a *Analyzer) Process(ctx context.Context, state *types.PipelineState) {
	if len(state.CVFiles) == 0 {
		state.AddError("cv analysis: no CV files provided")
		a.log.Warn("no CV files to parse")
		return
	}

	for _, path := range state.CVFiles {
		candidate, err := a.ParseFile(ctx, path)
		if err != nil {
			state.AddError(fmt.Sprintf("cv analysis: %s: %v", filepath.Base(path), err))
			a.log.Warn("CV parsing failed, using placeholder",
				zap.String("file", filepath.Base(path)),
				zap.Error(err))
			candidate = placeholderCandidate(path, err)
		}
		state.ParsedCandidates = append(state.ParsedCandidates, candidate)
	}

	a.log.Info("CV analysis complete",
		zap.Int("files", len(state.CVFiles)),
		zap.Int("parsed", len(state.ParsedCandidates)))
}

// ParseFile extracts and structures a single CV. The returned candidate
// always carries the raw text and source file name.
func (a *Analyzer) ParseFile(ctx context.Context, path string) (types.ParsedCandidate, error) {
	text, err := a.extract(path)
	if err != nil {
		return types.ParsedCandidate{}, err
	}

	lang := heuristics.DetectLanguage(text, heuristics.KeywordThresholdParsing)

	candidate := heuristicExtract(text, lang)
	candidate.RawText = text
	candidate.FileName = filepath.Base(path)

	extraction, err := a.llmExtract(ctx, text, lang)
	if err != nil {
		a.log.Warn("LLM extraction failed, keeping heuristic result",
			zap.String("file", candidate.FileName),
			zap.String("language", lang),
			zap.Error(err))
	} else {
		mergeExtraction(&candidate, extraction)
	}

	candidate.Name = heuristics.FormatCandidateName(candidate.Name)
	return candidate, nil
}

// heuristicExtract builds the deterministic portion of a candidate record.
func heuristicExtract(text, lang string) types.ParsedCandidate {
	candidate := types.ParsedCandidate{
		Name:            heuristics.ExtractName(text, lang),
		Email:           heuristics.ExtractEmail(text),
		Phone:           heuristics.ExtractPhone(text),
		Location:        heuristics.ExtractLocation(text, lang),
		ExperienceYears: heuristics.ExtractYearsOfExperience(text),
		Skills:          heuristics.ExtractSkills(text, lang),
	}
	for _, hit := range heuristics.ExtractEducation(text, lang) {
		candidate.Education = append(candidate.Education, types.EducationEntry{
			Degree:      hit.Degree,
			Institution: hit.Institution,
			Year:        hit.Year,
		})
	}
	return candidate
}

func (a *Analyzer) llmExtract(ctx context.Context, text, lang string) (*cvExtraction, error) {
	system := prompts.Resolve(promptFile, "cv-extract-system", lang)
	user := prompts.Format(prompts.MustGet(promptFile, "cv-extract-user-en"), map[string]string{
		"Text": heuristics.CleanText(text),
	})

	response, err := a.client.Complete(ctx, system, user, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	payload, ok := llm.FirstJSONValue(response)
	if !ok {
		return nil, llm.ErrNoJSON
	}
	if err := schemas.Validate(schemas.CVExtraction, []byte(payload)); err != nil {
		return nil, fmt.Errorf("extraction payload rejected: %w", err)
	}

	var extraction cvExtraction
	if err := json.Unmarshal([]byte(payload), &extraction); err != nil {
		return nil, fmt.Errorf("failed to decode extraction payload: %w", err)
	}
	return &extraction, nil
}

func placeholderCandidate(path string, cause error) types.ParsedCandidate {
	return types.ParsedCandidate{
		Name:     "Unknown Candidate",
		RawText:  fmt.Sprintf("ERROR: %v", cause),
		FileName: filepath.Base(path),
	}
}
