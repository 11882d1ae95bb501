// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hr-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of the job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Required skills (%d):\n", len(job.RequiredSkills)))
	for i, skill := range job.RequiredSkills {
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	p.printBox("JOB POSTING", sb.String())
}

// PrintScores outputs the ranked candidate scores.
func (p *Printer) PrintScores(scores []types.CandidateScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	for i, score := range scores {
		sb.WriteString(fmt.Sprintf("%2d. %-28s %5.1f/100\n", i+1, score.CandidateName, score.OverallScore))
		sb.WriteString(fmt.Sprintf("    %s\n", score.Recommendation))
	}

	p.printBox("CANDIDATE RANKING", sb.String())
}

// PrintRunSummary outputs the final state of a screening run.
func (p *Printer) PrintRunSummary(state *types.PipelineState) {
	if state == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:         %s\n", state.RunID))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", state.ProcessingStatus))
	sb.WriteString(fmt.Sprintf("Parsed CVs:  %d\n", len(state.ParsedCandidates)))
	sb.WriteString(fmt.Sprintf("Scored:      %d\n", len(state.CandidateScores)))
	sb.WriteString(fmt.Sprintf("Shortlisted: %d\n", len(state.ShortlistedCandidates)))
	sb.WriteString(fmt.Sprintf("Questions:   %d sets\n", len(state.InterviewQuestions)))
	sb.WriteString(fmt.Sprintf("Emails:      %d drafts\n", len(state.EmailDrafts)))

	if len(state.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nErrors (%d):\n", len(state.Errors)))
		for i, msg := range state.Errors {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(state.Errors)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", msg))
		}
	}

	p.printBox("SCREENING RUN SUMMARY", sb.String())

	p.PrintScores(state.CandidateScores)
}
