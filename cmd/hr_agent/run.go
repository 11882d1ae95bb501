package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/config"
	"github.com/jonathan/hr-screener/internal/ingestion"
	"github.com/jonathan/hr-screener/internal/llm"
	"github.com/jonathan/hr-screener/internal/logger"
	"github.com/jonathan/hr-screener/internal/observability"
	"github.com/jonathan/hr-screener/internal/pipeline"
	"github.com/jonathan/hr-screener/internal/snapshot"
	"github.com/jonathan/hr-screener/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full screening pipeline end-to-end",
	Long: `Orchestrates the entire screening process: CV parsing -> scoring -> shortlisting -> interview questions -> email drafts -> snapshot.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runJob        string
	runCVDir      string
	runCVFiles    []string
	runOutputDir  string
	runMax        int
	runMinScore   float64
	runAPIKey     string
	runModel      string
	runVerbose    bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting JSON file")
	runCommand.Flags().StringVarP(&runCVDir, "cv-dir", "d", "", "Directory scanned for CV files (.pdf/.docx/.doc/.txt)")
	runCommand.Flags().StringSliceVar(&runCVFiles, "cv", nil, "Individual CV file (repeatable)")
	runCommand.Flags().StringVarP(&runOutputDir, "output", "o", "", "Base directory for run snapshots")
	runCommand.Flags().IntVar(&runMax, "max-shortlist", 0, "Maximum number of shortlisted candidates")
	runCommand.Flags().Float64Var(&runMinScore, "min-score", 0, "Minimum overall score for shortlisting")
	runCommand.Flags().StringVar(&runModel, "model", "", "Override for the standard-tier model")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.Load(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("cv-dir") {
		cfg.CVDir = runCVDir
	}
	if cmd.Flags().Changed("cv") {
		cfg.CVFiles = runCVFiles
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("max-shortlist") {
		cfg.MaxShortlist = runMax
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinScoreThreshold = &runMinScore
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values and validate
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	// Step 4: API key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	job, err := loadJobPosting(cfg.Job)
	if err != nil {
		return err
	}

	cvFiles, err := collectCVFiles(cfg.CVDir, cfg.CVFiles)
	if err != nil {
		return err
	}
	if len(cvFiles) == 0 {
		return fmt.Errorf("no CV files found (use --cv-dir or --cv)")
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Models[llm.TierStandard] = cfg.Model
	}
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	workflow := pipeline.New(pipeline.Options{
		Client: client,
		Log:    log,
		SinkFor: func(state *types.PipelineState) snapshot.Sink {
			return snapshot.NewFileSink(cfg.OutputDir, state.RunID)
		},
		Weights:           cfg.Weights(),
		MaxShortlist:      cfg.MaxShortlist,
		MinScoreThreshold: cfg.Threshold(),
	})

	state := workflow.Run(ctx, job, cvFiles)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRunSummary(state)
	fmt.Printf("Snapshots written to %s\n", filepath.Join(cfg.OutputDir, state.RunID.String()))

	if state.ProcessingStatus == types.StatusFailed {
		return fmt.Errorf("run %s failed, see errors above", state.RunID)
	}
	return nil
}

// loadJobPosting reads the job posting JSON file.
func loadJobPosting(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job posting %s: %w", path, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job posting JSON: %w", err)
	}
	if job.Description == "" {
		return nil, fmt.Errorf("job posting %s has an empty description", path)
	}
	return &job, nil
}

// collectCVFiles merges the scanned directory with explicitly listed files,
// keeping only supported formats, sorted for a deterministic input order.
func collectCVFiles(dir string, files []string) ([]string, error) {
	var paths []string

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read cv directory %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if ingestion.SupportedFormat(path) {
				paths = append(paths, path)
			}
		}
	}

	for _, f := range files {
		if !ingestion.SupportedFormat(f) {
			return nil, fmt.Errorf("%s: unsupported CV format", f)
		}
		paths = append(paths, f)
	}

	sort.Strings(paths)
	return paths, nil
}
