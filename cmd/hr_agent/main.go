// Package main provides the entry point for the HR screening pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hr_agent",
	Short: "LLM-assisted recruitment screening pipeline",
	Long:  "hr_agent screens a batch of candidate CVs against a job posting: parsing, scoring, shortlisting, interview question generation, and email drafting in one run.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
