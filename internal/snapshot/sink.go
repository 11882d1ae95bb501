// Package snapshot persists pipeline outputs as flat JSON files, one file per
// collection, under a per-run directory.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Sink is the durable storage contract the finalize step writes to. Failures
// are reported per collection; the caller decides whether to continue.
type Sink interface {
	Save(collection string, data any) error
}

// FileSink writes each collection to <baseDir>/<runID>/<collection>.json.
type FileSink struct {
	dir string
}

// NewFileSink builds a sink rooted at the run's own output directory.
func NewFileSink(baseDir string, runID uuid.UUID) *FileSink {
	return &FileSink{dir: filepath.Join(baseDir, runID.String())}
}

// Dir returns the run's output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Save marshals data to indented JSON and writes it as one file.
func (s *FileSink) Save(collection string, data any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", collection, err)
	}

	path := filepath.Join(s.dir, collection+".json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	return nil
}
