// Package ingestion extracts plain text from candidate CV documents. It is
// the external collaborator boundary for the CV-analysis stage: given a path,
// return best-effort text or fail, and let the caller degrade to a
// placeholder record.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// Supported CV formats.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// MaxFileSizeMB caps accepted CV uploads.
const MaxFileSizeMB = 10

// ErrUnsupportedFormat is returned for files outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ExtractionError wraps a per-file extraction failure.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// SupportedFormat reports whether the file extension is an accepted CV format.
func SupportedFormat(path string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ExtractText returns the plain text of a CV document. PDF and Word documents
// go through docconv; plain text files are read directly. Unsupported
// extensions yield ErrUnsupportedFormat (wrapped in an ExtractionError).
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: err}
	}
	if sizeMB := float64(info.Size()) / (1024 * 1024); sizeMB > MaxFileSizeMB {
		return "", &ExtractionError{Path: path, Cause: fmt.Errorf("file too large: %.1fMB (limit %dMB)", sizeMB, MaxFileSizeMB)}
	}

	var text string
	switch ext {
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		text = string(content)
	default:
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		text = res.Body
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ExtractionError{Path: path, Cause: errors.New("no text content extracted")}
	}
	return text, nil
}
