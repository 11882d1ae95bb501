// Package prompts stores the stage prompt templates as embedded JSON files,
// one file per pipeline stage. Each stage resolves its system/user pair by
// (file, key, language) instead of branching on language inline.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	filesMu sync.Mutex
	files   = make(map[string]map[string]string)
)

// Get returns the prompt stored under key in the given stage file
// (e.g. "scoring.json"). Files are parsed once and cached.
func Get(filename, key string) (string, error) {
	prompts, err := stagePrompts(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts known to exist. A panic here indicates a
// packaging bug (missing embedded file or key), not a runtime input problem.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("prompts: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with the given values in a single
// pass. Placeholders without a value are left intact so a missing entry stays
// visible in the rendered prompt.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func stagePrompts(filename string) (map[string]string, error) {
	filesMu.Lock()
	defer filesMu.Unlock()

	if prompts, ok := files[filename]; ok {
		return prompts, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}
	files[filename] = prompts
	return prompts, nil
}
