package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("parsing.json", "cv-extract-system-en")
	require.NoError(t, err)
	assert.Contains(t, prompt, "CV")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("parsing.json", "no-such-key")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, apply for {{.Role}}.", map[string]string{
		"Name": "Bold",
		"Role": "Engineer",
	})
	assert.Equal(t, "Hello Bold, apply for Engineer.", out)
}

func TestFormat_MissingKeyLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", out)
}

func TestFormat_SinglePass(t *testing.T) {
	// A value that looks like a placeholder must not be expanded again.
	out := Format("{{.A}} {{.B}}", map[string]string{"A": "{{.B}}", "B": "x"})
	assert.Equal(t, "{{.B}} x", out)
}

func TestResolve_LocalizedAndFallback(t *testing.T) {
	mn := Resolve("parsing.json", "cv-extract-system", "mn")
	assert.Contains(t, mn, "CV")
	assert.True(t, strings.Contains(mn, "Та"), "expected the Mongolian variant")

	// No Mongolian user prompt exists; Resolve falls back to English.
	user := Resolve("parsing.json", "cv-extract-user", "mn")
	assert.Contains(t, user, "{{.Text}}")
}

func TestStagePromptFilesComplete(t *testing.T) {
	// Every stage file carries localized system prompts for both languages.
	keys := map[string][]string{
		"parsing.json":   {"cv-extract-system"},
		"scoring.json":   {"fit-analysis-system"},
		"interview.json": {"technical-system", "behavioral-system", "role-specific-system", "general-system"},
		"email.json":     {"interview_invitation-system", "rejection-system", "follow_up-system", "acknowledgment-system"},
	}
	for file, bases := range keys {
		for _, base := range bases {
			for _, lang := range []string{"en", "mn"} {
				_, err := Get(file, base+"-"+lang)
				assert.NoError(t, err, "%s %s-%s", file, base, lang)
			}
		}
	}
}
