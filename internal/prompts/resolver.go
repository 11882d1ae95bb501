package prompts

// Resolve returns the prompt for a key in the requested language, falling
// back to the English variant when no localized one exists. Keys are stored
// as "<key>-<lang>" in the stage's prompt file. This replaces per-stage
// language branching with a single lookup.
func Resolve(filename, key, lang string) string {
	if prompt, err := Get(filename, key+"-"+lang); err == nil {
		return prompt
	}
	return MustGet(filename, key+"-en")
}
