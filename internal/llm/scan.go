package llm

import (
	"encoding/json"
	"errors"
)

// ErrNoJSON is returned when a response contains no parsable JSON value.
var ErrNoJSON = errors.New("no JSON value found in response")

// FirstJSONValue returns the first balanced JSON object or array embedded in
// text. It walks the text with a real bracket-matching scanner that is aware
// of string literals and escapes, so nested braces in surrounding prose do
// not confuse it the way a naive first/last-index search would.
func FirstJSONValue(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		open := text[i]
		if open != '{' && open != '[' {
			continue
		}
		if end, ok := scanBalanced(text, i); ok {
			candidate := text[i : end+1]
			if json.Valid([]byte(candidate)) {
				return candidate, true
			}
		}
	}
	return "", false
}

// scanBalanced returns the index of the bracket closing the one at start.
func scanBalanced(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// DecodeFirstObject decodes the first balanced JSON object found in an LLM
// response into v. Markdown fences and surrounding prose never confuse the
// scanner: it only reacts to bracket characters outside string literals.
func DecodeFirstObject(text string, v any) error {
	return decodeFirst(text, '{', v)
}

// DecodeFirstArray decodes the first balanced JSON array found in an LLM
// response into v.
func DecodeFirstArray(text string, v any) error {
	return decodeFirst(text, '[', v)
}

func decodeFirst(text string, want byte, v any) error {
	for i := 0; i < len(text); i++ {
		if text[i] != want {
			continue
		}
		end, ok := scanBalanced(text, i)
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(text[i:end+1]), v); err == nil {
			return nil
		}
	}
	return ErrNoJSON
}
