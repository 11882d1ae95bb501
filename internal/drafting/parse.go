package drafting

import "strings"

// Subject and body marker tokens the models emit, in either language.
var (
	subjectMarkers = []string{"SUBJECT:", "ГАРЧИГ:", "СЭДЭВ:", "TITLE:"}
	bodyMarkers    = []string{"BODY:", "АГУУЛГА:", "БИЕТ:", "CONTENT:"}
)

// ParseEmailContent splits a generated email into subject and body by
// scanning for marker tokens. When no subject marker is present, the first
// non-empty line is treated as the subject and the rest as the body. Both
// return values may be empty if the response contains nothing usable.
func ParseEmailContent(content string) (subject, body string) {
	lines := strings.Split(content, "\n")

	var bodyLines []string
	inBody := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if rest, ok := matchMarker(trimmed, subjectMarkers); ok {
			subject = rest
			continue
		}
		if rest, ok := matchMarker(trimmed, bodyMarkers); ok {
			inBody = true
			if rest != "" {
				bodyLines = append(bodyLines, rest)
			}
			continue
		}
		if inBody {
			bodyLines = append(bodyLines, line)
		}
	}

	if subject == "" && !inBody {
		// No markers at all: first non-empty line is the subject, the rest is
		// the body.
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			subject = strings.TrimSpace(line)
			bodyLines = lines[i+1:]
			break
		}
	}

	body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	return subject, body
}

func matchMarker(line string, markers []string) (rest string, ok bool) {
	for _, m := range markers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m)), true
		}
	}
	return "", false
}
