package bridge

import "strings"

// extractJSON recovers a JSON document from free-form model output. It is a
// best-effort heuristic over an untrusted text stream, tried in three tiers:
// a fenced code block marked as JSON, then the span from the first '{' to the
// last '}', then the trimmed raw text. The caller decides whether the result
// actually parses.
func extractJSON(raw string) string {
	if i := strings.Index(raw, "```json"); i != -1 {
		rest := raw[i+len("```json"):]
		if j := strings.Index(rest, "```"); j != -1 {
			return strings.TrimSpace(rest[:j])
		}
	}

	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first != -1 && last > first {
		return raw[first : last+1]
	}

	return strings.TrimSpace(raw)
}
