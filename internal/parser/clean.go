package parser

import "strings"

// cleanResponse removes the wrapping that chat models tend to add around the
// payload: reasoning blocks and markdown code fences.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)

	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(s, "</think>")
		if end == -1 || end < start {
			break
		}
		s = strings.TrimSpace(s[:start] + s[end+len("</think>"):])
	}

	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// extractJSONArray returns the span between the first '[' and the last ']'.
func extractJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
