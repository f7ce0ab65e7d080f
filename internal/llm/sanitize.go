package llm

import "strings"

// SanitizeTable turns a raw backend reply into clean tabular text:
// surrounding whitespace is trimmed and a wrapping fenced block is
// removed. The result is usable only if it is non-empty and contains at
// least one delimiter; anything else is an empty artifact, not an error.
// Applying SanitizeTable to an already-clean reply is a no-op.
func SanitizeTable(raw string) (string, bool) {
	content := StripFences(strings.TrimSpace(raw))
	if content == "" || !strings.Contains(content, ",") {
		return "", false
	}
	return content, true
}

// StripFences removes a wrapping markdown code fence, keeping only the
// interior lines. Input without a leading fence is returned unchanged.
func StripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
