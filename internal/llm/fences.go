package llm

import "strings"

// StripCodeFences removes a Markdown code fence wrapper, with optional
// language tag, from a completion and returns the inner text trimmed.
// Models wrap their JSON this way unpromptedly. Content without a leading
// fence comes back trimmed but otherwise untouched.
func StripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")

	// Drop the fence line ("json", "JSON", or bare) unless the payload
	// starts on the same line as the opening fence.
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		first := strings.TrimSpace(t[:i])
		if !strings.ContainsAny(first, "{[\"") {
			t = t[i+1:]
		}
	}

	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
