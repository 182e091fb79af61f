package llm

import "strings"

// CleanJSONBlock normalizes a provider response down to its JSON payload.
// Models wrap JSON in markdown fences or conversational text even when
// instructed not to; this strips the fence, then extracts the first complete
// object or array, dropping any preamble and trailing chatter. Responses
// with no recognizable JSON come back unchanged.
func CleanJSONBlock(text string) string {
	text = stripFence(strings.TrimSpace(text))

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			if extracted := extractJSONObject(text[i:]); extracted != "" {
				return extracted
			}
		case '[':
			if extracted := extractJSONArray(text[i:]); extracted != "" {
				return extracted
			}
		}
	}
	return text
}

// stripFence removes a leading markdown code fence and its closing fence.
// A short first line without spaces or JSON delimiters is treated as the
// fence's language tag and dropped.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := strings.TrimPrefix(text, "```")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			body = body[idx+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

// extractJSONObject returns the complete JSON object at the start of text,
// or "" when text does not begin with a balanced object.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray is the array counterpart of extractJSONObject.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans from the opening delimiter to its match, ignoring
// delimiters inside string literals and skipping escaped characters.
func extractBalanced(text string, open, closing byte) string {
	if len(text) == 0 || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
