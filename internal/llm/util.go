// Package llm - util.go normalizes raw model output before JSON decoding.
package llm

import "strings"

// CleanJSONBlock reduces an LLM response to its bare JSON payload. The
// extraction prompts ask for raw JSON, but models still wrap it in markdown
// fences or surround it with conversational text.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return extractPayload(strings.TrimSpace(text))
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return extractPayload(strings.TrimSpace(text))
	}

	return extractPayload(text)
}

// extractPayload strips preamble and trailing prose around the first complete
// JSON object or array in text. Returns text unchanged when no balanced
// payload is found.
func extractPayload(text string) string {
	objStart := strings.IndexByte(text, '{')
	arrStart := strings.IndexByte(text, '[')

	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		if payload := extractJSONArray(text[arrStart:]); payload != "" {
			return payload
		}
	}
	if objStart >= 0 {
		if payload := extractJSONObject(text[objStart:]); payload != "" {
			return payload
		}
	}
	return text
}

// extractJSONObject returns the balanced object at the start of text, or ""
// when text does not begin with one.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced array at the start of text, or ""
// when text does not begin with one.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans for the close byte matching the open byte at text[0].
// String literals are honored so delimiters inside skill names (braces in a
// template string, brackets in a title) do not end the scan early.
func extractBalanced(text string, open, close byte) string {
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
				i++ // Skip the escaped byte
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
		case close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
