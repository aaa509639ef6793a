// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanText strips the wrappers models put around prose even when asked for
// plain text: markdown code fences, a leading label line ending in ':' that
// echoes the prompt's last line, and surrounding quotes.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	// Handle ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if strings.HasSuffix(firstLine, ":") && len([]rune(firstLine)) <= 10 {
			text = strings.TrimSpace(text[idx+1:])
		}
	}

	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if len(text) > len(pair[0]) && strings.HasPrefix(text, pair[0]) && strings.HasSuffix(text, pair[1]) {
			text = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, pair[0]), pair[1]))
			break
		}
	}

	return text
}
