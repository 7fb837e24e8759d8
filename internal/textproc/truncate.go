package textproc

import "strings"

// DefaultTruncateLimit caps prompt input; a rough proxy for token limits.
const DefaultTruncateLimit = 15000

const truncationMarker = "\n\n[Content truncated for length...]"

// Truncate cuts text to at most maxChars, preferring to end at a sentence
// or paragraph boundary when one falls close enough to the limit.
func Truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}

	truncated := text[:maxChars]
	lastPeriod := strings.LastIndex(truncated, ".")
	lastNewline := strings.LastIndex(truncated, "\n")

	cut := lastPeriod
	if lastNewline > cut {
		cut = lastNewline
	}
	// Only back up to the boundary if we are not losing too much.
	if cut > maxChars*4/5 {
		truncated = truncated[:cut+1]
	}

	return truncated + truncationMarker
}
