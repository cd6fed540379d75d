package domain

import "strings"

// NormalizeText prepares text for comparison and grouping:
// leading/trailing whitespace is trimmed and the result is lowercased.
// Conflict detection and pair merging group by this key; the original-case
// text is always kept for display.
func NormalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
