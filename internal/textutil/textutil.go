// Package textutil provides small text helpers shared by status reporting
// and CLI rendering: whitespace-delimited word counting and display
// truncation.
package textutil

import (
	"strings"
	"unicode"
)

// CountWords returns the number of whitespace-delimited tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. Values of max below 4 collapse to the bare ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	if max < 4 {
		return "..."
	}
	cut := runes[:max-3]
	// Break on the last word boundary when one is close enough.
	for i := len(cut) - 1; i > max/2; i-- {
		if unicode.IsSpace(cut[i]) {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + "..."
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
	for line := range strings.Lines(s) {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
