package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// stripANSI drops styling so views can be compared as plain text.
func stripANSI(s string) string {
	return ansi.Strip(s)
}

// countLines returns the number of rendered lines in s.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
