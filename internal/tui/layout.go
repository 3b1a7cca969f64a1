package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minModalWidth = 40
	maxModalWidth = 64
)

// padLines right-pads every line of s to width so stale cells get overwritten.
func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + strings.Repeat(" ", gap)
		}
	}
	return strings.Join(lines, "\n")
}

// fitLines pads s to exactly width x height, cutting lines past the bottom.
func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(padLines(s, width), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func modalWidth(width int) int {
	return max(minModalWidth, min(width-4, maxModalWidth))
}
