package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting across commands.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// styleCyan is used for patterns, headers, and file locations.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleRed is used for disabled markers and failures.
	styleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// styleGreen is used for enabled markers and success messages.
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleGray is used for hints and secondary detail.
	styleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors() bool {
	// Explicit flag wins
	if getBoolWithFallback("color", "color", false) {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}
