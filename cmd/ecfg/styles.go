package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for CLI output
var (
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success marks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
)

var (
	successStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	headerStyle  = lipgloss.NewStyle().Foreground(MutedColor)
)

// styledOutput reports whether stdout is a terminal. Styling is dropped
// when output is piped so scripts get clean text.
func styledOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// successMark returns the checkmark prefix for status lines.
func successMark() string {
	if styledOutput() {
		return successStyle.Render("✓")
	}
	return "ok:"
}

// headerLine renders the configuration name header printed above
// structured output.
func headerLine(name string) string {
	line := "# " + name
	if styledOutput() {
		return headerStyle.Render(line)
	}
	return line
}

// renderError applies error styling when printing to a terminal.
func renderError(err error) string {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return errorStyle.Render(err.Error())
	}
	return err.Error()
}
