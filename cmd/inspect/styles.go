package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/moznion/go-optional"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)
)

// FormatOptionValue renders an indicator value, or "-" while the indicator
// is still warming up.
func FormatOptionValue(v optional.Option[float64]) string {
	if v.IsNone() {
		return "-"
	}

	return fmt.Sprintf("%.4f", v.Unwrap())
}
