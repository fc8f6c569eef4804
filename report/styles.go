// SPDX-License-Identifier: MIT
// Package report renders spin networks, spectra and runs as styled terminal text.
//
// Every renderer writes to an io.Writer and returns the first write error.
// Styling degrades to plain text when the output is not a terminal.
package report

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPrimary = lipgloss.Color("#20B9B4")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorOK      = lipgloss.Color("#2CD7C7")
	ColorFail    = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Bar      lipgloss.Style
	OK       lipgloss.Style
	Violated lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Section:  lipgloss.NewStyle().Foreground(ColorPrimary).Underline(true),
	Label:    lipgloss.NewStyle().Bold(true),
	Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	Bar:      lipgloss.NewStyle().Foreground(ColorPrimary),
	OK:       lipgloss.NewStyle().Foreground(ColorOK),
	Violated: lipgloss.NewStyle().Foreground(ColorFail),
}
