package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
	ColorBlue      = lipgloss.Color("#3B82F6") // Blue
)

// Text styles
var (
	Bold      = lipgloss.NewStyle().Bold(true)
	Muted     = lipgloss.NewStyle().Foreground(ColorMuted)
	Primary   = lipgloss.NewStyle().Foreground(ColorPrimary)
	Success   = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning   = lipgloss.NewStyle().Foreground(ColorWarning)
	Danger    = lipgloss.NewStyle().Foreground(ColorDanger)
	Secondary = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// ID style - distinctive for record ids
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Header style for section headers
var Header = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true).
	MarginBottom(1)

// RenderID returns a styled record id.
func RenderID(id int) string {
	return ID.Render(strconv.Itoa(id))
}

// RenderReference renders a foreign key, flagging ids that point at nothing.
func RenderReference(id int, label string, found bool) string {
	if !found {
		return Danger.Render(strconv.Itoa(id) + " (missing)")
	}
	return Secondary.Render(strconv.Itoa(id)) + " " + label
}

// RenderGrade renders a grade value using the shortest decimal form.
func RenderGrade(grade float64) string {
	return Bold.Foreground(ColorBlue).Render(strconv.FormatFloat(grade, 'f', -1, 64))
}
