package output

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	// Colors
	Primary = lipgloss.Color("#C084FC")
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Error)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Box for the share link
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(12)
)

// PrintSuccess prints a success message with checkmark
func PrintSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// PrintError prints an error message
func PrintError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// PrintInfo prints an info message
func PrintInfo(msg string) string {
	return MutedStyle.Render("• " + msg)
}

// PrintWarning prints a warning message
func PrintWarning(msg string) string {
	return WarningStyle.Render("! " + msg)
}

// Field renders an aligned "label value" line.
func Field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}

// When renders t as an absolute timestamp followed by a relative hint,
// e.g. "2027-01-01 09:00 UTC (2 months from now)".
func When(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 MST") + " " + MutedStyle.Render("("+humanize.Time(t)+")")
}

// Status labels a letter as sealed or openable at now.
func Status(unlockAt, now time.Time) string {
	if now.Before(unlockAt) {
		return WarningStyle.Render("sealed")
	}
	return SuccessStyle.Render("openable")
}
