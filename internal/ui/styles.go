package ui

import "github.com/charmbracelet/lipgloss"

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconSuccess = "✔"
	IconError   = "✖"
	IconInfo    = "i"
	IconPipe    = "│"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SubmenuStyle     = lipgloss.NewStyle().Foreground(ColorPrimary)
	ActionStyle      = lipgloss.NewStyle().Foreground(ColorWarning)
	LongRunningStyle = lipgloss.NewStyle().Foreground(ColorError)
	DestructiveStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	LabelStyle       = lipgloss.NewStyle().Foreground(ColorText)
	ValueStyle       = lipgloss.NewStyle().Foreground(ColorWarning)
	SuccessStyle     = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle       = lipgloss.NewStyle().Foreground(ColorError)
	InfoStyle        = lipgloss.NewStyle().Foreground(ColorWarning)
	PromptStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	DimStyle         = lipgloss.NewStyle().Faint(true)
)

// Success formats a completed-step line.
func Success(msg string) string {
	return SuccessStyle.Render(IconSuccess + " " + msg)
}

// Failure formats a failed-step line.
func Failure(msg string) string {
	return ErrorStyle.Render(IconError + " " + msg)
}

// Info formats a neutral notice line.
func Info(msg string) string {
	return InfoStyle.Render(IconInfo + " " + msg)
}
