package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	clrCyan   = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
)

// ─── Top-level renderer ─────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.Width
	if w < 50 {
		w = 50
	}

	var s strings.Builder
	s.WriteString(ui.TitleStyle.Render("  Live System Monitor"))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("─", w)))
	s.WriteString("\n")

	if m.Sample == nil {
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  Collecting metrics…"))
		s.WriteString("\n")
		s.WriteString(m.renderFooter())
		return s.String()
	}

	barW := 32
	if w > 100 {
		barW = 48
	}
	sp := m.Sample

	lines := []string{
		"",
		fmt.Sprintf("  CPU  %s  %5.1f%%", colorBar(sp.CPUPercent, barW), sp.CPUPercent),
		"       " + sparklineF64(m.CPUHistory, barW),
		"",
		fmt.Sprintf("  MEM  %s  %5.1f%%  %s / %s",
			colorBar(sp.MemPercent, barW), sp.MemPercent,
			core.FormatSize(int64(sp.MemUsed)), core.FormatSize(int64(sp.MemTotal))),
		"       " + sparklineF64(m.MemHistory, barW),
		"",
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	s.WriteString(card)
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	hints := fmt.Sprintf("  every %s  %s  q quit", m.interval, ui.IconPipe)
	footer := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Italic(true).
		Render(hints)

	if m.Err != nil {
		errStr := lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Render("  " + ui.IconError + " " + m.Err.Error())
		return errStr + "\n" + footer
	}
	return footer
}

// ─── Drawing primitives ─────────────────────────────────────────────────────

// colorBar renders a ████░░░░ bar colored by severity.
func colorBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barColor := clrGreen
	switch {
	case pct >= 90:
		barColor = clrRed
	case pct >= 75:
		barColor = clrOrange
	case pct >= 50:
		barColor = clrYellow
	}

	fStr := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	eStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
	return fStr + eStr
}

// sparklineF64 renders percentages on a fixed 0-100 scale, newest on the right.
func sparklineF64(data []float64, width int) string {
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	d := data
	if len(d) > width {
		d = d[len(d)-width:]
	}

	var b strings.Builder
	for i := len(d); i < width; i++ {
		b.WriteRune(' ')
	}
	for _, v := range d {
		idx := int(v / 100 * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return lipgloss.NewStyle().Foreground(clrCyan).Render(b.String())
}
