package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

// ErrNotTerminal is returned when the dashboard cannot take over the screen.
var ErrNotTerminal = errors.New("live monitor needs an interactive terminal")

// Run shows the dashboard on out until the user quits or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, sampler Sampler, interval time.Duration) error {
	if !ui.IsTerminal(out) {
		return ErrNotTerminal
	}
	if sampler == nil {
		sampler = SystemSampler
	}

	p := tea.NewProgram(
		NewModel(ctx, sampler, interval),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("live monitor: %w", err)
	}
	return nil
}
