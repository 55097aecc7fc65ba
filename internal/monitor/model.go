package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// historyLen is the number of readings kept for the sparklines.
const historyLen = 60

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type sampleMsg struct {
	sample Sample
	err    error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the live CPU and memory dashboard.
type Model struct {
	Sample   *Sample
	Width    int
	Height   int
	Err      error
	quitting bool

	CPUHistory []float64
	MemHistory []float64

	ctx      context.Context
	sampler  Sampler
	interval time.Duration
}

// NewModel creates a Model that polls sampler every interval.
func NewModel(ctx context.Context, sampler Sampler, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		Width:    80,
		Height:   24,
		ctx:      ctx,
		sampler:  sampler,
		interval: interval,
	}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) collect() tea.Cmd {
	ctx, sampler := m.ctx, m.sampler
	return func() tea.Msg {
		s, err := sampler(ctx)
		return sampleMsg{sample: s, err: err}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// The first sampleMsg starts the tick loop, so sampling and display
	// stay strictly sequential.
	return m.collect()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, m.collect()

	case sampleMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, m.doTick()
		}
		s := msg.sample
		m.Sample = &s
		m.Err = nil
		m.CPUHistory = appendF64(m.CPUHistory, s.CPUPercent, historyLen)
		m.MemHistory = appendF64(m.MemHistory, s.MemPercent, historyLen)
		return m, m.doTick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// ─── History helpers ─────────────────────────────────────────────────────────

func appendF64(h []float64, v float64, maxLen int) []float64 {
	h = append(h, v)
	if len(h) > maxLen {
		h = h[1:]
	}
	return h
}
