// Package tui provides the live terminal view: it steps the reef model
// with slowly modulated wave forcing and plots the resulting forcing
// history.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/reefhydro/internal/coral"
	"github.com/san-kum/reefhydro/internal/hydro"
	"github.com/san-kum/reefhydro/internal/reef"
	"github.com/san-kum/reefhydro/internal/viz"
)

const (
	graphWidth      = 70
	graphHeight     = 10
	historyCapacity = 600
	modulation      = 0.3 // Hs swing as a fraction of the base height
	modPeriod       = 60.0
)

type TickMsg time.Time

// Model drives one reef backend step per tick.
type Model struct {
	reef     *reef.Reef1D
	crl      *coral.Coral
	baseHs   float64
	tp       float64
	stormCat int

	t       float64
	step    int
	running bool
	forcing hydro.Forcing
	history []float64
	err     error
}

// NewModel wraps an already initiated reef backend.
func NewModel(r *reef.Reef1D, c *coral.Coral, hs, tp float64, stormCat int) Model {
	return Model{
		reef:     r,
		crl:      c,
		baseHs:   hs,
		tp:       tp,
		stormCat: stormCat,
		running:  true,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.step = 0
			m.history = m.history[:0]
			m.err = nil
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) advance() {
	hs := m.baseHs * (1 + modulation*math.Sin(2*math.Pi*m.t/modPeriod))
	if err := m.reef.SetForcing(hs, m.tp); err != nil {
		m.err = err
		m.running = false
		return
	}

	f, err := m.reef.Update(m.crl, m.stormCat)
	if err != nil {
		m.err = err
	}
	m.forcing = f
	m.history = append(m.history, f.WaveVelocity)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	m.t += 1
	m.step++
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(viz.Header("reefhydro live") + "\n\n")
	b.WriteString(viz.KeyValue("step", "%d", m.step) + "\n")
	b.WriteString(viz.KeyValue("storm category", "%d", m.stormCat) + "\n")
	b.WriteString(viz.KeyValue("current velocity [m/s]", "%.4f", m.forcing.CurrentVelocity) + "\n")
	b.WriteString(viz.KeyValue("wave velocity [m/s]", "%.4f", m.forcing.WaveVelocity) + "\n")
	if !m.forcing.Storm {
		b.WriteString(viz.KeyValue("wave period [s]", "%.2f", m.forcing.WavePeriod) + "\n")
	}
	if len(m.history) > 1 {
		b.WriteString(viz.Profile("wave velocity history", m.history, graphWidth, graphHeight))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(fmt.Sprintf("\nerror: %v\n", m.err))
	}
	b.WriteString(viz.HelpStyle.Render("space pause  r reset  q quit"))
	return b.String()
}

// Run starts the live view and finalises the backend on exit.
func Run(r *reef.Reef1D, c *coral.Coral, hs, tp float64, stormCat int) error {
	p := tea.NewProgram(NewModel(r, c, hs, tp, stormCat))
	_, err := p.Run()
	if ferr := r.Finalise(); err == nil {
		err = ferr
	}
	return err
}
