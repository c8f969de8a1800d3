package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diffsim/internal/diffusion"
	"github.com/san-kum/diffsim/internal/sim"
)

var (
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Live is a Bubble Tea model driving a diffusion run at a fixed frame rate.
// Each frame advances several simulation steps, since the stable dt is far
// below any useful frame interval.
type Live struct {
	params        sim.Params
	grid          *diffusion.Grid
	c             diffusion.Field
	dt            float64
	t             float64
	step          int
	stepsPerFrame int
	frameRate     int
	running       bool
	err           error
}

// NewLive validates the parameters and builds the live model.
func NewLive(params sim.Params, frameRate int) (*Live, error) {
	grid, err := diffusion.NewGrid(params.Origin, params.DomainSize, params.Spacing)
	if err != nil {
		return nil, err
	}
	dt, err := diffusion.StableTimeStep(params.Spacing, params.Diffusivity)
	if err != nil {
		return nil, err
	}
	if frameRate <= 0 {
		frameRate = 30
	}

	spf := params.Steps / (frameRate * 10)
	if spf < 1 {
		spf = 1
	}

	return &Live{
		params:        params,
		grid:          grid,
		c:             diffusion.StepProfile(grid.Len(), params.BoundaryLeft, params.BoundaryRight),
		dt:            dt,
		stepsPerFrame: spf,
		frameRate:     frameRate,
		running:       true,
	}, nil
}

func (m *Live) Init() tea.Cmd {
	return m.tick()
}

func (m *Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Live) advance() {
	for i := 0; i < m.stepsPerFrame && m.step < m.params.Steps; i++ {
		if err := diffusion.Step(m.c, m.params.Spacing, m.dt, m.params.Diffusivity); err != nil {
			m.err = err
			return
		}
		m.c[0] = m.params.BoundaryLeft
		m.c[len(m.c)-1] = m.params.BoundaryRight
		m.step++
		m.t = float64(m.step) * m.dt
	}
	if m.step >= m.params.Steps {
		m.running = false
	}
}

func (m *Live) reset() {
	m.c = diffusion.StepProfile(m.grid.Len(), m.params.BoundaryLeft, m.params.BoundaryRight)
	m.t = 0
	m.step = 0
	m.err = nil
	m.running = true
}

func (m *Live) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("DIFFUSION") + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = fmt.Sprintf("ERROR: %v", m.err)
	} else if m.step >= m.params.Steps {
		status = "FINISHED"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	graph := asciigraph.Plot(m.c,
		asciigraph.Height(14),
		asciigraph.Width(80),
		asciigraph.Caption("C vs x"),
	)
	s.WriteString(graphStyle.Render(graph) + "\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%.5f s", m.t))
	row("step", fmt.Sprintf("%d / %d", m.step, m.params.Steps))
	row("dt", fmt.Sprintf("%.6f s", m.dt))
	row("points", fmt.Sprintf("%d", m.grid.Len()))
	row("mass", fmt.Sprintf("%.2f", m.c.Sum()))
	row("range", fmt.Sprintf("%.2f .. %.2f", m.c.Min(), m.c.Max()))

	s.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return s.String()
}
