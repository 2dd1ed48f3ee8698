// Package tui is the interactive terminal dispersion explorer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/optmat/optmat/internal/catalog"
	"github.com/optmat/optmat/internal/engine"
	"github.com/optmat/optmat/internal/optics"
	"github.com/optmat/optmat/internal/viz"
)

var (
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	bright = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	pink   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	key    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

const (
	stateMenu = iota
	stateView
)

var quantityOrder = []string{"n", "ng", "vg", "gvd"}

type model struct {
	state, cursor int
	cat           *catalog.Catalog
	eng           *engine.Engine
	names         []string

	selected string
	disp     optics.DispersionModel
	minUm    float64
	maxUm    float64
	samples  int
	quantity int
	curve    *engine.Curve
	curveErr error
	pos      int

	width, height int
}

func NewExplorer() model {
	cat := catalog.New()
	return model{
		cat:     cat,
		eng:     engine.New(),
		names:   cat.Names(),
		minUm:   1.2,
		maxUm:   1.7,
		samples: 120,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateView:
		return m.viewKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		disp, err := m.cat.Get(m.selected)
		if err != nil {
			m.curveErr = err
			return m, nil
		}
		m.disp = disp
		m.state = stateView
		m.pos = m.samples / 2
		m.resweep()
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "left", "h":
		if m.pos > 0 {
			m.pos--
		}
	case "right", "l":
		if m.curve != nil && m.pos < m.curve.Len()-1 {
			m.pos++
		}
	case "tab", "t":
		m.quantity = (m.quantity + 1) % len(quantityOrder)
	case "[":
		// zoom in around the band center
		span := m.maxUm - m.minUm
		m.minUm += span * 0.125
		m.maxUm -= span * 0.125
		m.resweep()
	case "]":
		span := m.maxUm - m.minUm
		m.minUm -= span * 0.25
		m.maxUm += span * 0.25
		if m.minUm < 0.21 {
			m.minUm = 0.21
		}
		if m.maxUm > 19.9 {
			m.maxUm = 19.9
		}
		m.resweep()
	case ",", "<":
		shift := (m.maxUm - m.minUm) * 0.1
		if m.minUm-shift >= 0.21 {
			m.minUm -= shift
			m.maxUm -= shift
			m.resweep()
		}
	case ".", ">":
		shift := (m.maxUm - m.minUm) * 0.1
		if m.maxUm+shift <= 19.9 {
			m.minUm += shift
			m.maxUm += shift
			m.resweep()
		}
	}
	return m, nil
}

func (m *model) resweep() {
	min := optics.Wavelength(m.minUm * 1e-6)
	max := optics.Wavelength(m.maxUm * 1e-6)
	m.curve, m.curveErr = m.eng.ParallelSweep(m.disp, min, max, m.samples)
	if m.curve != nil && m.pos >= m.curve.Len() {
		m.pos = m.curve.Len() - 1
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateView:
		return m.viewCurve()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + accent.Render("OPTMAT") + "\n")
	b.WriteString("    " + dim.Render("optical material explorer") + "\n")
	b.WriteString("    " + dim.Render("─────────────────────────") + "\n\n")

	for i, name := range m.names {
		desc, _ := m.cat.Describe(name)
		if len(desc) > 42 {
			desc = desc[:39] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				accent.Render("▸"),
				bright.Render(fmt.Sprintf("%-14s", name)),
				pink.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				dim.Render(fmt.Sprintf("  %-14s", name)),
				dimmer.Render(desc)))
		}
	}

	b.WriteString("\n    " + key.Render("j/k") + dim.Render(" navigate  ") +
		key.Render("enter") + dim.Render(" select  ") +
		key.Render("q") + dim.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewCurve() string {
	var b strings.Builder

	desc, _ := m.cat.Describe(m.selected)
	b.WriteString("\n  " + accent.Render(strings.ToUpper(m.selected)) + "  " + dim.Render(desc) + "\n\n")

	if m.curveErr != nil {
		b.WriteString("  " + viz.Warn.Render("sweep failed: "+m.curveErr.Error()) + "\n")
		b.WriteString("  " + dim.Render("adjust the band with [ ] , . or press esc") + "\n")
		return b.String()
	}

	width := m.width - 16
	if width < 30 {
		width = 30
	}
	height := m.height - 12
	if height < 6 {
		height = 6
	}

	chart, err := viz.Plot(m.selected, m.curve, quantityOrder[m.quantity], width, height)
	if err != nil {
		b.WriteString("  " + viz.Warn.Render(err.Error()) + "\n")
		return b.String()
	}
	b.WriteString(chart + "\n\n")

	i := m.pos
	wl := m.curve.Wavelengths[i] * 1e6
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s   %s %s   %s %s\n",
		viz.Label.Render("λ"), viz.Value.Render(fmt.Sprintf("%.4f µm", wl)),
		viz.Label.Render("n"), viz.Value.Render(fmt.Sprintf("%.5f", m.curve.Index[i])),
		viz.Label.Render("ng"), viz.Value.Render(fmt.Sprintf("%.5f", m.curve.GroupIndex[i])),
		viz.Label.Render("vg"), viz.Value.Render(fmt.Sprintf("%.4e m/s", m.curve.GroupVelocity[i])),
		viz.Label.Render("GVD"), viz.Value.Render(fmt.Sprintf("%.4e s²/m", m.curve.GVD[i]))))

	b.WriteString("\n  " + key.Render("h/l") + dim.Render(" move cursor  ") +
		key.Render("tab") + dim.Render(" quantity  ") +
		key.Render("[ ]") + dim.Render(" zoom  ") +
		key.Render(", .") + dim.Render(" pan  ") +
		key.Render("esc") + dim.Render(" back") + "\n")
	return b.String()
}

// Run starts the explorer in the alternate screen.
func Run() error {
	return tea.NewProgram(NewExplorer(), tea.WithAltScreen()).Start()
}
