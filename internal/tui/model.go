// Package tui implements an interactive solution browser on bubbletea.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
	"svw.info/daygrid/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// engineOrder fixes the cycle order for the 'e' key.
var engineOrder = []domain.EngineKind{domain.EngineBacktrack, domain.EngineDLX, domain.EngineSAT}

type mode int

const (
	modeBrowse mode = iota
	modeInput
)

// solvedMsg delivers an asynchronous solve result.
type solvedMsg struct {
	date   domain.Date
	engine domain.EngineKind
	sols   []domain.Solution
	stats  ports.Stats
	err    error
}

type Model struct {
	tilers map[domain.EngineKind]ports.Tiler
	engine int // index into engineOrder

	date  domain.Date
	sols  []domain.Solution
	stats ports.Stats
	idx   int

	mode    mode
	input   textinput.Model
	solving bool
	err     error

	width int
}

func NewModel(tilers map[domain.EngineKind]ports.Tiler, start domain.Date) Model {
	ti := textinput.New()
	ti.Placeholder = "month day, e.g. 8 21"
	ti.CharLimit = 8
	ti.Width = 24
	return Model{
		tilers:  tilers,
		date:    start,
		input:   ti,
		solving: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.solveCmd()
}

// solveCmd runs the current engine for the current date off the update
// loop and reports back as a solvedMsg.
func (m Model) solveCmd() tea.Cmd {
	date := m.date
	kind := engineOrder[m.engine]
	tiler := m.tilers[kind]
	return func() tea.Msg {
		a, b := date.Cells()
		sols, stats, err := tiler.Enumerate(context.Background(), a, b)
		return solvedMsg{date: date, engine: kind, sols: sols, stats: stats, err: err}
	}
}

func parseJump(s string) (domain.Date, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return domain.Date{}, fmt.Errorf("%w: want \"month day\"", domain.ErrInvalidDate)
	}
	month, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: month %q", domain.ErrInvalidDate, fields[0])
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: day %q", domain.ErrInvalidDate, fields[1])
	}
	return domain.NewDate(month, day)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case solvedMsg:
		m.solving = false
		m.err = msg.err
		m.date = msg.date
		m.sols = msg.sols
		m.stats = msg.stats
		m.idx = 0
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.input.Blur()
		d, err := parseJump(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.date = d
		m.solving = true
		return m, m.solveCmd()
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.idx > 0 {
			m.idx--
		}
	case "right", "l":
		if m.idx < len(m.sols)-1 {
			m.idx++
		}
	case "g":
		m.mode = modeInput
		m.err = nil
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		m.engine = (m.engine + 1) % len(engineOrder)
		m.solving = true
		return m, m.solveCmd()
	}
	return m, nil
}

func (m Model) View() string {
	var sections []string
	sections = append(sections, titleStyle.Render("daygrid · "+m.date.String()))

	switch {
	case m.solving:
		sections = append(sections, boardStyle.Render("solving..."))
	case m.err != nil:
		sections = append(sections, errStyle.Render(m.err.Error()))
	case len(m.sols) == 0:
		sections = append(sections, boardStyle.Render("No solution found!"))
	default:
		a, b := m.date.Cells()
		sections = append(sections, boardStyle.Render(render.Color(m.sols[m.idx], a, b)))
	}

	if !m.solving && m.err == nil {
		sections = append(sections, statusStyle.Render(fmt.Sprintf(
			"solution %d/%d · engine %s · %d nodes · %s",
			min(m.idx+1, len(m.sols)), len(m.sols), engineOrder[m.engine],
			m.stats.Nodes, m.stats.Duration.Round(time.Millisecond),
		)))
	}

	if m.mode == modeInput {
		sections = append(sections, "go to date: "+m.input.View())
	}
	sections = append(sections, helpStyle.Render("←/→ browse · g go to date · e engine · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
