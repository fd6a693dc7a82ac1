// Package tui provides a Bubble Tea terminal user interface for the triangle solver.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/triangle-solver/internal/config"
	"github.com/handiism/triangle-solver/internal/model"
	"github.com/handiism/triangle-solver/internal/render"
	"github.com/handiism/triangle-solver/internal/solver"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateEditing State = iota
	StateSaving
)

// Level is the severity of a log entry.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   Level
}

// field indexes of the inputs
const (
	fieldA1 = iota
	fieldA2
	fieldB1
	fieldB2
	fieldPath
	fieldCount
)

var fieldLabels = [fieldCount]string{"a1", "a2", "b1", "b2", "figure"}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   [fieldCount]textinput.Model
	focus    int
	spinner  spinner.Model
	settings *config.Settings
	logs     []LogEntry

	angles       model.AngleSet
	solution     *solver.Solution
	construction *model.Construction
	err          error

	annotate bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 12
		inputs[i] = ti
	}
	inputs[fieldPath].CharLimit = 260
	inputs[fieldPath].Width = 40
	inputs[fieldPath].Placeholder = "triangle.png"

	figurePath := settings.FigurePath
	if figurePath == "" {
		figurePath = "triangle.png"
	}
	inputs[fieldPath].SetValue(figurePath)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		state:    StateEditing,
		inputs:   inputs,
		spinner:  sp,
		settings: settings,
		logs:     make([]LogEntry, 0),
		annotate: settings.Annotate,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.setAngles(settings.ToAngleSet())
	m.inputs[fieldA1].Focus()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// SaveDoneMsg is sent when a figure has been written.
	SaveDoneMsg struct {
		Path string
		Err  error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit

		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case "ctrl+a":
			m.annotate = !m.annotate
			return m, nil

		case "ctrl+r":
			m.setAngles(model.DefaultAngleSet())
			m.addLog("Restored default angles", LevelInfo)
			return m, nil

		case "ctrl+s":
			if m.state == StateEditing {
				if m.construction == nil {
					m.addLog("Nothing to save: fix the angles first", LevelWarning)
					return m, nil
				}
				m.state = StateSaving
				return m, tea.Batch(m.saveFigure(), m.spinner.Tick)
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case SaveDoneMsg:
		m.state = StateEditing
		if msg.Err != nil {
			m.addLog(fmt.Sprintf("Error saving figure: %v", msg.Err), LevelError)
		} else {
			m.addLog(fmt.Sprintf("Saved figure %s", msg.Path), LevelSuccess)
		}
	}

	// Update the focused input and solve again
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	cmds = append(cmds, cmd)
	m.recompute()

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) setAngles(set model.AngleSet) {
	values := [4]float64{set.A1, set.A2, set.B1, set.B2}
	for i, v := range values {
		m.inputs[i].SetValue(strconv.FormatFloat(v, 'f', -1, 64))
	}
	m.recompute()
}

// recompute parses the angle inputs and solves the problem.
func (m *Model) recompute() {
	m.solution = nil
	m.construction = nil
	m.err = nil

	var values [4]float64
	for i := range values {
		text := strings.TrimSpace(m.inputs[i].Value())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			m.err = fmt.Errorf("%s: %q is not a number", fieldLabels[i], text)
			return
		}
		values[i] = v
	}
	m.angles = model.NewAngleSet(values[0], values[1], values[2], values[3])

	if err := m.angles.Validate(); err != nil {
		m.err = err
		return
	}

	sol, err := solver.Analyze(m.angles)
	if err != nil {
		m.err = err
		return
	}
	c, err := solver.DerivePoints(m.angles)
	if err != nil {
		m.err = err
		return
	}
	m.solution = &sol
	m.construction = &c
}

func (m *Model) addLog(message string, level Level) {
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	// Keep only last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("△ Triangle Solver"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Find the angle x = BMC from a1, a2, b1, b2"))
	b.WriteString("\n\n")

	b.WriteString(m.viewInputs())
	b.WriteString("\n")
	b.WriteString(m.viewResult())
	b.WriteString("\n")

	if m.state == StateSaving {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Saving figure..."))
		b.WriteString("\n")
	}

	// Logs
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInputs() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Angles (degrees):"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		label := fmt.Sprintf("  %-7s", fieldLabels[i])
		if i == m.focus {
			label = infoStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if i == fieldB2 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	annotateCheck := "[ ]"
	if m.annotate {
		annotateCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Annotate figure (ctrl+a)\n", annotateCheck))

	return b.String()
}

func (m Model) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("✗ %v", m.err)) + "\n"
	}
	if m.solution == nil || m.construction == nil {
		return ""
	}

	c := m.construction
	body := fmt.Sprintf(
		"%s\n\n"+
			"γ2 = %.4f°\n"+
			"A = %s\n"+
			"B = %s\n"+
			"C = %s\n"+
			"M = %s",
		answerStyle.Render(fmt.Sprintf("x = %.4f°", m.solution.X)),
		m.solution.Gamma2Deg(),
		c.A, c.B, c.C, c.M,
	)
	return boxStyle.Render(body) + "\n"
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case LevelError:
			style = errorStyle
			prefix = "✗"
		case LevelWarning:
			style = warningStyle
			prefix = "!"
		case LevelSuccess:
			style = successStyle
			prefix = "✓"
		default:
			style = infoStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateSaving:
		return "esc: quit"
	default:
		return "tab: next field • ctrl+s: save figure • ctrl+a: annotate • ctrl+r: defaults • esc: quit"
	}
}

// saveFigure renders the current construction in the background.
func (m Model) saveFigure() tea.Cmd {
	c := *m.construction
	x := m.solution.X
	path := strings.TrimSpace(m.inputs[fieldPath].Value())

	opts := m.settings.ToRenderOptions()
	opts.Annotate = m.annotate
	showSolution := m.settings.ShowSolution
	ctx := m.ctx

	return func() tea.Msg {
		if path == "" {
			return SaveDoneMsg{Err: fmt.Errorf("no figure path")}
		}
		var solution *float64
		if showSolution {
			solution = &x
		}
		err := render.NewRenderer(opts).Save(ctx, c, solution, path)
		return SaveDoneMsg{Path: path, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
