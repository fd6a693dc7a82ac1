package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/triangle-solver/internal/config"
	"github.com/handiism/triangle-solver/internal/model"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func clearField(t *testing.T, m Model) Model {
	t.Helper()
	for range m.inputs[m.focus].Value() {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	return m
}

func TestNewModel_SolvesDefaults(t *testing.T) {
	m := NewModel(nil)
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.solution == nil || math.Abs(m.solution.X-140) > 1e-9 {
		t.Fatalf("solution = %+v, want x = 140", m.solution)
	}
	if !strings.Contains(m.View(), "x = 140.0000°") {
		t.Error("view should show the solved angle")
	}
}

func TestModel_EditAngle(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	// a1: 10 -> 20 gives the mirrored default problem's partner
	m = clearField(t, m)
	m = typeText(t, m, "20")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = clearField(t, m)
	m = typeText(t, m, "20")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = clearField(t, m)
	m = typeText(t, m, "10")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = clearField(t, m)
	m = typeText(t, m, "30")

	if m.angles != model.NewAngleSet(20, 20, 10, 30) {
		t.Fatalf("angles = %v", m.angles)
	}
	if m.solution == nil || math.Abs(m.solution.X-70) > 1e-9 {
		t.Errorf("solution = %+v, want x = 70", m.solution)
	}
}

func TestModel_InvalidInput(t *testing.T) {
	m := NewModel(nil)

	m = clearField(t, m)
	m = typeText(t, m, "abc")
	if m.err == nil || m.solution != nil {
		t.Fatal("non-numeric angle should produce an error")
	}
	if !strings.Contains(m.View(), "not a number") {
		t.Error("view should show the error")
	}

	m = clearField(t, m)
	m = typeText(t, m, "170")
	if m.err == nil {
		t.Error("angle sum over 180 should produce an error")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.err != nil || m.angles != model.DefaultAngleSet() {
		t.Errorf("ctrl+r should restore defaults, got %v (err %v)", m.angles, m.err)
	}
}

func TestModel_ToggleAnnotate(t *testing.T) {
	m := NewModel(nil)
	if m.annotate {
		t.Fatal("annotate should start from settings (false)")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	if !m.annotate {
		t.Error("ctrl+a should enable annotation")
	}
	if !strings.Contains(m.View(), "[×] Annotate") {
		t.Error("view should show annotation enabled")
	}
}

func TestModel_FocusCycles(t *testing.T) {
	m := NewModel(nil)
	for i := 0; i < fieldCount; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.focus != fieldA1 {
		t.Errorf("focus = %d after a full cycle, want %d", m.focus, fieldA1)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldPath {
		t.Errorf("focus = %d after shift+tab, want %d", m.focus, fieldPath)
	}
}

func TestModel_SaveFigure(t *testing.T) {
	settings := config.DefaultSettings()
	settings.FigureWidth, settings.FigureHeight = 200, 150
	settings.FigureMargin = 10
	settings.FigurePath = filepath.Join(t.TempDir(), "tui.png")

	m := NewModel(settings)
	msg := m.saveFigure()()

	done, ok := msg.(SaveDoneMsg)
	if !ok {
		t.Fatalf("saveFigure returned %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("save failed: %v", done.Err)
	}
	if _, err := os.Stat(settings.FigurePath); err != nil {
		t.Errorf("figure not written: %v", err)
	}

	m = update(t, m, done)
	if m.state != StateEditing || len(m.logs) != 1 || m.logs[0].Level != LevelSuccess {
		t.Errorf("state = %v, logs = %+v", m.state, m.logs)
	}
}

func TestModel_SaveWithoutSolution(t *testing.T) {
	m := NewModel(nil)
	m = clearField(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.state != StateEditing {
		t.Error("saving an invalid problem should not start")
	}
	if len(m.logs) == 0 || m.logs[len(m.logs)-1].Level != LevelWarning {
		t.Errorf("expected a warning log, got %+v", m.logs)
	}
}
