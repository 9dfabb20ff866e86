package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/engine"
	"github.com/vovakirdan/skyraid/internal/games/skyraid"
)

func newTestModel(t *testing.T) (Model, *engine.Controller) {
	t.Helper()
	cfg := config.Default()
	cfg.Obstacles.TargetCount = 0
	cfg.Obstacles.Initial = nil
	cfg.Enemy.SpawnChance = 0

	ctrl := engine.NewController(engine.Options{
		Config: cfg,
		Seed:   1,
		Logger: log.New(io.Discard),
		Manual: true,
	})
	t.Cleanup(ctrl.Stop)
	return NewModel(ctrl, core.DefaultConfig()), ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestStartKeyStartsRun(t *testing.T) {
	m, ctrl := newTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if p := ctrl.Phase(); p != skyraid.PhaseRunning {
		t.Errorf("phase = %s, expected running", p)
	}
}

func TestFlapHoldAndRelease(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('w'))
	if cmd == nil {
		t.Fatal("flap should schedule a release")
	}
	firstGen := m.holdGen

	// Auto-repeat refreshes the hold, so the first release is stale.
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, releaseMsg{gen: firstGen})

	cfg := ctrl.Config()
	ctrl.Advance()
	want := cfg.Physics.FlapImpulse + cfg.Physics.Gravity
	if v := ctrl.Snapshot().Character.VelY; v != want {
		t.Fatalf("velocity = %f, expected %f while held", v, want)
	}

	update(t, m, releaseMsg{gen: m.holdGen})
	ctrl.Advance()
	want += cfg.Physics.Gravity
	if v := ctrl.Snapshot().Character.VelY; v != want {
		t.Errorf("velocity = %f, expected %f after release", v, want)
	}
}

func TestClickFires(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	ctrl.Advance()

	if n := len(ctrl.Snapshot().Projectiles); n != 1 {
		t.Errorf("projectiles = %d, expected 1", n)
	}
}

func TestQuitStopsController(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
	if ctrl.Advance() {
		t.Error("controller should not tick after quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestViewShowsSnapshot(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "SKYRAID") {
		t.Error("idle view should show the title")
	}
	if !strings.Contains(view, "IDLE") {
		t.Error("status line should show the phase")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}
