package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/engine"
	"github.com/vovakirdan/skyraid/internal/games/skyraid"
)

// Model is the Bubble Tea front end of one skyraid session. It forwards
// input to the engine controller and redraws the controller's latest
// snapshot at the frame rate; the simulation itself ticks on its own.
type Model struct {
	ctrl       *engine.Controller
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holdWindow time.Duration
	holdGen    int // Bumped by every flap press; stale releases are ignored
	quitting   bool
}

// NewModel creates a model that drives the given controller.
func NewModel(ctrl *engine.Controller, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holdWindow: ctrl.Config().Loop.HoldWindow(),
	}
}

// playRows leaves the last terminal row for the status line.
func playRows(height int) int {
	return core.Max(height-1, 1)
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isFireClick(msg) {
			m.ctrl.Press(core.ActionFire)
		}
		return m, nil

	case releaseMsg:
		if msg.gen == m.holdGen {
			m.ctrl.Release(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals report key presses only,
// so a flap press holds the control for the hold window and key auto-repeat
// keeps extending it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.ctrl.Hold(core.ActionFlap)
		m.holdGen++
		return m, releaseCmd(m.holdWindow, m.holdGen)
	case core.ActionFire:
		m.ctrl.Press(core.ActionFire)
	case core.ActionStart:
		m.ctrl.Press(core.ActionStart)
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	skyraid.Render(m.ctrl.Snapshot(), m.ctrl.Config().Playfield, m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skyraid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skyraid_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the latest committed snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	skyraid.Render(snap, m.ctrl.Config().Playfield, m.screen)
	return RenderScreen(m.screen) + "\n" + statusLine(snap, m.help.View(m.keys))
}

// IsQuitting reports whether the user asked to leave the session.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session and stops the
// controller when the program exits.
func Run(ctrl *engine.Controller, cfg core.RuntimeConfig) error {
	defer ctrl.Stop()

	p := tea.NewProgram(
		NewModel(ctrl, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
