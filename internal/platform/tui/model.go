package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/storage"
	"github.com/vovakirdan/skydive/internal/systems"
)

// Session bundles what a Model needs to run one player's dive.
// Store, Stats and Logger are optional.
type Session struct {
	Manager *game.Manager
	Store   *storage.Store
	Stats   *systems.StatsManager
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving a game.Manager.
type Model struct {
	session  Session
	screen   *core.Screen
	renderer *TerminalRenderer
	keys     *KeyMapper
	config   core.RuntimeConfig
	embedded bool // hosted inside another model; never sends tea.Quit for back
	quitting bool
	back     bool
	recorded bool // run history saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s Session, cfg core.RuntimeConfig) Model {
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		session:  s,
		screen:   screen,
		renderer: NewTerminalRenderer(screen),
		keys:     NewKeyMapper(),
		config:   cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg); ok {
			m.session.Manager.HandleInput(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mgr := m.session.Manager
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if snap := mgr.State(); snap.Over || snap.Paused {
			m.back = true
			mgr.Sound().StopMusic()
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		mgr.Sound().StopMusic()
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		if mgr.State().Over {
			m.restart()
		} else {
			mgr.Start()
		}
	case core.ActionPause:
		mgr.TogglePause()
	case core.ActionRestart:
		if mgr.State().Over {
			m.restart()
		}
	case core.ActionMute:
		muted := mgr.Sound().ToggleMute()
		m.session.Logger.Debug("audio toggled", "muted", muted)
	case core.ActionNone:
		if ev, ok := m.keys.MapSteer(msg, mgr.Player().Center()); ok {
			mgr.HandleInput(ev)
		}
	}

	return m, nil
}

func (m *Model) restart() {
	m.session.Manager.Restart()
	m.recorded = false
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Manager.SetBounds(game.Bounds{Width: float32(msg.Width), Height: float32(msg.Height)})
	return m, nil
}

// handleTick advances the simulation one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	mgr := m.session.Manager
	mgr.UpdateAll(m.config.DeltaTime())

	if mgr.State().Over && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run to history and lifetime stats.
// Failures are logged; the session continues regardless.
func (m *Model) recordRun() {
	mgr := m.session.Manager
	summary := mgr.Score().Summary()

	if m.session.Stats != nil {
		if err := m.session.Stats.RecordRun(summary); err != nil {
			m.session.Logger.Warn("cannot record stats", "err", err)
		}
	}
	if m.session.Store != nil {
		level, _ := mgr.Level()
		id, err := m.session.Store.SaveRun(storage.NewRunRecord(level.Name, summary, mgr.RunTime()))
		if err != nil {
			m.session.Logger.Warn("cannot save run", "err", err)
			return
		}
		m.session.Logger.Debug("run saved", "id", id, "score", summary.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Manager.DrawAll(m.renderer)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skydive", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	level, _ := m.session.Manager.Level()
	filename := fmt.Sprintf("%s_%s.txt", level.Name, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the dive for the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.session.Manager.DrawAll(m.renderer)
	return m.renderer.Frame()
}

// Run starts the Bubble Tea program for the session.
// Returns true if the user wants to go back to the menu.
func Run(s Session, cfg core.RuntimeConfig, opts ...tea.ProgramOption) (goBack bool, err error) {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)
	finalModel, err := tea.NewProgram(NewModel(s, cfg), opts...).Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
