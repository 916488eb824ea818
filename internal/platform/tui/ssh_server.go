package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/skydive/internal/audio"
	"github.com/vovakirdan/skydive/internal/core"
	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/metrics"
	"github.com/vovakirdan/skydive/internal/registry"
	"github.com/vovakirdan/skydive/internal/storage"
	"github.com/vovakirdan/skydive/internal/systems"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.skydive/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Game tunes every session's gameplay.
	Game game.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        game.DefaultConfig(),
	}
}

// ServerDeps are the shared services every SSH session reports into.
// Any of them may be nil.
type ServerDeps struct {
	Store   *storage.Store
	Stats   *systems.StatsManager
	Metrics *metrics.Collector
	Logger  *log.Logger
}

// SSHServer wraps a Wish SSH server hosting one dive per connection.
type SSHServer struct {
	config SSHServerConfig
	deps   ServerDeps
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, deps ServerDeps) (*SSHServer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skydive-ssh",
		})
		deps.Logger = logger
	}

	srv := &SSHServer{
		config: cfg,
		deps:   deps,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".skydive", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.config.Game, s.deps, cfg, sshSession.User())
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events and tracks live sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		if s.deps.Metrics != nil {
			s.deps.Metrics.SessionStarted()
			defer s.deps.Metrics.SessionEnded()
		}
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Shared stores are owned by the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages one connection's flow: menu -> dive -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	gameCfg  game.Config
	deps     ServerDeps
	config   core.RuntimeConfig
	username string
	menu     MenuModel
	dive     *Model
	quitting bool
	err      error
}

// NewSessionModel creates a new session model.
func NewSessionModel(gameCfg game.Config, deps ServerDeps, cfg core.RuntimeConfig, username string) SessionModel {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	deps.Logger = deps.Logger.With("user", username)

	return SessionModel{
		gameCfg:  gameCfg,
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(deps.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.dive != nil {
		return m.updateDive(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the level picker is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The stats board runs as its own program locally; over SSH Tab just
	// refreshes the picker's high scores.
	if m.menu.WantsStats() {
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, nil
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	m.config = m.menu.Config()
	dive, err := m.newDive(selected.Level)
	if err != nil {
		m.deps.Logger.Error("cannot start dive", "level", selected.Level, "err", err)
		m.err = err
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, nil
	}
	m.dive = &dive
	return m, m.dive.Init()
}

// newDive builds a fresh manager for level and wraps it in an embedded Model.
func (m SessionModel) newDive(level string) (Model, error) {
	opts := []game.Option{
		game.WithSeed(time.Now().UnixNano()),
		game.WithLogger(m.deps.Logger),
		game.WithSound(&audio.Nop{}),
	}
	if m.deps.Metrics != nil {
		opts = append(opts, game.WithObserver(m.deps.Metrics))
	}

	bounds := game.Bounds{Width: float32(m.config.ScreenW), Height: float32(m.config.ScreenH)}
	mgr, err := registry.NewManager(m.gameCfg, level, bounds, opts...)
	if err != nil {
		return Model{}, err
	}

	dive := NewModel(Session{
		Manager: mgr,
		Store:   m.deps.Store,
		Stats:   m.deps.Stats,
		Logger:  m.deps.Logger,
	}, m.config)
	dive.embedded = true
	return dive, nil
}

// updateDive handles updates while a dive is running.
func (m SessionModel) updateDive(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.dive.Update(msg)
	if dive, ok := newModel.(Model); ok {
		m.dive = &dive
	}

	if m.dive.BackToMenu() {
		m.dive = nil
		m.menu = NewMenuModel(m.deps.Store, m.config)
		return m, m.menu.Init()
	}

	if m.dive.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.dive != nil {
		return m.dive.View()
	}
	if m.err != nil {
		return m.menu.View() + "\n" + centerText("error: "+m.err.Error(), m.config.ScreenW)
	}
	return m.menu.View()
}
