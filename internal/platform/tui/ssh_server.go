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

	"github.com/vovakirdan/treasure-map/internal/catalog"
	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.treasuremap/host_key.
	HostKeyPath string

	// DBPath is the path to the run archive. Empty disables archiving.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TurnRate is the initial playback speed in turns per second.
	TurnRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.treasuremap/runs.db",
		IdleTimeout: 30 * time.Minute,
		TurnRate:    core.DefaultConfig().TurnRate,
	}
}

// SSHServer wraps a Wish SSH server offering the scenario menu and playback.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	catalog *catalog.Catalog
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server serving scenarios from c.
// A nil logger gets a default one.
func NewSSHServer(cfg SSHServerConfig, c *catalog.Catalog, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "treasuremap-ssh",
		})
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open run archive", "error", err)
			// Continue without storage
			store = nil
		}
	}

	srv := &SSHServer{
		config:  cfg,
		catalog: c,
		store:   store,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".treasuremap", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
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
		TurnRate: s.config.TurnRate,
	}

	model := NewSessionModel(s.catalog, s.store, cfg, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "scenarios", s.catalog.Len())

	// Setup signal handling for graceful shutdown
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

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> playback -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	catalog  *catalog.Catalog
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	menu     MenuModel
	playback *PlaybackModel
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(c *catalog.Catalog, store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		catalog:  c,
		store:    store,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(c, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.playback != nil:
		return m.updatePlayback(msg)
	case m.history != nil:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		h := NewHistoryModel(m.store, ViewRecentRuns, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		return m, m.history.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		pb := NewPlaybackModel(sel.ID, sel.World, m.store, m.config).WithClipboard(false)
		m.playback = &pb
		return m, m.playback.Init()
	}

	return m, cmd
}

// updatePlayback handles updates when a scenario is playing.
func (m SessionModel) updatePlayback(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.playback.Update(msg)
	if pb, ok := newModel.(PlaybackModel); ok {
		m.playback = &pb
	}

	if m.playback.BackToMenu() {
		m.playback = nil
		m.menu = NewMenuModel(m.catalog, m.config)
		return m, m.menu.Init()
	}

	if m.playback.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when the run history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if h, ok := newModel.(HistoryModel); ok {
		m.history = &h
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Back quits the history program when run alone; here it returns to the menu.
	if m.history.IsGoingBack() {
		m.history = nil
		m.menu = NewMenuModel(m.catalog, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.playback != nil:
		return m.playback.View()
	case m.history != nil:
		return m.history.View()
	}

	return m.menu.View()
}
