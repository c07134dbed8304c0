package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/ringflight/internal/config"
	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/registry"
	"github.com/vovakirdan/ringflight/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.ringflight/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Course is the course every session flies.
	Course string

	// Flight is the base configuration each session's course is built from.
	Flight config.FlightConfig

	// TickRate is the simulation rate per session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Course:      "classic",
		Flight:      config.DefaultFlightConfig(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server. Every session flies its own craft and
// keeps its own run journal, closed when the session ends.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// journalKey stores a session's journal in its ssh.Context.
type journalKey struct{}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("ssh")

	if !registry.Exists(cfg.Course) {
		return nil, fmt.Errorf("unknown course %q", cfg.Course)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".ringflight", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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

// teaHandler creates a flight session for each SSH connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	model, journal, err := s.newSession(sess.User(), pty.Window.Width, pty.Window.Height)
	if err != nil {
		s.logger.Error("cannot create course", "course", s.config.Course, "error", err)
		return nil, nil
	}
	if journal != nil {
		sess.Context().SetValue(journalKey{}, journal)
	}

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// newSession builds the model for one connection along with the journal
// only that connection sees. A journal that fails to open leaves history
// disabled for the session; the returned journal is nil then.
func (s *SSHServer) newSession(user string, width, height int) (Model, *storage.Journal, error) {
	game, err := registry.Create(s.config.Course, s.config.Flight)
	if err != nil {
		return Model{}, nil, err
	}

	journal, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		s.logger.Warn("could not open run journal", "user", user, "error", err)
		journal = nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.config.TickRate,
	}

	model := NewModel(game, cfg, Options{
		Journal:   journal,
		Logger:    s.logger.With("user", user),
		Pilot:     user,
		HoldTicks: s.config.Flight.Controls.HoldTicks,
	})
	return model, journal, nil
}

// closeSessionJournal drops the journal of a finished session.
func (s *SSHServer) closeSessionJournal(ctx ssh.Context) {
	journal, ok := ctx.Value(journalKey{}).(*storage.Journal)
	if !ok {
		return
	}
	if err := journal.Close(); err != nil {
		s.logger.Warn("could not close run journal", "error", err)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.closeSessionJournal(sess.Context())
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.Addr(), "course", s.config.Course)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
