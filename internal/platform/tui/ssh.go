package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
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

	"github.com/glidekit/flaptui/internal/engine"
	"github.com/glidekit/flaptui/internal/storage"
)

// ServerConfig holds configuration for the remote-play SSH server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g. ":23234").
	Address string

	// HostKeyPath is the path to the host key file. If empty, a key is
	// auto-generated at ~/.flaptui/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database shared by all players.
	DBPath string

	// IdleTimeout closes connections idle for this long.
	IdleTimeout time.Duration

	// FPS is the frame rate for remote sessions.
	FPS int

	// Tuning is the game tuning served to every session.
	Tuning engine.Tuning
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":23234",
		DBPath:      "~/.flaptui/scores.db",
		IdleTimeout: 30 * time.Minute,
		FPS:         60,
		Tuning:      engine.DefaultTuning(),
	}
}

// Server hosts the game over SSH via Wish. Each connection gets its own
// engine instance; scores land in the shared database.
type Server struct {
	config ServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewServer creates the SSH server.
func NewServer(cfg ServerConfig) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flap-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Remote play still works, best records just stay in memory.
	}

	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".flaptui", "host_key")
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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler builds a fresh game session for each SSH connection.
func (s *Server) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	opts := []engine.Option{}
	if s.store != nil {
		opts = append(opts, engine.WithRecordStore(s.store))
	}
	eng := engine.New(s.config.Tuning, rnd, opts...)
	eng.SetPlayfield(PlayfieldFor(pty.Window.Width, pty.Window.Height))

	model := NewModel(eng, s.store, s.config.FPS)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
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

// ListenAndServe starts the server and blocks until an interrupt.
func (s *Server) ListenAndServe() error {
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

// Shutdown gracefully stops the server and closes storage.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.config.Address
}
