// Package cli provides the Cobra command tree and dependency injection
// wiring for the edjb CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/resurgence-tools/edjb/internal/app"
	"github.com/resurgence-tools/edjb/internal/config"
	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/internal/scanner"
	"github.com/resurgence-tools/edjb/internal/store"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	ConfigDir string
	Config    *config.Manager
	Store     store.Store
	Saved     *store.Saved
	Scanner   *scanner.Scanner
	Host      app.Host
	Logger    *slog.Logger
	Now       func() time.Time
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies resolves the configuration directory, loads the
// settings and wires the stores and the local host.
func InitDependencies(configDir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir, err := config.ResolveDir(configDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}

	cfg := config.NewManager()
	if _, err := cfg.Load(dir); err != nil {
		return fmt.Errorf("%s: %w", filepath.Join(dir, defs.UserConfigYAML), err)
	}

	st := store.NewFileStore(dir, logger)
	deps = &Dependencies{
		ConfigDir: dir,
		Config:    cfg,
		Store:     st,
		Saved:     store.NewSaved(st, time.Now),
		Scanner:   scanner.New(logger),
		Host:      app.NewLocalHost(cfg, st, logger, os.Getenv(defs.EnvHelpURL)),
		Logger:    logger,
		Now:       time.Now,
	}
	logger.Debug("dependencies initialized", "config_dir", dir)
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger builds the CLI logger. An empty level discards everything.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
