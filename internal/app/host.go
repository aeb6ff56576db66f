package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/resurgence-tools/edjb/internal/config"
	"github.com/resurgence-tools/edjb/internal/export"
	"github.com/resurgence-tools/edjb/internal/scanner"
	"github.com/resurgence-tools/edjb/internal/store"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// ErrNoHelpURL indicates no external help page is configured.
var ErrNoHelpURL = errors.New("app: no help URL configured")

// Host is the privileged side of the builder: file system, persisted
// stores and the desktop. The session workflow reaches the outside
// world only through it.
type Host interface {
	// OpenFolder scans a data folder chosen by the user.
	OpenFolder(ctx context.Context, dir string) (*scanner.Listing, error)
	// SaveFiles writes each file to the path chosen for it.
	SaveFiles(ctx context.Context, files []export.File, chooser export.PathChooser) ([]export.WriteResult, error)
	// OpenHelp opens the external help page.
	OpenHelp(ctx context.Context) error
	GetConfig(ctx context.Context) (models.Settings, error)
	SetConfig(ctx context.Context, s models.Settings) error
	GetSaved(ctx context.Context, key string) ([]models.SavedJSON, error)
	SetSaved(ctx context.Context, key string, list []models.SavedJSON) error
	Close() error
}

// BrowserFunc opens url in the user's browser.
type BrowserFunc func(ctx context.Context, url string) error

// LocalHost implements Host on the local machine.
type LocalHost struct {
	scanner *scanner.Scanner
	writer  *export.Writer
	config  *config.Manager
	store   store.Store
	browser BrowserFunc
	helpURL string
}

// NewLocalHost wires a Host from a loaded settings manager and a saved
// builder store. An empty helpURL disables OpenHelp.
func NewLocalHost(cfg *config.Manager, st store.Store, logger *slog.Logger, helpURL string) *LocalHost {
	return &LocalHost{
		scanner: scanner.New(logger),
		writer:  export.NewWriter(logger),
		config:  cfg,
		store:   st,
		browser: OpenBrowser,
		helpURL: helpURL,
	}
}

// WithBrowser replaces the browser opener.
func (h *LocalHost) WithBrowser(b BrowserFunc) *LocalHost {
	h.browser = b
	return h
}

// OpenFolder implements Host.
func (h *LocalHost) OpenFolder(ctx context.Context, dir string) (*scanner.Listing, error) {
	return h.scanner.Scan(ctx, dir)
}

// SaveFiles implements Host.
func (h *LocalHost) SaveFiles(ctx context.Context, files []export.File, chooser export.PathChooser) ([]export.WriteResult, error) {
	return h.writer.WriteAll(ctx, files, chooser)
}

// OpenHelp implements Host.
func (h *LocalHost) OpenHelp(ctx context.Context) error {
	if h.helpURL == "" {
		return ErrNoHelpURL
	}
	return h.browser(ctx, h.helpURL)
}

// GetConfig implements Host.
func (h *LocalHost) GetConfig(_ context.Context) (models.Settings, error) {
	return h.config.Get(), nil
}

// SetConfig implements Host. The settings are validated and persisted.
func (h *LocalHost) SetConfig(_ context.Context, s models.Settings) error {
	if err := h.config.Set(s); err != nil {
		return err
	}
	return h.config.Save()
}

// GetSaved implements Host.
func (h *LocalHost) GetSaved(ctx context.Context, key string) ([]models.SavedJSON, error) {
	return h.store.Get(ctx, key)
}

// SetSaved implements Host.
func (h *LocalHost) SetSaved(ctx context.Context, key string, list []models.SavedJSON) error {
	return h.store.Set(ctx, key, list)
}

// Close implements Host.
func (h *LocalHost) Close() error { return nil }

// OpenBrowser opens url with the platform opener.
func OpenBrowser(ctx context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", url)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// hostStore exposes the host's saved builder calls as a store.Store.
type hostStore struct {
	host Host
}

func (s hostStore) Get(ctx context.Context, key string) ([]models.SavedJSON, error) {
	return s.host.GetSaved(ctx, key)
}

func (s hostStore) Set(ctx context.Context, key string, list []models.SavedJSON) error {
	return s.host.SetSaved(ctx, key, list)
}
