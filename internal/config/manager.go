package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/internal/fsutil"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// managerState represents the lifecycle state of the Manager.
type managerState int

const (
	stateUninitialized managerState = iota
	stateInitialized
)

// Manager provides thread-safe settings management.
// It must be initialized via Load() before use.
//
// The values read from the file and the environment overlay are kept
// apart: Get returns the overlaid view, Save writes only the file values.
type Manager struct {
	mu       sync.RWMutex
	settings *models.Settings
	env      envOverlay
	dir      string
	written  bool
	state    managerState
	loader   *Loader
}

// NewManager creates a new Manager instance in uninitialized state.
func NewManager() *Manager {
	return &Manager{
		loader: NewLoader(),
		state:  stateUninitialized,
	}
}

// Load reads the settings from configDir. It merges file values with
// compiled defaults and reads the environment variable overrides. The
// overlaid settings are validated before being stored.
func (m *Manager) Load(configDir string) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.loader.Load(configDir)
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	// Environment variables have higher priority than the file.
	env := readEnvOverlay()
	effective := env.apply(*s)
	if err := Validate(&effective); err != nil {
		return models.Settings{}, err
	}

	m.settings = s
	m.env = env
	m.written = false
	m.dir = filepath.Clean(configDir)
	m.state = stateInitialized

	return effective, nil
}

// Get returns a copy of the current settings with the environment
// overlay applied, or defaults if the manager has not been loaded.
func (m *Manager) Get() models.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return *NewDefaultSettings()
	}
	return m.env.apply(*m.settings)
}

// Set replaces the in-memory settings after validation. Fields overridden
// by the environment and left at the overridden value keep their file
// value.
func (m *Manager) Set(s models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}
	if err := Validate(&s); err != nil {
		return err
	}
	next := m.env.persistable(s, *m.settings)
	m.settings = &next
	return nil
}

// SetField parses value into the named field and validates the result.
// The field is stored even when the environment overrides it.
// The in-memory settings are unchanged on error.
func (m *Manager) SetField(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	next := *m.settings
	if err := applyField(&next, key, value); err != nil {
		return err
	}
	if m.env.overrides(key) {
		if err := Validate(&next); err != nil {
			return err
		}
	}
	effective := m.env.apply(next)
	if err := Validate(&effective); err != nil {
		return err
	}
	m.settings = &next
	return nil
}

// Save writes the file-backed settings to disk atomically.
// Returns ErrNotInitialized if Load() has not been called.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == stateUninitialized {
		return ErrNotInitialized
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", defs.UserConfigYAML, err)
	}
	if err := fsutil.WriteFileAtomic(m.pathLocked(), data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	m.written = true
	return nil
}

// FromFile reports whether the settings file exists: Load read it or
// Save wrote it.
func (m *Manager) FromFile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.written || m.loader.FromFile()
}

// Dir returns the configuration directory passed to Load.
func (m *Manager) Dir() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dir
}

// Path returns the settings file path.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathLocked()
}

func (m *Manager) pathLocked() string {
	return filepath.Join(m.dir, defs.UserConfigYAML)
}

// envOverlay holds the settings overridden by environment variables.
// A nil field is not overridden.
type envOverlay struct {
	background   *models.Background
	highContrast *bool
}

func readEnvOverlay() envOverlay {
	var o envOverlay
	if bg := os.Getenv(defs.EnvBackground); bg != "" {
		b := models.Background(bg)
		o.background = &b
	}
	if hc := os.Getenv(defs.EnvHighContrast); hc != "" {
		if v, err := strconv.ParseBool(hc); err == nil {
			o.highContrast = &v
		}
	}
	return o
}

// apply returns s with the overridden fields replaced.
func (o envOverlay) apply(s models.Settings) models.Settings {
	if o.background != nil {
		s.Background = *o.background
	}
	if o.highContrast != nil {
		s.HighContrastText = *o.highContrast
	}
	return s
}

// persistable returns next with every overridden field that still holds
// the overridden value reset to its file value.
func (o envOverlay) persistable(next, file models.Settings) models.Settings {
	if o.background != nil && next.Background == *o.background {
		next.Background = file.Background
	}
	if o.highContrast != nil && next.HighContrastText == *o.highContrast {
		next.HighContrastText = file.HighContrastText
	}
	return next
}

func (o envOverlay) overrides(key string) bool {
	switch key {
	case FieldBackground:
		return o.background != nil
	case FieldHighContrastText:
		return o.highContrast != nil
	}
	return false
}
