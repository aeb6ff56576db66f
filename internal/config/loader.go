package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// Loader reads the settings file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu       sync.RWMutex
	fromFile bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads userConfig.yaml from configDir and returns the settings with
// defaults applied for missing fields. A missing file yields defaults.
func (l *Loader) Load(configDir string) (*models.Settings, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fromFile = false
	s := NewDefaultSettings()

	path := filepath.Join(filepath.Clean(configDir), defs.UserConfigYAML)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("settings file not found, using defaults", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("read %s: %w", defs.UserConfigYAML, err)
	}

	// Fields absent from the file keep the defaults set above.
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", defs.UserConfigYAML, ErrInvalidYAML, err)
	}
	l.fromFile = true

	return s, nil
}

// FromFile reports whether the last Load read an existing file.
func (l *Loader) FromFile() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fromFile
}
