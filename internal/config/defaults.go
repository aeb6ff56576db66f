package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultBackground         = models.BackgroundForge
	DefaultVolume             = 0.5
	DefaultHighContrastText   = false
	DefaultAdvancedMapOptions = false

	MinVolume = 0.0
	MaxVolume = 1.0
)

// NewDefaultSettings returns settings with every field at its default.
func NewDefaultSettings() *models.Settings {
	return &models.Settings{
		Background:         DefaultBackground,
		Volume:             DefaultVolume,
		HighContrastText:   DefaultHighContrastText,
		AdvancedMapOptions: DefaultAdvancedMapOptions,
	}
}

// ResolveDir returns the configuration directory. An explicit flag value
// wins, then EDJB_CONFIG_DIR, then the per-user config directory.
func ResolveDir(flagDir string) (string, error) {
	if flagDir != "" {
		return filepath.Clean(flagDir), nil
	}
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		return filepath.Clean(envDir), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigDir, err)
	}
	return filepath.Join(base, defs.AppDirName), nil
}
