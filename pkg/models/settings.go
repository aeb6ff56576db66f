package models

// Background is the theme the builder is rendered with.
type Background string

const (
	BackgroundForge       Background = "forge"
	BackgroundC322        Background = "c322"
	BackgroundHighCharity Background = "highcharity"
)

// ValidBackgrounds returns all valid background values.
func ValidBackgrounds() []Background {
	return []Background{BackgroundForge, BackgroundC322, BackgroundHighCharity}
}

// IsValid checks if the background is a valid value.
func (b Background) IsValid() bool {
	switch b {
	case BackgroundForge, BackgroundC322, BackgroundHighCharity:
		return true
	}
	return false
}

// Label returns the human-readable name of the background.
func (b Background) Label() string {
	switch b {
	case BackgroundForge:
		return "Forge"
	case BackgroundC322:
		return "C-322"
	case BackgroundHighCharity:
		return "High Charity"
	}
	return string(b)
}

// Settings is the persisted user configuration.
// AdvancedMapOptions is stored but has no effect yet.
type Settings struct {
	Background         Background `yaml:"background" json:"background"`
	Volume             float64    `yaml:"volume" json:"volume"`
	HighContrastText   bool       `yaml:"highContrastText" json:"highContrastText"`
	AdvancedMapOptions bool       `yaml:"advancedMapOptions" json:"advancedMapOptions"`
}
