package models

// MapRef identifies a map by its in-game label and its engine name.
type MapRef struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
	MapName     string `json:"mapName" yaml:"mapName"`
}

// MapKey is the identity of a MapRef when merging chosen maps.
type MapKey struct {
	MapName     string
	DisplayName string
}

// Key returns the (mapName, displayName) pair.
func (m MapRef) Key() MapKey {
	return MapKey{MapName: m.MapName, DisplayName: m.DisplayName}
}

// MapMode selects the strategy for the exported maps array.
type MapMode string

const (
	// MapModeVanilla exports the fixed list of base-game maps (default).
	MapModeVanilla MapMode = "vanillaMaps"

	// MapModeError exports placeholder maps that show up in-game as
	// "INVALID MAP", signalling that the voting file was not usable.
	MapModeError MapMode = "errorMaps"

	// MapModeChosen exports the union of every type's specific maps.
	MapModeChosen MapMode = "chosenMaps"
)

// ValidMapModes returns all valid map mode values.
func ValidMapModes() []MapMode {
	return []MapMode{MapModeVanilla, MapModeError, MapModeChosen}
}

// IsValid checks if the map mode is a valid value.
func (m MapMode) IsValid() bool {
	switch m {
	case MapModeVanilla, MapModeError, MapModeChosen:
		return true
	}
	return false
}

// ParseMapMode converts a string into a MapMode. The empty string maps
// to MapModeVanilla. The second return value reports validity.
func ParseMapMode(s string) (MapMode, bool) {
	if s == "" {
		return MapModeVanilla, true
	}
	m := MapMode(s)
	return m, m.IsValid()
}
