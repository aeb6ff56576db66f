// Package catalog holds the static tables the builder offers as choices:
// mod packs and their bundled maps, the base-game maps, the placeholder
// error maps and the server override commands.
package catalog

import (
	"slices"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// ModPack is a named bundle of additional maps.
type ModPack struct {
	Name string
	Maps []models.MapRef
}

// Mods returns every known mod pack in presentation order.
// The returned slice and its map lists are copies.
func Mods() []ModPack {
	out := make([]ModPack, len(modPacks))
	for i, m := range modPacks {
		out[i] = ModPack{Name: m.Name, Maps: slices.Clone(m.Maps)}
	}
	return out
}

// ModNames returns the names of every known mod pack.
func ModNames() []string {
	names := make([]string, len(modPacks))
	for i, m := range modPacks {
		names[i] = m.Name
	}
	return names
}

// Find looks up a mod pack by its exact name.
func Find(name string) (ModPack, bool) {
	for _, m := range modPacks {
		if m.Name == name {
			return ModPack{Name: m.Name, Maps: slices.Clone(m.Maps)}, true
		}
	}
	return ModPack{}, false
}

// MapsFor returns the maps bundled with the named mod pack, or nil when
// the name is empty or unknown.
func MapsFor(name string) []models.MapRef {
	if name == "" {
		return nil
	}
	m, ok := Find(name)
	if !ok {
		return nil
	}
	return m.Maps
}

var vanillaMaps = []models.MapRef{
	{DisplayName: "Diamondback", MapName: "s3d_avalanche"},
	{DisplayName: "Edge", MapName: "s3d_edge"},
	{DisplayName: "Guardian", MapName: "guardian"},
	{DisplayName: "High Ground", MapName: "deadlock"},
	{DisplayName: "Icebox", MapName: "s3d_turf"},
	{DisplayName: "Last Resort", MapName: "zanzibar"},
	{DisplayName: "Narrows", MapName: "chill"},
	{DisplayName: "Reactor", MapName: "s3d_reactor"},
	{DisplayName: "Sandtrap", MapName: "shrine"},
	{DisplayName: "Standoff", MapName: "bunkerworld"},
	{DisplayName: "The Pit", MapName: "cyberdyne"},
	{DisplayName: "Valhalla", MapName: "riverworld"},
}

// errorMapCount is the number of placeholder entries. The game falls back
// to showing them on High Ground when the voting file cannot be used.
const errorMapCount = 4

var errorMap = models.MapRef{DisplayName: "INVALID MAP", MapName: "deadlock"}

// VanillaMaps returns the base-game maps.
func VanillaMaps() []models.MapRef {
	return slices.Clone(vanillaMaps)
}

// ErrorMaps returns the placeholder maps used by the error map mode.
func ErrorMaps() []models.MapRef {
	out := make([]models.MapRef, errorMapCount)
	for i := range out {
		out[i] = errorMap
	}
	return out
}
