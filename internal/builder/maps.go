package builder

import (
	"github.com/resurgence-tools/edjb/internal/catalog"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// CustomMap turns a map_variants entry into a MapRef. Custom maps use
// the folder name as both label and engine name.
func CustomMap(name string) models.MapRef {
	return models.MapRef{DisplayName: name, MapName: name}
}

// MapChoices groups the maps a type form can choose from.
type MapChoices struct {
	Vanilla []models.MapRef
	Mod     []models.MapRef
	Custom  []models.MapRef
}

// ChoicesFor returns the selectable maps for a type using modPack,
// given the entries found in the user's map_variants folder.
func ChoicesFor(modPack string, customMaps []string) MapChoices {
	c := MapChoices{
		Vanilla: catalog.VanillaMaps(),
		Mod:     catalog.MapsFor(modPack),
		Custom:  make([]models.MapRef, 0, len(customMaps)),
	}
	for _, name := range customMaps {
		c.Custom = append(c.Custom, CustomMap(name))
	}
	return c
}
