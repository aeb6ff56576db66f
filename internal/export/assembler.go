// Package export turns a builder session into the voting.json and
// mods.json documents and writes them to disk.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/resurgence-tools/edjb/internal/catalog"
	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// ErrUnknownMapMode is returned for a map mode outside models.ValidMapModes.
var ErrUnknownMapMode = errors.New("export: unknown map mode")

// File is a named document ready to be written.
type File struct {
	Name string
	Data []byte
	// Merge, when set, combines Data with the file already at the
	// destination. It receives the existing content.
	Merge func(existing []byte) ([]byte, error)
}

// Result holds both exported documents.
type Result struct {
	Voting models.Document
	Mods   ModsDocument
}

// Assemble builds the voting and mods documents from the session types.
// The input is never modified. Records are pruned of their id and of
// optional fields still at their default; maps are chosen by mode.
func Assemble(types []models.TypeRecord, mode models.MapMode) (*Result, error) {
	maps, err := mapsFor(types, mode)
	if err != nil {
		return nil, err
	}

	pruned := lo.Map(types, func(t models.TypeRecord, _ int) models.TypeRecord {
		return prune(t)
	})

	return &Result{
		Voting: models.Document{Maps: maps, Types: pruned},
		Mods:   ModsDocument{Mods: modSet(pruned)},
	}, nil
}

// prune drops everything the voting file should not carry.
func prune(t models.TypeRecord) models.TypeRecord {
	c := t.Clone()
	c.ID = 0
	if c.RandomChance < models.RandomChanceThreshold || math.IsNaN(c.RandomChance) || math.IsInf(c.RandomChance, 0) {
		c.RandomChance = 0
	}
	if len(c.Commands) == 0 {
		c.Commands = nil
	}
	if len(c.EndOfMatchCommands) == 0 {
		c.EndOfMatchCommands = nil
	}
	return c
}

// modSet collects every mod pack referenced by the types, in order of
// first appearance. Repeated names collapse into a single key.
func modSet(types []models.TypeRecord) ModSet {
	names := lo.Uniq(lo.FilterMap(types, func(t models.TypeRecord, _ int) (string, bool) {
		return t.ModPack, t.ModPack != ""
	}))
	return lo.Map(names, func(name string, _ int) ModEntry {
		return ModEntry{Name: name}
	})
}

// mapsFor returns the maps array for the given mode.
func mapsFor(types []models.TypeRecord, mode models.MapMode) ([]models.MapRef, error) {
	switch mode {
	case models.MapModeVanilla, "":
		return catalog.VanillaMaps(), nil
	case models.MapModeError:
		return catalog.ErrorMaps(), nil
	case models.MapModeChosen:
		return ChosenMaps(types), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapMode, mode)
	}
}

// ChosenMaps returns the union of every type's specific maps, without
// duplicates by (mapName, displayName), in first-seen order.
func ChosenMaps(types []models.TypeRecord) []models.MapRef {
	all := lo.FlatMap(types, func(t models.TypeRecord, _ int) []models.MapRef {
		return t.SpecificMaps
	})
	uniq := lo.UniqBy(all, models.MapRef.Key)
	if uniq == nil {
		return []models.MapRef{}
	}
	return uniq
}

// Files serializes the result as voting.json and mods.json.
func (r *Result) Files() ([]File, error) {
	voting, err := Marshal(r.Voting)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", defs.VotingJSON, err)
	}
	mods, err := Marshal(r.Mods)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", defs.ModsJSON, err)
	}
	return []File{
		{Name: defs.VotingJSON, Data: voting},
		{Name: defs.ModsJSON, Data: mods, Merge: r.mergeMods},
	}, nil
}

// mergeMods keeps the package_url values of an existing mods.json for
// the mod packs this result still lists.
func (r *Result) mergeMods(existing []byte) ([]byte, error) {
	old, err := ParseMods(existing)
	if err != nil {
		return nil, err
	}
	return Marshal(r.Mods.WithURLsFrom(old))
}

// Marshal encodes v with two-space indentation, without HTML escaping
// and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Parse reads a voting document. Pruned fields come back at their
// zero value; callers restore form defaults when loading.
func Parse(data []byte) (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("parse %s: %w", defs.VotingJSON, err)
	}
	return doc.Clone(), nil
}

// ParseMods reads a mods document.
func ParseMods(data []byte) (ModsDocument, error) {
	var doc ModsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ModsDocument{}, fmt.Errorf("parse %s: %w", defs.ModsJSON, err)
	}
	if doc.Mods == nil {
		doc.Mods = ModSet{}
	}
	return doc, nil
}
