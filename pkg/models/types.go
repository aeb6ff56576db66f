package models

import "slices"

// DefaultRandomChance is the random chance weight a new type starts with.
// Values below RandomChanceThreshold are treated as "unset" on export.
const (
	DefaultRandomChance   = 0.1
	RandomChanceThreshold = 0.2
	MinRandomChance       = 0.1
	MaxRandomChance       = 100
)

// TypeRecord is one configurable game type / voting entry.
type TypeRecord struct {
	ID                 int64    `json:"id,omitempty"`
	DisplayName        string   `json:"displayName"`
	TypeName           string   `json:"typeName"`
	ModPack            string   `json:"modPack,omitempty"`
	RandomChance       float64  `json:"randomChance,omitempty"`
	SpecificMaps       []MapRef `json:"specificMaps"`
	Commands           []string `json:"commands,omitempty"`
	EndOfMatchCommands []string `json:"endOfMatchCommands,omitempty"`
}

// NewTypeRecord returns a record with the defaults of a fresh type form.
func NewTypeRecord(id int64) TypeRecord {
	return TypeRecord{
		ID:                 id,
		RandomChance:       DefaultRandomChance,
		SpecificMaps:       []MapRef{},
		Commands:           []string{},
		EndOfMatchCommands: []string{},
	}
}

// Clone returns a deep copy of the record.
func (t TypeRecord) Clone() TypeRecord {
	c := t
	c.SpecificMaps = cloneOrEmpty(t.SpecificMaps)
	c.Commands = cloneOrEmpty(t.Commands)
	c.EndOfMatchCommands = cloneOrEmpty(t.EndOfMatchCommands)
	return c
}

// Label returns the name shown for the record in lists.
func (t TypeRecord) Label() string {
	switch {
	case t.DisplayName != "":
		return t.DisplayName
	case t.TypeName != "":
		return t.TypeName
	default:
		return "New Variant"
	}
}

// Document is the voting document: the maps array and the type list.
type Document struct {
	Maps  []MapRef     `json:"maps"`
	Types []TypeRecord `json:"types"`
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := Document{
		Maps:  cloneOrEmpty(d.Maps),
		Types: make([]TypeRecord, len(d.Types)),
	}
	for i, t := range d.Types {
		c.Types[i] = t.Clone()
	}
	return c
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
