package models

import "testing"

func TestParseMapMode(t *testing.T) {
	tests := []struct {
		input string
		want  MapMode
		ok    bool
	}{
		{"", MapModeVanilla, true},
		{"vanillaMaps", MapModeVanilla, true},
		{"errorMaps", MapModeError, true},
		{"chosenMaps", MapModeChosen, true},
		{"allMaps", MapMode("allMaps"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMapMode(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseMapMode(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestValidMapModes(t *testing.T) {
	for _, m := range ValidMapModes() {
		if !m.IsValid() {
			t.Errorf("%q should be valid", m)
		}
	}
}

func TestNewTypeRecordDefaults(t *testing.T) {
	rec := NewTypeRecord(7)
	if rec.ID != 7 {
		t.Errorf("ID: got %d, want 7", rec.ID)
	}
	if rec.RandomChance != DefaultRandomChance {
		t.Errorf("RandomChance: got %v, want %v", rec.RandomChance, DefaultRandomChance)
	}
	if rec.SpecificMaps == nil || rec.Commands == nil || rec.EndOfMatchCommands == nil {
		t.Error("slices should be non-nil")
	}
	if rec.Label() != "New Variant" {
		t.Errorf("Label: got %q", rec.Label())
	}
}

func TestTypeRecordCloneIsDeep(t *testing.T) {
	orig := NewTypeRecord(1)
	orig.SpecificMaps = append(orig.SpecificMaps, MapRef{DisplayName: "Edge", MapName: "s3d_edge"})
	orig.Commands = append(orig.Commands, "Server.Sprint 1")

	c := orig.Clone()
	c.SpecificMaps[0].DisplayName = "changed"
	c.Commands[0] = "changed"

	if orig.SpecificMaps[0].DisplayName != "Edge" {
		t.Error("Clone shares SpecificMaps with the original")
	}
	if orig.Commands[0] != "Server.Sprint 1" {
		t.Error("Clone shares Commands with the original")
	}
}

func TestDocumentCloneNilSlices(t *testing.T) {
	c := Document{}.Clone()
	if c.Maps == nil || c.Types == nil {
		t.Error("Clone of empty document should have non-nil slices")
	}
}

func TestBackground(t *testing.T) {
	for _, b := range ValidBackgrounds() {
		if !b.IsValid() {
			t.Errorf("%q should be valid", b)
		}
		if b.Label() == "" {
			t.Errorf("%q has empty label", b)
		}
	}
	if Background("forgeBackground").IsValid() {
		t.Error("forgeBackground should not be valid")
	}
}

func TestMapRefKey(t *testing.T) {
	a := MapRef{DisplayName: "Edge", MapName: "s3d_edge"}
	b := MapRef{DisplayName: "Edge", MapName: "s3d_edge"}
	c := MapRef{DisplayName: "Edge (alt)", MapName: "s3d_edge"}
	if a.Key() != b.Key() {
		t.Error("equal refs should share a key")
	}
	if a.Key() == c.Key() {
		t.Error("refs with different display names should differ")
	}
}
