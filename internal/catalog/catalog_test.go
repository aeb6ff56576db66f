package catalog

import (
	"testing"

	"github.com/resurgence-tools/edjb/pkg/models"
)

func TestVanillaMaps(t *testing.T) {
	maps := VanillaMaps()
	if len(maps) != 12 {
		t.Fatalf("VanillaMaps() len = %d, want 12", len(maps))
	}
	if maps[0] != (models.MapRef{DisplayName: "Diamondback", MapName: "s3d_avalanche"}) {
		t.Errorf("first vanilla map = %+v", maps[0])
	}

	// Mutating the result must not affect later calls.
	maps[0].DisplayName = "changed"
	if VanillaMaps()[0].DisplayName != "Diamondback" {
		t.Error("VanillaMaps() returned shared storage")
	}
}

func TestErrorMaps(t *testing.T) {
	maps := ErrorMaps()
	if len(maps) != 4 {
		t.Fatalf("ErrorMaps() len = %d, want 4", len(maps))
	}
	for i, m := range maps {
		if m.DisplayName != "INVALID MAP" || m.MapName != "deadlock" {
			t.Errorf("ErrorMaps()[%d] = %+v", i, m)
		}
	}
}

func TestFind(t *testing.T) {
	t.Run("known mod", func(t *testing.T) {
		m, ok := Find("ED++")
		if !ok {
			t.Fatal("ED++ should be in the catalog")
		}
		if len(m.Maps) != 23 {
			t.Errorf("ED++ maps = %d, want 23", len(m.Maps))
		}
	})

	t.Run("unknown mod", func(t *testing.T) {
		if _, ok := Find("Not A Mod"); ok {
			t.Error("unexpected match for unknown mod")
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, ok := Find("ed++"); ok {
			t.Error("lookup should be exact")
		}
	})
}

func TestMapsFor(t *testing.T) {
	if got := MapsFor(""); got != nil {
		t.Errorf("MapsFor(\"\") = %v, want nil", got)
	}
	if got := MapsFor("TBP - Scarif"); len(got) != 1 || got[0].MapName != "scarif" {
		t.Errorf("MapsFor(TBP - Scarif) = %v", got)
	}
}

func TestModNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range ModNames() {
		if seen[n] {
			t.Errorf("duplicate mod name %q", n)
		}
		seen[n] = true
	}
	if len(seen) != len(Mods()) {
		t.Errorf("ModNames() and Mods() disagree: %d vs %d", len(seen), len(Mods()))
	}
}

func TestServerOverrides(t *testing.T) {
	overrides := ServerOverrides()
	if len(overrides) != 12 {
		t.Fatalf("ServerOverrides() len = %d, want 12", len(overrides))
	}
	for _, o := range overrides {
		if len(o.Values) == 0 || o.Values[0].Value != UnsetValue {
			t.Errorf("%s: first value should be the unset choice", o.Key)
		}
	}

	teams, ok := overrideByKey(overrides, "Server.NumberOfTeams")
	if !ok {
		t.Fatal("Server.NumberOfTeams not found")
	}
	if !teams.Allows("0") || !teams.Allows("8") || teams.Allows("9") {
		t.Error("team count should allow 0..8")
	}

	size, _ := overrideByKey(overrides, "Server.TeamSize")
	if size.Allows("0") || !size.Allows("1") {
		t.Error("team size should allow 1..8")
	}

	sprint, _ := overrideByKey(overrides, "Server.Sprint")
	if !sprint.Allows("2") {
		t.Error("sprint should allow inherit (2)")
	}
}

func overrideByKey(overrides []ServerOverride, key string) (ServerOverride, bool) {
	for _, o := range overrides {
		if o.Key == key {
			return o, true
		}
	}
	return ServerOverride{}, false
}
