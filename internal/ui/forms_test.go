package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/resurgence-tools/edjb/internal/builder"
	"github.com/resurgence-tools/edjb/internal/catalog"
	"github.com/resurgence-tools/edjb/pkg/models"
)

func headlessForms(out *bytes.Buffer) *Forms {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return NewForms(testTheme(), hm, out)
}

func TestFormsHeadless(t *testing.T) {
	t.Parallel()

	f := headlessForms(&bytes.Buffer{})
	ctx := context.Background()

	if _, _, err := f.ChooseFolder(ctx, ""); !errors.Is(err, ErrHeadless) {
		t.Errorf("ChooseFolder() error = %v, want ErrHeadless", err)
	}
	if _, err := f.MainMenu(ctx, MenuState{}); !errors.Is(err, ErrHeadless) {
		t.Errorf("MainMenu() error = %v, want ErrHeadless", err)
	}
	if _, _, err := f.EditType(ctx, TypeFormInput{Record: models.NewTypeRecord(1)}); !errors.Is(err, ErrHeadless) {
		t.Errorf("EditType() error = %v, want ErrHeadless", err)
	}
}

func TestFormsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := headlessForms(&bytes.Buffer{})
	if _, _, err := f.ChooseMapMode(ctx, models.MapModeVanilla); !errors.Is(err, context.Canceled) {
		t.Errorf("ChooseMapMode() error = %v, want context.Canceled", err)
	}
}

func TestFormsNotify(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	f := headlessForms(&out)
	err := f.Notify(context.Background(), Notice{Level: LevelError, Title: "Directory not found", Details: []string{"game_variants"}})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if !strings.Contains(out.String(), "Directory not found") || !strings.Contains(out.String(), "game_variants") {
		t.Errorf("Notify() output = %q", out.String())
	}
}

func TestMenuOptions(t *testing.T) {
	t.Parallel()

	has := func(state MenuState, action MenuAction) bool {
		for _, o := range menuOptions(state) {
			if o.Value == action {
				return true
			}
		}
		return false
	}

	empty := MenuState{}
	if has(empty, MenuExport) || has(empty, MenuEditType) {
		t.Error("export or edit offered without types")
	}
	one := MenuState{Types: []models.TypeRecord{models.NewTypeRecord(1)}}
	if !has(one, MenuEditType) || has(one, MenuExport) {
		t.Error("one type: want edit, no export")
	}
	two := MenuState{Types: make([]models.TypeRecord, 2), CanExport: true}
	if !has(two, MenuExport) {
		t.Error("export not offered with two types")
	}
	if !has(empty, MenuQuit) || !has(empty, MenuOpenSaved) {
		t.Error("quit and open-saved must always be offered")
	}
}

func TestMapOptions(t *testing.T) {
	t.Parallel()

	stale := models.MapRef{DisplayName: "Old", MapName: "old_map"}
	vanilla := catalog.VanillaMaps()[0]
	choices := builder.ChoicesFor("", []string{"my_map"})

	opts := MapOptions(choices, []models.MapRef{vanilla, stale})
	if len(opts) != 12+1+1 {
		t.Fatalf("options = %d, want 14", len(opts))
	}
	if opts[0].Key != "Vanilla: "+vanilla.DisplayName {
		t.Errorf("first option key = %q", opts[0].Key)
	}
	last := opts[len(opts)-1]
	if last.Value != stale || !strings.HasPrefix(last.Key, "Chosen: ") {
		t.Errorf("stale selection option = %+v", last)
	}
	if opts[12].Value != builder.CustomMap("my_map") {
		t.Errorf("custom option = %+v", opts[12])
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	overrides := catalog.ServerOverrides()
	cmds := []string{"Server.Sprint 1", "Server.PodiumEnabled 0"}
	got := ApplyOverrides(cmds, overrides, map[string]string{
		"Server.Sprint":        "2",
		"Server.PodiumEnabled": catalog.UnsetValue,
		"Server.TeamSize":      "4",
		"Server.EmotesEnabled": "bogus",
	})

	want := []string{"Server.Sprint 2", "Server.TeamSize 4"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("ApplyOverrides() = %v, want %v", got, want)
	}
	if cmds[0] != "Server.Sprint 1" {
		t.Error("ApplyOverrides() modified its input")
	}
}

func TestParseRandomChance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0.1", 0.1, false},
		{" 5 ", 5, false},
		{"100", 100, false},
		{"0.05", 0, true},
		{"101", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRandomChance(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseRandomChance(%q) = %v, %v", tt.in, got, err)
		}
	}
	if FormatRandomChance(0) != "0.1" || FormatRandomChance(2.5) != "2.5" {
		t.Error("FormatRandomChance() unexpected output")
	}
}

func TestSavedLabel(t *testing.T) {
	t.Parallel()

	got := SavedLabel(models.SavedJSON{Name: "Friday night", Date: 1_700_000_000_000})
	if !strings.HasPrefix(got, "Friday night  (") {
		t.Errorf("SavedLabel() = %q", got)
	}
}
