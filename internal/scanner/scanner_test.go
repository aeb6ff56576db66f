package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"

	"golang.org/x/text/unicode/norm"
)

func setupDataDir(t *testing.T, maps, types []string) string {
	t.Helper()
	root := t.TempDir()
	for sub, names := range map[string][]string{"map_variants": maps, "game_variants": types} {
		if names == nil {
			continue
		}
		dir := filepath.Join(root, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
		for _, n := range names {
			if err := os.MkdirAll(filepath.Join(dir, n), 0o755); err != nil {
				t.Fatalf("failed to create entry %s: %v", n, err)
			}
		}
	}
	return root
}

func TestScanLists(t *testing.T) {
	t.Parallel()

	root := setupDataDir(t, []string{"valhalla_remix", "big_guardian"}, []string{"slayer", "ctf"})
	got, err := New(nil).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !slices.Equal(got.Maps, []string{"big_guardian", "valhalla_remix"}) {
		t.Errorf("Maps = %v", got.Maps)
	}
	if !slices.Equal(got.Types, []string{"ctf", "slayer"}) {
		t.Errorf("Types = %v", got.Types)
	}
}

func TestScanIncludesFiles(t *testing.T) {
	t.Parallel()

	root := setupDataDir(t, []string{}, []string{})
	if err := os.WriteFile(filepath.Join(root, "game_variants", "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := New(nil).Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !slices.Equal(got.Types, []string{"notes.txt"}) {
		t.Errorf("Types = %v, want [notes.txt]", got.Types)
	}
	if len(got.Maps) != 0 {
		t.Errorf("Maps = %v, want empty", got.Maps)
	}
}

func TestScanMissingGameVariants(t *testing.T) {
	t.Parallel()

	root := setupDataDir(t, []string{"edge"}, nil)
	got, err := New(nil).Scan(context.Background(), root)
	if err == nil {
		t.Fatalf("Scan() expected error, got listing %+v", got)
	}
	if !errors.Is(err, ErrVariantsDirNotFound) {
		t.Errorf("error should wrap ErrVariantsDirNotFound, got: %v", err)
	}
	var dirErr *DirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("error should be *DirError, got %T", err)
	}
	if filepath.Base(dirErr.Dir) != "game_variants" {
		t.Errorf("DirError.Dir = %q", dirErr.Dir)
	}
}

func TestScanMissingMapVariants(t *testing.T) {
	t.Parallel()

	root := setupDataDir(t, nil, []string{"slayer"})
	if _, err := New(nil).Scan(context.Background(), root); !errors.Is(err, ErrVariantsDirNotFound) {
		t.Errorf("expected ErrVariantsDirNotFound, got: %v", err)
	}
}

func TestScanCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(nil).Scan(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestScanNormalizesNames(t *testing.T) {
	t.Parallel()

	nfd := norm.NFD.String("arène")
	fsys := fstest.MapFS{
		"data/map_variants/" + nfd + "/variant.map": {Data: []byte("m")},
		"data/game_variants/slayer/variant.slayer":  {Data: []byte("g")},
	}
	got, err := NewFS(fsys).Scan(context.Background(), "data")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(got.Maps) != 1 || got.Maps[0] != norm.NFC.String("arène") {
		t.Errorf("Maps = %q, want NFC form", got.Maps)
	}
}
