package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testFiles() []File {
	return []File{
		{Name: "voting.json", Data: []byte(`{"maps":[]}`)},
		{Name: "mods.json", Data: []byte(`{"mods":{}}`)},
	}
}

func TestWriteAllInDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	results, err := NewWriter(nil).WriteAll(context.Background(), testFiles(), InDir(dir))
	if err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, f := range testFiles() {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if string(got) != string(f.Data) {
			t.Errorf("%s = %q, want %q", f.Name, got, f.Data)
		}
	}
}

func TestWriteAllIndependentFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A regular file where a directory is expected makes the first write fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	chooser := FixedPaths(dir, map[string]string{
		"voting.json": filepath.Join(blocker, "voting.json"),
	})
	results, err := NewWriter(nil).WriteAll(context.Background(), testFiles(), chooser)
	if err == nil {
		t.Fatal("WriteAll() error = nil, want failure for voting.json")
	}
	if results[0].Err == nil {
		t.Error("voting.json result has no error")
	}
	if results[1].Err != nil {
		t.Errorf("mods.json result error = %v", results[1].Err)
	}
	if _, err := os.Stat(filepath.Join(dir, "mods.json")); err != nil {
		t.Errorf("mods.json not written after voting.json failed: %v", err)
	}
}

func TestWriteAllSkip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	chooser := PathChooserFunc(func(_ context.Context, name string) (string, bool, error) {
		if name == "voting.json" {
			return "", false, nil
		}
		return filepath.Join(dir, name), true, nil
	})

	results, err := NewWriter(nil).WriteAll(context.Background(), testFiles(), chooser)
	if err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	if !results[0].Skipped || results[0].Path != "" {
		t.Errorf("voting.json result = %+v, want skipped", results[0])
	}
	if _, err := os.Stat(filepath.Join(dir, "voting.json")); !os.IsNotExist(err) {
		t.Error("skipped file was written")
	}
	if results[1].Skipped || results[1].Path == "" {
		t.Errorf("mods.json result = %+v", results[1])
	}
}

func TestWriteAllChooserError(t *testing.T) {
	t.Parallel()

	errDialog := errors.New("dialog failed")
	dir := t.TempDir()
	chooser := PathChooserFunc(func(_ context.Context, name string) (string, bool, error) {
		if name == "voting.json" {
			return "", false, errDialog
		}
		return filepath.Join(dir, name), true, nil
	})

	results, err := NewWriter(nil).WriteAll(context.Background(), testFiles(), chooser)
	if !errors.Is(err, errDialog) {
		t.Errorf("WriteAll() error = %v, want %v", err, errDialog)
	}
	if results[1].Err != nil {
		t.Errorf("mods.json error = %v", results[1].Err)
	}
}

func TestWriteAllCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWriter(nil).WriteAll(ctx, testFiles(), InDir(t.TempDir()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("WriteAll() error = %v, want context.Canceled", err)
	}
}

func TestWriteAllMergesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "mods.json")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	var seen string
	files := []File{{
		Name: "mods.json",
		Data: []byte("fresh"),
		Merge: func(existing []byte) ([]byte, error) {
			seen = string(existing)
			return []byte("merged"), nil
		},
	}}
	if _, err := NewWriter(nil).WriteAll(context.Background(), files, InDir(dir)); err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if seen != "old" || string(got) != "merged" {
		t.Errorf("seen = %q, file = %q, want old and merged", seen, got)
	}
}

func TestWriteAllMergeFallsBackToFreshData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fail := func([]byte) ([]byte, error) { return nil, errors.New("unreadable") }
	files := []File{{Name: "mods.json", Data: []byte("fresh"), Merge: fail}}

	// No existing file: Merge is not called.
	if _, err := NewWriter(nil).WriteAll(context.Background(), files, InDir(dir)); err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	// Existing file Merge cannot read: fresh data replaces it.
	if _, err := NewWriter(nil).WriteAll(context.Background(), files, InDir(dir)); err != nil {
		t.Fatalf("WriteAll() error: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "mods.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh" {
		t.Errorf("file = %q, want fresh", got)
	}
}
