package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleDoc(name string) models.Document {
	t := models.NewTypeRecord(1)
	t.DisplayName = name
	t.TypeName = strings.ToLower(name)
	return models.Document{
		Maps:  []models.MapRef{{DisplayName: "Guardian", MapName: "guardian"}},
		Types: []models.TypeRecord{t},
	}
}

// stores returns each Store implementation under test.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"file":   NewFileStore(t.TempDir(), discardLogger()),
		"memory": NewMemoryStore(),
	}
}

func TestStoreGetEmpty(t *testing.T) {
	t.Parallel()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			list, err := s.Get(context.Background(), SavedJSONsKey)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if list == nil || len(list) != 0 {
				t.Errorf("Get() = %#v, want empty non-nil list", list)
			}
		})
	}
}

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			want := []models.SavedJSON{
				{Name: "first", Date: 100, Data: sampleDoc("Slayer")},
				{Name: "second", Date: 200, Data: sampleDoc("CTF")},
			}
			if err := s.Set(ctx, SavedJSONsKey, want); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			got, err := s.Get(ctx, SavedJSONsKey)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if len(got) != 2 || got[0].Name != "first" || got[1].Date != 200 {
				t.Fatalf("Get() = %+v", got)
			}
			if got[0].Data.Types[0].DisplayName != "Slayer" {
				t.Errorf("document not round-tripped: %+v", got[0].Data)
			}

			// Returned lists are copies.
			got[0].Data.Types[0].DisplayName = "changed"
			again, _ := s.Get(ctx, SavedJSONsKey)
			if again[0].Data.Types[0].DisplayName != "Slayer" {
				t.Error("Get() returned shared storage")
			}
		})
	}
}

func TestStoreSetRejectsInvalid(t *testing.T) {
	t.Parallel()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			bad := []models.SavedJSON{{Name: "", Date: 1}}
			if err := s.Set(ctx, SavedJSONsKey, bad); !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Set() error = %v, want ErrInvalidEntry", err)
			}
			list, _ := s.Get(ctx, SavedJSONsKey)
			if len(list) != 0 {
				t.Error("rejected Set() stored entries")
			}
		})
	}
}

func TestFileStoreSkipsInvalidEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `{"savedJsons": [
		{"name": "ok", "date": 5, "data": {"maps": [], "types": []}},
		{"name": 42, "date": 6, "data": {}},
		{"name": "", "date": 7, "data": {}},
		{"name": "ok2", "date": 8, "data": {"maps": [], "types": [{"displayName": "x", "typeName": "x", "specificMaps": []}]}}
	], "other": true}`
	if err := os.WriteFile(filepath.Join(dir, defs.SavedJSONsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(dir, discardLogger())
	list, err := s.Get(context.Background(), SavedJSONsKey)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "ok" || list[1].Name != "ok2" {
		t.Fatalf("Get() = %+v, want the two valid entries", list)
	}

	// Writing keeps unrelated keys and the entries Get skipped.
	if err := s.Set(context.Background(), SavedJSONsKey, list[:1]); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"other"`, `"name": 42`, `"date": 7`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Set() lost %s:\n%s", want, data)
		}
	}
	if strings.Contains(string(data), `"ok2"`) {
		t.Errorf("Set() kept a removed valid entry:\n%s", data)
	}
}

func TestSavedAppendKeepsUnreadableEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `{"savedJsons": [
		{"name": "broken", "date": 3, "data": {"maps": [], "types": [{"typeName": 7}]}}
	]}`
	if err := os.WriteFile(filepath.Join(dir, defs.SavedJSONsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileStore(dir, discardLogger())
	saved := NewSaved(fs, func() time.Time { return time.UnixMilli(1000) })
	if _, err := saved.Append(context.Background(), "new", sampleDoc("Slayer")); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"broken"`) || !strings.Contains(string(data), `"new"`) {
		t.Errorf("file after Append() =\n%s\nwant both entries", data)
	}
}

func TestSavedLongNameSurvivesAppend(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("n", models.MaxSavedNameLength+1)
	fs := NewFileStore(t.TempDir(), discardLogger())
	ctx := context.Background()
	if err := fs.Set(ctx, SavedJSONsKey, []models.SavedJSON{{Name: long, Date: 1, Data: sampleDoc("Old")}}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	saved := NewSaved(fs, func() time.Time { return time.UnixMilli(1000) })
	if _, err := saved.Append(ctx, "new", sampleDoc("Slayer")); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	list, err := saved.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != long || list[1].Name != "new" {
		t.Errorf("List() = %+v, want the long-named entry kept", list)
	}
}

func TestFileStoreKeyNotArray(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `{"savedJsons": {"name": "x"}}`
	if err := os.WriteFile(filepath.Join(dir, defs.SavedJSONsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(dir, discardLogger())
	ctx := context.Background()
	if _, err := s.Get(ctx, SavedJSONsKey); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Get() error = %v, want ErrCorrupt", err)
	}
	if err := s.Set(ctx, SavedJSONsKey, nil); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Set() error = %v, want ErrCorrupt", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, defs.SavedJSONsFile))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("file changed after a refused Set():\n%s", data)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defs.SavedJSONsFile), []byte("[1,2"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(dir, discardLogger())
	if _, err := s.Get(context.Background(), SavedJSONsKey); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Get() error = %v, want ErrCorrupt", err)
	}
}

func TestStoreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range stores(t) {
		if _, err := s.Get(ctx, SavedJSONsKey); !errors.Is(err, context.Canceled) {
			t.Errorf("%s Get() error = %v", name, err)
		}
		if err := s.Set(ctx, SavedJSONsKey, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("%s Set() error = %v", name, err)
		}
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"", false},
		{"a", true},
		{strings.Repeat("x", 40), true},
		{strings.Repeat("x", 41), false},
		{strings.Repeat("é", 40), true},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err == nil) != tt.valid {
			t.Errorf("ValidateName(%d runes) error = %v, want valid=%v", len([]rune(tt.name)), err, tt.valid)
		}
	}
}

// fixedClock returns a clock that always reports ms.
func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestSavedAppend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	saved := NewSaved(NewMemoryStore(), fixedClock(1_000))

	first, err := saved.Append(ctx, "first", sampleDoc("Slayer"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if first.Date != 1_000 {
		t.Errorf("Date = %d, want 1000", first.Date)
	}

	// Same clock tick: the date is bumped to stay unique.
	second, err := saved.Append(ctx, "second", sampleDoc("CTF"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if second.Date != 1_001 {
		t.Errorf("Date = %d, want 1001", second.Date)
	}

	list, err := saved.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "first" || list[1].Name != "second" {
		t.Errorf("List() = %+v", list)
	}
}

func TestSavedAppendInvalidName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	saved := NewSaved(store, nil)

	if _, err := saved.Append(ctx, strings.Repeat("n", 41), sampleDoc("x")); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Append() error = %v, want ErrInvalidName", err)
	}
	list, _ := store.Get(ctx, SavedJSONsKey)
	if len(list) != 0 {
		t.Error("invalid Append() wrote to the store")
	}
}

func TestSavedAppendDoesNotAliasDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	saved := NewSaved(NewMemoryStore(), fixedClock(5))
	doc := sampleDoc("Slayer")
	if _, err := saved.Append(ctx, "snap", doc); err != nil {
		t.Fatal(err)
	}
	doc.Types[0].DisplayName = "changed"

	got, err := saved.Find(ctx, 5)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if got.Data.Types[0].DisplayName != "Slayer" {
		t.Error("saved snapshot aliases the caller's document")
	}
}

func TestSavedDeleteFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	saved := NewSaved(NewMemoryStore(), fixedClock(10))
	for _, n := range []string{"a", "b", "a"} {
		if _, err := saved.Append(ctx, n, sampleDoc(n)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := saved.FindByName(ctx, "a")
	if err != nil {
		t.Fatalf("FindByName() error: %v", err)
	}
	if got.Date != 12 {
		t.Errorf("FindByName() date = %d, want the most recent (12)", got.Date)
	}
	if _, err := saved.FindByName(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByName(unknown) error = %v", err)
	}

	if err := saved.Delete(ctx, 11); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := saved.Find(ctx, 11); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() after Delete error = %v", err)
	}
	if err := saved.Delete(ctx, 11); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	list, _ := saved.List(ctx)
	if len(list) != 2 {
		t.Errorf("List() len = %d, want 2", len(list))
	}
}

func TestSavedReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	saved := NewSaved(NewMemoryStore(), fixedClock(1))
	if _, err := saved.Append(ctx, "keep", sampleDoc("x")); err != nil {
		t.Fatal(err)
	}
	if err := saved.Replace(ctx, nil); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	list, _ := saved.List(ctx)
	if len(list) != 0 {
		t.Errorf("List() after Replace(nil) = %+v", list)
	}
}

func TestWithout(t *testing.T) {
	t.Parallel()

	list := []models.SavedJSON{{Name: "a", Date: 1}, {Name: "b", Date: 2}}
	got := Without(list, 1)
	if len(got) != 1 || got[0].Date != 2 {
		t.Errorf("Without() = %+v", got)
	}
	if len(list) != 2 || list[0].Date != 1 {
		t.Error("Without() modified its input")
	}
	if len(Without(list, 99)) != 2 {
		t.Error("Without(unknown) removed an entry")
	}
}
