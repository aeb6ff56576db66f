// Package store persists saved builders: named, timestamped snapshots of
// a builder document. Storage is a key-value collaborator that only
// supports reading and overwriting a whole list; the Saved service
// builds append and delete on top of it.
package store

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// SavedJSONsKey is the key the saved builder list is stored under.
const SavedJSONsKey = "savedJsons"

// Sentinel errors for store operations.
var (
	// ErrInvalidEntry indicates a snapshot that does not match the schema.
	ErrInvalidEntry = errors.New("store: invalid saved builder entry")

	// ErrInvalidName indicates a snapshot name outside 1..40 characters.
	ErrInvalidName = errors.New("store: name must be 1 to 40 characters")

	// ErrNotFound indicates no snapshot matched the lookup.
	ErrNotFound = errors.New("store: saved builder not found")

	// ErrCorrupt indicates the backing file is not a JSON object.
	ErrCorrupt = errors.New("store: corrupt store file")
)

// Store reads and overwrites whole lists of snapshots by key.
type Store interface {
	// Get returns the list stored under key, or an empty list.
	Get(ctx context.Context, key string) ([]models.SavedJSON, error)
	// Set replaces the list stored under key.
	Set(ctx context.Context, key string, list []models.SavedJSON) error
}

// ValidateName checks a snapshot name.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > models.MaxSavedNameLength {
		return fmt.Errorf("%w (got %d)", ErrInvalidName, n)
	}
	return nil
}

// ValidateEntry checks a stored snapshot: a non-empty name and a
// positive date. The name length limit applies to new snapshots only
// (see ValidateName), so older entries stay readable and writable.
func ValidateEntry(e models.SavedJSON) error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if e.Date <= 0 {
		return fmt.Errorf("%w: date must be positive", ErrInvalidEntry)
	}
	return nil
}

func cloneList(list []models.SavedJSON) []models.SavedJSON {
	out := make([]models.SavedJSON, len(list))
	for i, e := range list {
		out[i] = e
		out[i].Data = e.Data.Clone()
	}
	return out
}
