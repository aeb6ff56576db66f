package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// Saved manages the saved builder list on top of a Store.
//
// Every mutation is a read followed by a whole-list write. Two callers
// racing through Append can lose an update.
type Saved struct {
	store Store
	key   string
	now   func() time.Time
}

// NewSaved returns a Saved service over store. A nil clock uses time.Now.
func NewSaved(store Store, now func() time.Time) *Saved {
	if now == nil {
		now = time.Now
	}
	return &Saved{store: store, key: SavedJSONsKey, now: now}
}

// List returns every saved builder in stored order.
func (s *Saved) List(ctx context.Context) ([]models.SavedJSON, error) {
	list, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("list saved builders: %w", err)
	}
	return list, nil
}

// Append stores doc under name and returns the new entry. The date is
// the current time in milliseconds, bumped past any existing date so it
// stays a unique key.
func (s *Saved) Append(ctx context.Context, name string, doc models.Document) (models.SavedJSON, error) {
	if err := ValidateName(name); err != nil {
		return models.SavedJSON{}, err
	}

	list, err := s.List(ctx)
	if err != nil {
		return models.SavedJSON{}, err
	}

	date := s.now().UnixMilli()
	for _, e := range list {
		if e.Date >= date {
			date = e.Date + 1
		}
	}

	entry := models.SavedJSON{Name: name, Date: date, Data: doc.Clone()}
	if err := s.store.Set(ctx, s.key, append(list, entry)); err != nil {
		return models.SavedJSON{}, fmt.Errorf("save builder %q: %w", name, err)
	}
	return entry, nil
}

// Delete removes the entry with the given date. Deleting an unknown
// date returns ErrNotFound and writes nothing.
func (s *Saved) Delete(ctx context.Context, date int64) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	next := Without(list, date)
	if len(next) == len(list) {
		return fmt.Errorf("%w: date %d", ErrNotFound, date)
	}
	return s.Replace(ctx, next)
}

// Find returns the entry with the given date.
func (s *Saved) Find(ctx context.Context, date int64) (models.SavedJSON, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.SavedJSON{}, err
	}
	i := slices.IndexFunc(list, func(e models.SavedJSON) bool { return e.Date == date })
	if i < 0 {
		return models.SavedJSON{}, fmt.Errorf("%w: date %d", ErrNotFound, date)
	}
	return list[i], nil
}

// FindByName returns the most recent entry with the given name.
func (s *Saved) FindByName(ctx context.Context, name string) (models.SavedJSON, error) {
	list, err := s.List(ctx)
	if err != nil {
		return models.SavedJSON{}, err
	}
	var (
		found models.SavedJSON
		ok    bool
	)
	for _, e := range list {
		if e.Name == name && (!ok || e.Date > found.Date) {
			found, ok = e, true
		}
	}
	if !ok {
		return models.SavedJSON{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return found, nil
}

// Replace overwrites the whole list.
func (s *Saved) Replace(ctx context.Context, list []models.SavedJSON) error {
	if err := s.store.Set(ctx, s.key, list); err != nil {
		return fmt.Errorf("write saved builders: %w", err)
	}
	return nil
}

// Without returns a copy of list minus the entry with the given date.
func Without(list []models.SavedJSON, date int64) []models.SavedJSON {
	return slices.DeleteFunc(slices.Clone(list), func(e models.SavedJSON) bool {
		return e.Date == date
	})
}
