// Package builder maintains the in-memory list of type records edited
// during a builder session.
package builder

import (
	"errors"
	"slices"
	"sync"

	"github.com/resurgence-tools/edjb/pkg/models"
)

// MinExportTypes is the number of saved types required before an
// export is offered.
const MinExportTypes = 2

// ErrTooFewTypes is returned when an export is requested with fewer
// than MinExportTypes saved types.
var ErrTooFewTypes = errors.New("builder: at least 2 saved types are required to export")

// Op is a reconciler operation.
type Op int

const (
	// OpSave adds the record or replaces the record with the same id.
	OpSave Op = iota
	// OpDelete removes the record with the same id.
	OpDelete
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpSave:
		return "save"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Session holds the type records of one builder session together with
// the ids of the forms currently open. The type list is always sorted
// ascending by id.
type Session struct {
	mu    sync.RWMutex
	ids   *IDGenerator
	types []models.TypeRecord
	forms []int64
	maps  []models.MapRef
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{ids: NewIDGenerator()}
}

// NewType opens a new type form and returns a record carrying the form's
// fresh id. The record is not part of the type list until it is saved.
func (s *Session) NewType() models.TypeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	s.forms = append(s.forms, id)
	return models.NewTypeRecord(id)
}

// Apply merges one edit into the type list and returns a copy of the
// resulting list.
//
// Delete removes the record whose id matches and closes its form; an
// unknown id leaves the list unchanged. Save replaces the record with the
// same id, or appends it when none exists, then re-sorts by id.
func (s *Session) Apply(rec models.TypeRecord, op Op) []models.TypeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case OpDelete:
		s.types = slices.DeleteFunc(s.types, func(t models.TypeRecord) bool {
			return t.ID == rec.ID
		})
		s.forms = slices.DeleteFunc(s.forms, func(id int64) bool {
			return id == rec.ID
		})
	case OpSave:
		saved := rec.Clone()
		idx := slices.IndexFunc(s.types, func(t models.TypeRecord) bool {
			return t.ID == rec.ID
		})
		if idx == -1 {
			s.types = append(s.types, saved)
		} else {
			s.types[idx] = saved
		}
		if !slices.Contains(s.forms, rec.ID) {
			s.forms = append(s.forms, rec.ID)
		}
		s.ids.Observe(rec.ID)
		sortByID(s.types)
	}

	return s.typesLocked()
}

// Types returns a copy of the type list.
func (s *Session) Types() []models.TypeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typesLocked()
}

// Get returns the saved record with the given id.
func (s *Session) Get(id int64) (models.TypeRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.types {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.TypeRecord{}, false
}

// Forms returns the ids of the open type forms in creation order.
func (s *Session) Forms() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.forms)
}

// Len returns the number of saved types.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.types)
}

// CanExport reports whether enough types are saved to export.
func (s *Session) CanExport() bool {
	return s.Len() >= MinExportTypes
}

// Document returns a deep copy of the session state as a document.
func (s *Session) Document() models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Document{Maps: s.maps, Types: s.types}.Clone()
}

// Load replaces the session state with a saved document. Records without
// an id, or with an id already used earlier in the document, get a fresh
// one; the list is then sorted ascending by id like every other update.
func (s *Session) Load(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range doc.Types {
		s.ids.Observe(t.ID)
	}

	seen := make(map[int64]bool, len(doc.Types))
	s.types = make([]models.TypeRecord, 0, len(doc.Types))
	s.forms = make([]int64, 0, len(doc.Types))
	for _, t := range doc.Types {
		rec := normalize(t.Clone())
		if rec.ID <= 0 || seen[rec.ID] {
			rec.ID = s.ids.Next()
		}
		seen[rec.ID] = true
		s.types = append(s.types, rec)
		s.forms = append(s.forms, rec.ID)
	}
	sortByID(s.types)
	s.maps = slices.Clone(doc.Maps)
}

func (s *Session) typesLocked() []models.TypeRecord {
	out := make([]models.TypeRecord, len(s.types))
	for i, t := range s.types {
		out[i] = t.Clone()
	}
	return out
}

func sortByID(types []models.TypeRecord) {
	slices.SortFunc(types, func(a, b models.TypeRecord) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

// normalize restores the form defaults of fields pruned on export.
func normalize(t models.TypeRecord) models.TypeRecord {
	if t.RandomChance == 0 {
		t.RandomChance = models.DefaultRandomChance
	}
	return t
}
