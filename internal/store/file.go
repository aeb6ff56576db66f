package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/internal/fsutil"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// FileStore keeps every key in one JSON object on disk.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileStore returns a store backed by savedJsons.json in configDir.
func NewFileStore(configDir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		path:   filepath.Join(filepath.Clean(configDir), defs.SavedJSONsFile),
		logger: logger,
	}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Get implements Store. Entries that do not match the schema are
// skipped with a warning; they stay in the file and Set keeps them.
func (s *FileStore) Get(ctx context.Context, key string) ([]models.SavedJSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return nil, err
	}
	list, skipped, err := s.decodeItems(key, doc[key])
	if err != nil {
		return nil, err
	}
	for _, sk := range skipped {
		s.logger.Warn("skipping unreadable saved builder entry", "key", key, "index", sk.index, "error", sk.err)
	}
	return list, nil
}

// Set implements Store. Other keys in the file are preserved, and so are
// the entries under key that Get skipped.
func (s *FileStore) Set(ctx context.Context, key string, list []models.SavedJSON) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for i, e := range list {
		if err := ValidateEntry(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	_, skipped, err := s.decodeItems(key, doc[key])
	if err != nil {
		return err
	}

	items := make([]json.RawMessage, 0, len(list)+len(skipped))
	for _, e := range list {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		items = append(items, raw)
	}
	for _, sk := range skipped {
		items = append(items, sk.raw)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	doc[key] = raw

	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return fmt.Errorf("encode %s: %w", defs.SavedJSONsFile, err)
	}
	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", defs.SavedJSONsFile, err)
	}
	return nil
}

// skippedItem is a stored entry that does not decode into a valid
// snapshot.
type skippedItem struct {
	index int
	raw   json.RawMessage
	err   error
}

// decodeItems splits the list stored under key into valid snapshots and
// skipped raw items. A value that is not an array is ErrCorrupt.
func (s *FileStore) decodeItems(key string, raw json.RawMessage) ([]models.SavedJSON, []skippedItem, error) {
	list := []models.SavedJSON{}
	if len(raw) == 0 || string(raw) == "null" {
		return list, nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %q is not an array", ErrCorrupt, s.path, key)
	}

	var skipped []skippedItem
	for i, item := range items {
		var e models.SavedJSON
		err := json.Unmarshal(item, &e)
		if err == nil {
			err = ValidateEntry(e)
		}
		if err != nil {
			skipped = append(skipped, skippedItem{index: i, raw: item, err: err})
			continue
		}
		e.Data = e.Data.Clone()
		list = append(list, e)
	}
	return list, skipped, nil
}

func (s *FileStore) readLocked() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", defs.SavedJSONsFile, err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return doc, nil
}
