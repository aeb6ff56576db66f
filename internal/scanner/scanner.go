// Package scanner lists the map and game variants stored in an
// ElDewrito data folder.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/unicode/norm"

	"github.com/resurgence-tools/edjb/internal/defs"
)

// Listing holds the entry names found in a data folder.
type Listing struct {
	Maps  []string `json:"maps"`
	Types []string `json:"types"`
}

// Scanner lists variant folders. The zero value reads the local file
// system.
type Scanner struct {
	fsys   fs.FS
	logger *slog.Logger
}

// New returns a Scanner that reads the local file system.
func New(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// NewFS returns a Scanner that reads from fsys, with paths relative to
// its root (used by tests).
func NewFS(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys, logger: slog.Default()}
}

// Scan lists every direct child of parentDir/map_variants and
// parentDir/game_variants. Names are NFC-normalized and sorted.
// A missing subdirectory is reported as a *DirError wrapping
// ErrVariantsDirNotFound; an empty listing is never returned in its place.
func (s *Scanner) Scan(ctx context.Context, parentDir string) (*Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maps, err := s.list(parentDir, defs.MapVariantsDir)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	types, err := s.list(parentDir, defs.GameVariantsDir)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("scanned variants folder", "dir", parentDir, "maps", len(maps), "types", len(types))
	return &Listing{Maps: maps, Types: types}, nil
}

func (s *Scanner) list(parentDir, sub string) ([]string, error) {
	var (
		dir     string
		entries []fs.DirEntry
		err     error
	)
	if s.fsys != nil {
		dir = filepath.ToSlash(filepath.Join(parentDir, sub))
		entries, err = fs.ReadDir(s.fsys, dir)
	} else {
		dir = filepath.Join(filepath.Clean(parentDir), sub)
		entries, err = os.ReadDir(dir)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DirError{Dir: dir, Wrapped: fmt.Errorf("%w: %s", ErrVariantsDirNotFound, sub)}
		}
		return nil, &DirError{Dir: dir, Wrapped: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, norm.NFC.String(e.Name()))
	}
	slices.Sort(names)
	return names, nil
}
