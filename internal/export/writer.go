package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/resurgence-tools/edjb/internal/fsutil"
)

// PathChooser picks the destination of one exported file. Returning
// ok=false skips that file; the remaining files are still offered.
type PathChooser interface {
	ChoosePath(ctx context.Context, name string) (path string, ok bool, err error)
}

// PathChooserFunc adapts a function to PathChooser.
type PathChooserFunc func(ctx context.Context, name string) (string, bool, error)

// ChoosePath implements PathChooser.
func (f PathChooserFunc) ChoosePath(ctx context.Context, name string) (string, bool, error) {
	return f(ctx, name)
}

// InDir writes every file under dir using its default name.
func InDir(dir string) PathChooser {
	return PathChooserFunc(func(_ context.Context, name string) (string, bool, error) {
		return filepath.Join(dir, name), true, nil
	})
}

// FixedPaths maps file names to explicit destinations. Names without
// an entry fall back to dir.
func FixedPaths(dir string, paths map[string]string) PathChooser {
	return PathChooserFunc(func(_ context.Context, name string) (string, bool, error) {
		if p := paths[name]; p != "" {
			return p, true, nil
		}
		return filepath.Join(dir, name), true, nil
	})
}

// WriteResult is the outcome for one file.
type WriteResult struct {
	Name    string
	Path    string
	Skipped bool
	Err     error
}

// Writer writes exported files to disk.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a Writer. A nil logger uses slog.Default().
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteAll asks for a destination per file and writes each one on its
// own. A failure on one file never prevents the next from being written;
// all failures are returned joined.
func (w *Writer) WriteAll(ctx context.Context, files []File, chooser PathChooser) ([]WriteResult, error) {
	results := make([]WriteResult, 0, len(files))
	var errs []error

	for _, f := range files {
		res := w.writeOne(ctx, f, chooser)
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, res.Err))
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func (w *Writer) writeOne(ctx context.Context, f File, chooser PathChooser) WriteResult {
	res := WriteResult{Name: f.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	path, ok, err := chooser.ChoosePath(ctx, f.Name)
	if err != nil {
		res.Err = err
		return res
	}
	if !ok || path == "" {
		res.Skipped = true
		w.logger.Debug("export skipped", "file", f.Name)
		return res
	}

	res.Path = path
	data, err := w.merge(f, path)
	if err != nil {
		res.Err = err
		return res
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		res.Err = err
		w.logger.Warn("export write failed", "file", f.Name, "path", path, "error", err)
		return res
	}
	w.logger.Debug("export written", "file", f.Name, "path", path)
	return res
}

// merge returns the bytes to write for f at path. An existing file that
// f.Merge cannot read is replaced, with a warning.
func (w *Writer) merge(f File, path string) ([]byte, error) {
	if f.Merge == nil {
		return f.Data, nil
	}
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f.Data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read existing file: %w", err)
	}
	merged, err := f.Merge(existing)
	if err != nil {
		w.logger.Warn("existing file not merged, overwriting", "file", f.Name, "path", path, "error", err)
		return f.Data, nil
	}
	return merged, nil
}
