package dirkit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Flattener collapses a one-subdirectory wrapper layout: a directory whose
// only content is a single inner directory has that inner directory's
// contents moved up one level, and the inner directory removed.
type Flattener struct {
	Logger *slog.Logger
}

// NewFlattener creates a Flattener with the given logger.
func NewFlattener(logger *slog.Logger) *Flattener {
	return &Flattener{Logger: logger}
}

// Collapse validates that dir contains no files and exactly one
// subdirectory, then moves every child of that subdirectory directly under
// dir and deletes the emptied subdirectory.
//
// Preconditions are checked in order before anything is mutated: dir must
// exist, must hold zero direct files (ErrTopLevelFiles), and must hold
// exactly one direct subdirectory (ErrWantOneSubdir). Subdirectories are
// relocated before files; a child whose destination already exists fails
// with ErrDestExists immediately. Children already relocated when a move
// fails stay relocated — there is no rollback.
func (f *Flattener) Collapse(ctx context.Context, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("directory %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files, subdirs []os.DirEntry
	for _, ent := range entries {
		if ent.IsDir() {
			subdirs = append(subdirs, ent)
		} else {
			files = append(files, ent)
		}
	}

	if len(files) > 0 {
		return fmt.Errorf("%w: %s holds %d file(s)", ErrTopLevelFiles, dir, len(files))
	}
	if len(subdirs) != 1 {
		return fmt.Errorf("%w, found %d in %s", ErrWantOneSubdir, len(subdirs), dir)
	}

	inner := filepath.Join(dir, subdirs[0].Name())
	innerEntries, err := os.ReadDir(inner)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", inner, err)
	}

	// Directories first, then files.
	for _, ent := range innerEntries {
		if !ent.IsDir() {
			continue
		}
		if err := f.moveChild(ctx, inner, dir, ent.Name(), "directory"); err != nil {
			return err
		}
	}
	for _, ent := range innerEntries {
		if ent.IsDir() {
			continue
		}
		if err := f.moveChild(ctx, inner, dir, ent.Name(), "file"); err != nil {
			return err
		}
	}

	// RemoveAll rather than Remove, so residual hidden entries cannot keep
	// the wrapper around.
	if err := os.RemoveAll(inner); err != nil {
		return fmt.Errorf("failed to remove %s: %w", inner, err)
	}

	logOr(f.Logger).Debug("collapsed directory level", "dir", dir, "inner", inner)
	return nil
}

func (f *Flattener) moveChild(ctx context.Context, inner, dir, name, kind string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := filepath.Join(dir, name)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("destination %s %s: %w", kind, dst, ErrDestExists)
	}

	src := filepath.Join(inner, name)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}

	logOr(f.Logger).Debug("moved "+kind, "from", src, "to", dst)
	return nil
}
