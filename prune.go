package dirkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Pruner finds and deletes directories with no entries.
type Pruner struct {
	Logger *slog.Logger
	Enum   *Enumerator
}

// NewPruner creates a Pruner backed by the given enumerator.
func NewPruner(logger *slog.Logger, enum *Enumerator) *Pruner {
	return &Pruner{Logger: logger, Enum: enum}
}

// Empty returns every descendant directory of root with zero direct entries.
// The root itself is never included. Emptiness is probed with a single
// Readdirnames advance rather than a full directory read.
func (p *Pruner) Empty(ctx context.Context, root string) ([]string, error) {
	dirs, err := p.Enum.AllDirs(ctx, root)
	if err != nil {
		return nil, err
	}

	var empty []string
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := isEmptyDir(dir)
		if err != nil {
			return nil, err
		}
		if ok {
			empty = append(empty, dir)
		}
	}
	return empty, nil
}

// PruneEmpty deletes every empty descendant directory of root, in the order
// Empty returns them. This is a single-pass sweep: a parent that becomes
// empty only because its child was deleted in the same pass is left for a
// later call, not re-detected. A deletion failure (e.g. a race filled the
// directory back up) propagates unchanged.
func (p *Pruner) PruneEmpty(ctx context.Context, root string) error {
	empty, err := p.Empty(ctx, root)
	if err != nil {
		return err
	}

	for _, dir := range empty {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("failed to delete empty directory %s: %w", dir, err)
		}
		logOr(p.Logger).Debug("deleted empty directory", "dir", dir)
	}
	return nil
}

// isEmptyDir reports whether dir has no entries, advancing its listing once
// and short-circuiting.
func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}
