package dirkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Copier copies directory trees.
type Copier struct {
	Logger *slog.Logger
}

// NewCopier creates a Copier with the given logger.
func NewCopier(logger *slog.Logger) *Copier {
	return &Copier{Logger: logger}
}

// CopyTree recursively copies the contents of src into dst. dst is created if
// it does not exist. When overwrite is false, a file that already exists at
// the destination is skipped silently; when true it is truncated and
// rewritten. File contents are streamed byte for byte.
//
// A missing src fails before any mutation. The context is checked before each
// file and each subdirectory; cancellation mid-copy leaves a partially
// written destination with no rollback.
func (c *Copier) CopyTree(ctx context.Context, src, dst string, overwrite bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source directory %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s is not a directory", src)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	for _, ent := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		srcPath := filepath.Join(src, ent.Name())
		dstPath := filepath.Join(dst, ent.Name())

		if ent.IsDir() {
			if err := c.CopyTree(ctx, srcPath, dstPath, overwrite); err != nil {
				return err
			}
			continue
		}

		if !overwrite {
			if _, err := os.Stat(dstPath); err == nil {
				logOr(c.Logger).Debug("skipping existing file", "dst", dstPath)
				continue
			}
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// copyFile streams src into dst, creating or truncating dst with src's
// permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
