package dirkit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// SizeOptions configures a size scan.
type SizeOptions struct {
	// Recursive descends into subdirectories. Default true.
	Recursive bool

	// ContinueOnError skips unreadable directories instead of aborting the
	// scan. Default true.
	ContinueOnError bool

	// Progress, when set, is invoked with the running total once after each
	// directory's files have been summed.
	Progress func(total int64)
}

// DefaultSizeOptions returns the default scan configuration: recursive,
// tolerant of unreadable subtrees.
func DefaultSizeOptions() SizeOptions {
	return SizeOptions{Recursive: true, ContinueOnError: true}
}

// Scanner aggregates file sizes across a directory tree.
type Scanner struct {
	Logger *slog.Logger

	// readDir is swapped in tests to simulate unreadable directories.
	readDir func(string) ([]os.DirEntry, error)
}

// NewScanner creates a Scanner with the given logger.
func NewScanner(logger *slog.Logger) *Scanner {
	return &Scanner{Logger: logger}
}

func (s *Scanner) readDirFn() func(string) ([]os.DirEntry, error) {
	if s.readDir == nil {
		return os.ReadDir
	}
	return s.readDir
}

// TreeSize returns the total byte size of the files under dir. A nonexistent
// dir returns 0 without scanning.
//
// The traversal uses an explicit LIFO stack rather than recursion, so
// arbitrarily deep trees cannot overflow the call stack. Each directory is
// visited exactly once. When a directory cannot be read, the failure is
// logged and the rest of the stack proceeds if ContinueOnError is set;
// otherwise the running total so far is returned alongside the error and the
// remaining stacked directories are abandoned. Cancellation is checked at the
// top of each stack pop and before each file-size lookup, and aborts the scan
// immediately.
func (s *Scanner) TreeSize(ctx context.Context, dir string, opts SizeOptions) (int64, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	var total int64
	stack := []string{dir}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := s.readDirFn()(cur)
		if err != nil {
			if !opts.ContinueOnError {
				return total, fmt.Errorf("failed to read directory %s: %w", cur, err)
			}
			logOr(s.Logger).Warn("skipping unreadable directory", "dir", cur, "err", err)
			continue
		}

		for _, ent := range entries {
			if ent.IsDir() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return total, err
			}
			info, err := ent.Info()
			if err != nil {
				if !opts.ContinueOnError {
					return total, fmt.Errorf("failed to stat %s: %w", filepath.Join(cur, ent.Name()), err)
				}
				logOr(s.Logger).Warn("skipping unreadable file", "file", filepath.Join(cur, ent.Name()), "err", err)
				continue
			}
			total += info.Size()
		}

		if opts.Progress != nil {
			opts.Progress(total)
		}

		if opts.Recursive {
			for _, ent := range entries {
				if ent.IsDir() {
					stack = append(stack, filepath.Join(cur, ent.Name()))
				}
			}
		}
	}

	return total, nil
}
