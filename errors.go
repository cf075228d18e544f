package dirkit

import (
	"errors"
	"log/slog"
)

// Sentinel errors for structural violations. NotFound and permission failures
// are the stdlib io/fs sentinels, carried through wrapped errors, so callers
// can test all of them with errors.Is.
var (
	// ErrTopLevelFiles is returned by Collapse when the wrapper directory
	// contains files at its top level.
	ErrTopLevelFiles = errors.New("unexpected files at top level")

	// ErrWantOneSubdir is returned by Collapse when the wrapper directory does
	// not contain exactly one subdirectory.
	ErrWantOneSubdir = errors.New("expected exactly one subdirectory")

	// ErrDestExists is returned by Collapse when a relocated child would
	// clobber an existing entry.
	ErrDestExists = errors.New("destination already exists")
)

// logOr returns l, or the process default logger when l is nil. A missing
// logger changes observability only, never control flow.
func logOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
