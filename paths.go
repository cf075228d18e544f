package dirkit

import (
	"fmt"
	"path/filepath"
)

// Normalize resolves path to its absolute, canonical form, resolving "." and
// ".." segments and stripping any trailing separator. Filesystem roots keep
// their separator ("/" stays "/").
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	// filepath.Abs cleans the result, which already strips trailing
	// separators for everything but the root.
	return abs, nil
}
