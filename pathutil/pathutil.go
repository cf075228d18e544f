// Package pathutil mints filesystem paths that are unique per call.
package pathutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UniqueTempDir returns the path of a unique directory named
// "<prefix>-<uuid>" under the OS temp root. When create is true the
// directory is created with mode 0700.
func UniqueTempDir(ctx context.Context, prefix string, create bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", prefix, uuid.NewString()))
	if create {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("failed to create temp directory %s: %w", dir, err)
		}
	}
	return dir, nil
}
