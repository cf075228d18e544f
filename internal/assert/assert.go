package assert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// FileContent asserts that the file at path holds exactly the given bytes.
func (a *Assert) FileContent(path, want string) {
	a.T.Helper()
	data, err := os.ReadFile(path)
	a.NoError(err, "Failed to read %s", path)
	a.Equal(want, string(data), "Content mismatch for %s", path)
}

// WriteFile writes a file fixture, creating parent directories as needed.
func (a *Assert) WriteFile(path, content string) {
	a.T.Helper()
	a.NoError(os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create parent of %s", path)
	a.NoError(os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", path)
}
