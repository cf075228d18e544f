package pathutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueTempDir(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// Without create, only a path is minted
	p1, err := UniqueTempDir(ctx, "dirkit-test", false)
	assert.NoError(err)
	_, err = os.Stat(p1)
	assert.True(os.IsNotExist(err))

	// Paths are unique per call
	p2, err := UniqueTempDir(ctx, "dirkit-test", false)
	assert.NoError(err)
	assert.NotEqual(p1, p2)

	// With create, the directory exists
	p3, err := UniqueTempDir(ctx, "dirkit-test", true)
	assert.NoError(err)
	t.Cleanup(func() { os.Remove(p3) })
	assert.DirExists(p3)
	assert.Equal(filepath.Clean(os.TempDir()), filepath.Dir(p3))
}

func TestUniqueTempDirCancellation(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := UniqueTempDir(ctx, "dirkit-test", true)
	assert.ErrorIs(err, context.Canceled)
}
