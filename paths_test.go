package dirkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	// Relative paths resolve against the working directory
	wd, err := os.Getwd()
	assert.NoError(err)
	got, err := Normalize("foo/bar")
	assert.NoError(err)
	assert.Equal(filepath.Join(wd, "foo", "bar"), got)

	// Dot and dot-dot segments resolve
	got, err = Normalize("/a/b/../c/./d")
	assert.NoError(err)
	assert.Equal("/a/c/d", got)

	// Trailing separators are stripped
	got, err = Normalize("/a/b///")
	assert.NoError(err)
	assert.Equal("/a/b", got)

	// The filesystem root keeps its separator
	got, err = Normalize("/")
	assert.NoError(err)
	assert.Equal("/", got)
}
