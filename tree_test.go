package dirkit

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTree(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "file.txt"), "x")
	writeFile(t, filepath.Join(root, "sub", "nested.txt"), "x")

	var b strings.Builder
	assert.NoError(WriteTree(&b, root))
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	abs, err := Normalize(root)
	assert.NoError(err)
	assert.Equal(abs, lines[0], "first line is the normalized root")

	assert.Contains(out, "\n  sub/\n")
	assert.Contains(out, "\n  file.txt\n")
	assert.Contains(out, "\n    nested.txt\n")
}

func TestIndentFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", indentFor(0))
	assert.Equal("    ", indentFor(2))
	// cached lookup returns the same value
	assert.Equal("    ", indentFor(2))
}
