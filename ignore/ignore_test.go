package ignore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestExcluded(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()

	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\nbuild/\n")

	rules, err := NewRules(root)
	assert.NoError(err)

	excluded, err := rules.Excluded(filepath.Join(root, "app.log"), false)
	assert.NoError(err)
	assert.True(excluded)

	excluded, err = rules.Excluded(filepath.Join(root, "build"), true)
	assert.NoError(err)
	assert.True(excluded)

	excluded, err = rules.Excluded(filepath.Join(root, "main.go"), false)
	assert.NoError(err)
	assert.False(excluded)

	// .git is always excluded
	excluded, err = rules.Excluded(filepath.Join(root, ".git"), true)
	assert.NoError(err)
	assert.True(excluded)

	// the root itself never is
	excluded, err = rules.Excluded(root, true)
	assert.NoError(err)
	assert.False(excluded)
}

func TestWalkDir(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, ".gitignore"), "skipme/\n")
	writeFile(t, filepath.Join(root, "a.txt"), "x")
	writeFile(t, filepath.Join(root, "skipme", "b.txt"), "x")

	rules, err := NewRules(root)
	assert.NoError(err)

	var seen []string
	err = rules.WalkDir(ctx, root, func(path string, d os.DirEntry, isDir bool) error {
		if isDir {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		seen = append(seen, rel)
		return nil
	})
	assert.NoError(err)
	assert.ElementsMatch([]string{".gitignore", "a.txt"}, seen, "excluded directories are skipped whole")
}

func TestWalkDirCancellation(t *testing.T) {
	assert := assert.New(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "x")

	rules, err := NewRules(root)
	assert.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = rules.WalkDir(ctx, root, func(path string, d os.DirEntry, isDir bool) error {
		return nil
	})
	assert.ErrorIs(err, context.Canceled)
}
