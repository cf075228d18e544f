package dirkit

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/dirkit/sched"
)

func newDirs(runner sched.Runner) *Dirs {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	enum := NewEnumerator(logger)
	return &Dirs{
		Config:    &Config{},
		Logger:    logger,
		Runner:    runner,
		Enum:      enum,
		Scanner:   NewScanner(logger),
		Pruner:    NewPruner(logger, enum),
		Copier:    NewCopier(logger),
		Flattener: NewFlattener(logger),
	}
}

func TestDirsRunnerAgnostic(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	root := t.TempDir()

	writeBlob(t, filepath.Join(root, "a"), 10)
	writeBlob(t, filepath.Join(root, "sub", "b"), 20)

	// The facade behaves identically whichever execution branch is taken.
	inline, err := newDirs(sched.Inline{}).TreeSize(ctx, root, DefaultSizeOptions())
	assert.NoError(err)
	offloaded, err := newDirs(sched.Background{}).TreeSize(ctx, root, DefaultSizeOptions())
	assert.NoError(err)
	assert.Equal(inline, offloaded)
	assert.Equal(int64(30), inline)
}

func TestDirsTempDir(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	d := newDirs(sched.Inline{})
	p, err := d.TempDir(ctx, false)
	assert.NoError(err)
	assert.Contains(filepath.Base(p), "dirkit-", "default prefix applies")

	d.Config.Dir.TempPrefix = "staging"
	p, err = d.TempDir(ctx, false)
	assert.NoError(err)
	assert.True(strings.HasPrefix(filepath.Base(p), "staging-"))
}

func TestDirsCollapseViaRunner(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "inner", "x.txt"), "x")

	d := newDirs(sched.Background{})
	assert.NoError(d.Collapse(ctx, dir))
	assert.FileExists(filepath.Join(dir, "x.txt"))
	assert.NoDirExists(filepath.Join(dir, "inner"))
}
