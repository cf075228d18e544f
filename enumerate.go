package dirkit

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/hayeah/dirkit/ignore"
)

// Enumerator provides read-only queries over a directory tree. All recursive
// queries run sequentially (a single fastwalk worker) and check the context at
// the top of each iteration. OS errors propagate unchanged.
type Enumerator struct {
	Logger *slog.Logger
}

// NewEnumerator creates an Enumerator with the given logger.
func NewEnumerator(logger *slog.Logger) *Enumerator {
	return &Enumerator{Logger: logger}
}

// walkConf returns the sequential walk configuration. One worker keeps the
// traversal on a single logical path of control.
func walkConf() *fastwalk.Config {
	return &fastwalk.Config{Follow: false, NumWorkers: 1}
}

// ImmediateDirs returns the absolute path of every immediate child directory
// of dir.
func (e *Enumerator) ImmediateDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, ent := range entries {
		if ent.IsDir() {
			dirs = append(dirs, filepath.Join(dir, ent.Name()))
		}
	}
	return dirs, nil
}

// AllDirs returns every descendant directory of dir, depth-first. The root
// itself is not included. Order is enumeration order, not sorted.
func (e *Enumerator) AllDirs(ctx context.Context, dir string) ([]string, error) {
	var dirs []string
	err := fastwalk.Walk(walkConf(), dir, func(p string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			return err
		}
		if !d.IsDir() || p == dir {
			return nil
		}
		dirs = append(dirs, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// FilesByExtension returns files in dir whose name matches "*.<ext>". A
// leading dot on ext is stripped before matching. When recursive is true the
// whole tree below dir is searched, otherwise only dir itself.
func (e *Enumerator) FilesByExtension(ctx context.Context, dir, ext string, recursive bool) ([]string, error) {
	pattern := "*." + strings.TrimPrefix(ext, ".")

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, ent := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if ent.IsDir() {
				continue
			}
			if ok, _ := filepath.Match(pattern, ent.Name()); ok {
				files = append(files, filepath.Join(dir, ent.Name()))
			}
		}
		return files, nil
	}

	var files []string
	err := fastwalk.Walk(walkConf(), dir, func(p string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DirsContainingFile returns every directory under root (root included) that
// directly contains a file literally named fileName. An empty fileName
// returns nil without touching the filesystem.
func (e *Enumerator) DirsContainingFile(ctx context.Context, root, fileName string) ([]string, error) {
	if fileName == "" {
		return nil, nil
	}
	var dirs []string
	err := fastwalk.Walk(walkConf(), root, func(p string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != fileName {
			return nil
		}
		dirs = append(dirs, filepath.Dir(p))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// Glob matches files under dir with a gitignore-style pattern ("**" descends
// any number of levels). Results are relative to dir.
func (e *Enumerator) Glob(dir, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	var rel []string
	for _, m := range matches {
		r, err := filepath.Rel(dir, m)
		if err != nil {
			return nil, err
		}
		rel = append(rel, r)
	}
	return rel, nil
}

// TrackedFiles returns every file under root that is not excluded by the
// tree's gitignore rules, relative to root. Useful for manifest-style
// listings before a copy or scan.
func (e *Enumerator) TrackedFiles(ctx context.Context, root string) ([]string, error) {
	rules, err := ignore.NewRules(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = rules.WalkDir(ctx, root, func(path string, d os.DirEntry, isDir bool) error {
		if isDir {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
