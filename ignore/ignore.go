// Package ignore applies a tree's gitignore rules to directory traversal.
package ignore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Rules matches paths against the gitignore patterns found under a root
// directory. The .git directory itself is always excluded.
type Rules struct {
	matcher gitignore.Matcher
	root    string
}

// NewRules reads every .gitignore under root and compiles a matcher for it.
func NewRules(root string) (*Rules, error) {
	fs := osfs.New(root)
	patterns, err := gitignore.ReadPatterns(fs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read gitignore patterns: %w", err)
	}

	return &Rules{
		matcher: gitignore.NewMatcher(patterns),
		root:    root,
	}, nil
}

// Excluded reports whether path is ignored under the rules. path must be
// inside the root the rules were built for.
func (r *Rules) Excluded(path string, isDir bool) (bool, error) {
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}

	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return false, err
	}
	if rel == "." {
		return false, nil
	}

	parts := strings.Split(rel, string(os.PathSeparator))
	return r.matcher.Match(parts, isDir), nil
}

// WalkDir walks the tree rooted at root, calling fn for every file and
// directory that is not excluded. Excluded directories are skipped whole.
// The context is checked at the top of each visit.
func (r *Rules) WalkDir(ctx context.Context, root string, fn func(path string, d os.DirEntry, isDir bool) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			return err
		}

		isDir := d.IsDir()
		excluded, err := r.Excluded(path, isDir)
		if err != nil {
			return err
		}
		if excluded {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		return fn(path, d, isDir)
	})
}
