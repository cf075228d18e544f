package dirkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// indentCache memoizes per-depth indent prefixes for tree rendering. This is
// the only shared mutable state in the package, and it is logging-only.
var (
	indentMu    sync.Mutex
	indentCache = map[int]string{}
)

func indentFor(depth int) string {
	indentMu.Lock()
	defer indentMu.Unlock()
	if s, ok := indentCache[depth]; ok {
		return s
	}
	s := strings.Repeat("  ", depth)
	indentCache[depth] = s
	return s
}

// WriteTree renders the tree rooted at root to w, one entry per line,
// indented by depth, directories suffixed with "/". The first line is the
// normalized root path. Entries within a directory are sorted with
// directories first.
func WriteTree(w io.Writer, root string) error {
	abs, err := Normalize(root)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, abs); err != nil {
		return err
	}

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
		Sort:       fastwalk.SortDirsFirst,
	}
	return fastwalk.Walk(conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(os.PathSeparator)) + 1

		name := d.Name()
		if d.IsDir() {
			name += "/"
		}
		_, err = fmt.Fprintln(w, indentFor(depth)+name)
		return err
	})
}
