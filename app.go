package dirkit

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/wire"
	"github.com/hayeah/goo"

	"github.com/hayeah/dirkit/pathutil"
	"github.com/hayeah/dirkit/sched"
)

type Config struct {
	goo.Config
	Dir DirConfig
}

// DirConfig holds the library's own settings.
type DirConfig struct {
	// TempPrefix names temp directories minted by Dirs.TempDir. Defaults to
	// "dirkit".
	TempPrefix string
}

func ProvideConfig() (*Config, error) {
	cfg, err := goo.ParseConfig[Config]("")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func ProvideGooConfig(cfg *Config) (*goo.Config, error) {
	return &cfg.Config, nil
}

// ProvideRunner defaults to inline execution; callers that must not block
// swap in sched.Background.
func ProvideRunner() sched.Runner {
	return sched.Inline{}
}

func ProvideEnumerator(logger *slog.Logger) *Enumerator {
	return NewEnumerator(logger)
}

func ProvideScanner(logger *slog.Logger) *Scanner {
	return NewScanner(logger)
}

func ProvidePruner(logger *slog.Logger, enum *Enumerator) *Pruner {
	return NewPruner(logger, enum)
}

func ProvideCopier(logger *slog.Logger) *Copier {
	return NewCopier(logger)
}

func ProvideFlattener(logger *slog.Logger) *Flattener {
	return NewFlattener(logger)
}

// collect all the necessary providers
var Wires = wire.NewSet(
	goo.Wires,
	// provide the base config for goo library
	ProvideGooConfig,

	// library providers
	ProvideConfig,
	ProvideRunner,
	ProvideEnumerator,
	ProvideScanner,
	ProvidePruner,
	ProvideCopier,
	ProvideFlattener,

	wire.Struct(new(Dirs), "*"),
)

// Dirs aggregates the directory operations behind a single facade. Every
// operation executes through the injected Runner, so the caller's execution
// policy (inline or offloaded) applies uniformly.
type Dirs struct {
	Config    *Config
	Shutdown  *goo.ShutdownContext
	Logger    *slog.Logger
	Runner    sched.Runner
	Enum      *Enumerator
	Scanner   *Scanner
	Pruner    *Pruner
	Copier    *Copier
	Flattener *Flattener
}

// TreeSize computes the total file size under dir. See Scanner.TreeSize.
func (d *Dirs) TreeSize(ctx context.Context, dir string, opts SizeOptions) (int64, error) {
	var total int64
	err := d.Runner.Do(ctx, func(ctx context.Context) error {
		var err error
		total, err = d.Scanner.TreeSize(ctx, dir, opts)
		return err
	})
	return total, err
}

// CopyTree copies src into dst. See Copier.CopyTree.
func (d *Dirs) CopyTree(ctx context.Context, src, dst string, overwrite bool) error {
	return d.Runner.Do(ctx, func(ctx context.Context) error {
		return d.Copier.CopyTree(ctx, src, dst, overwrite)
	})
}

// PruneEmpty deletes empty descendant directories of root. See
// Pruner.PruneEmpty.
func (d *Dirs) PruneEmpty(ctx context.Context, root string) error {
	return d.Runner.Do(ctx, func(ctx context.Context) error {
		return d.Pruner.PruneEmpty(ctx, root)
	})
}

// Collapse flattens a one-subdirectory wrapper layout. See
// Flattener.Collapse.
func (d *Dirs) Collapse(ctx context.Context, dir string) error {
	return d.Runner.Do(ctx, func(ctx context.Context) error {
		return d.Flattener.Collapse(ctx, dir)
	})
}

// TempDir mints a unique temp directory using the configured prefix,
// creating it when create is true.
func (d *Dirs) TempDir(ctx context.Context, create bool) (string, error) {
	prefix := d.Config.Dir.TempPrefix
	if prefix == "" {
		prefix = "dirkit"
	}
	return pathutil.UniqueTempDir(ctx, prefix, create)
}

// LogTree renders the tree under root and logs it at debug level. Rendering
// failures are logged, not returned; this is an observability helper.
func (d *Dirs) LogTree(ctx context.Context, root string) {
	if err := ctx.Err(); err != nil {
		return
	}
	var b strings.Builder
	if err := WriteTree(&b, root); err != nil {
		logOr(d.Logger).Warn("failed to render directory tree", "root", root, "err", err)
		return
	}
	logOr(d.Logger).Debug("directory tree", "root", root, "tree", b.String())
}
