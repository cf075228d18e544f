//go:build wireinject

package dirkit

import (
	"github.com/google/wire"
)

func InitDirs() (*Dirs, error) {
	panic(wire.Build(Wires))
}
