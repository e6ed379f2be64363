package cmd

import (
	"github.com/umleo/schedview/internal/config"
	"github.com/umleo/schedview/internal/explore"
	"github.com/umleo/schedview/internal/sources"
	"github.com/umleo/schedview/pkg/buildings"
)

// newExplorer wires the loader and building lookup from the resolved
// configuration. Each command invocation builds its own; the loader caches
// per process anyway.
func newExplorer() (*explore.Explorer, error) {
	loader := sources.New(sources.WithDataDir(config.DataDir()))
	if err := loader.Verify(); err != nil {
		return nil, err
	}
	b := buildings.New(buildings.WithURL(config.BuildingsURL()))
	return explore.New(loader, b), nil
}
