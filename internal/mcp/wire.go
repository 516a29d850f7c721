//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/honeycarbs/skillviz/internal/config"
	"github.com/honeycarbs/skillviz/pkg/logging"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(cfg config.Config, log *logging.Logger) (*Resources, error) {
	wire.Build(
		provideStorageDeps,
		provideStorage,
		provideNeo4jClient,
		provideDataset,
		provideExporter,
		newResources,
	)

	return &Resources{}, nil
}
