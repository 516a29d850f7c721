package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/skillviz/internal/config"
	"github.com/honeycarbs/skillviz/internal/domain/dataset"
	"github.com/honeycarbs/skillviz/internal/export"
	"github.com/honeycarbs/skillviz/internal/repository"
	filestorage "github.com/honeycarbs/skillviz/internal/storage/file"
	neo4jstorage "github.com/honeycarbs/skillviz/internal/storage/neo4j"
	"github.com/honeycarbs/skillviz/pkg/logging"
	pkgneo4j "github.com/honeycarbs/skillviz/pkg/neo4j"
	"github.com/honeycarbs/skillviz/pkg/sheets"
)

// storageDeps carries the selected backend plus the Neo4j client when
// that backend is active, so the client can be closed on shutdown
type storageDeps struct {
	storage     repository.Storage
	neo4jClient *pkgneo4j.Client
}

// provideStorageDeps selects the persistence backend from config
func provideStorageDeps(cfg config.Config, log *logging.Logger) (storageDeps, error) {
	switch cfg.Storage.Backend {
	case config.StorageFile:
		store, err := filestorage.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return storageDeps{}, err
		}
		log.Info("file storage backend selected", "dir", cfg.Storage.DataDir)
		return storageDeps{storage: store}, nil

	case config.StorageNeo4j:
		client, err := pkgneo4j.NewClient(pkgneo4j.Config{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
		})
		if err != nil {
			return storageDeps{}, err
		}
		log.Info("neo4j storage backend selected", "uri", cfg.Neo4j.URI)
		return storageDeps{storage: neo4jstorage.NewStore(client), neo4jClient: client}, nil

	default:
		return storageDeps{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func provideStorage(deps storageDeps) repository.Storage {
	return deps.storage
}

func provideNeo4jClient(deps storageDeps) *pkgneo4j.Client {
	return deps.neo4jClient
}

// provideDataset builds the dataset service and restores persisted state
func provideDataset(cfg config.Config, storage repository.Storage, log *logging.Logger) (*dataset.Service, error) {
	svc, err := dataset.NewService(
		dataset.WithStorage(storage),
		dataset.WithLogger(log.Named("dataset")),
		dataset.WithGuestLimit(cfg.GuestLimit),
	)
	if err != nil {
		return nil, err
	}

	// a failed restore degrades to an empty dataset, never a dead process
	if err := svc.Load(context.Background()); err != nil {
		log.Warn("dataset restore failed, starting empty", "err", err)
	}
	return svc, nil
}

// provideExporter builds the Sheets exporter, or nil when unconfigured
func provideExporter(cfg config.Config, log *logging.Logger) (*export.Exporter, error) {
	if cfg.Sheets.CredentialsPath == "" || cfg.Sheets.SpreadsheetID == "" {
		log.Info("sheets export not configured")
		return nil, nil
	}

	client, err := sheets.NewClient(context.Background(), sheets.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return export.NewExporter(client, cfg.Sheets.SpreadsheetID, log.Named("sheets"))
}

// newResources creates the Resources struct
func newResources(
	ds *dataset.Service,
	exporter *export.Exporter,
	neo4jClient *pkgneo4j.Client,
	log *logging.Logger,
) *Resources {
	return &Resources{
		Dataset:     ds,
		Exporter:    exporter,
		Neo4jClient: neo4jClient,
		Logger:      log,
	}
}
