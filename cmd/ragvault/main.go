// Command ragvault is a local RAG document pipeline: it ingests
// documents into an in-memory vector index, answers similarity
// queries via Ollama embeddings and persists the index as JSON
// snapshots.
package main

import (
	"context"
	"fmt"
	"os"

	configfile "github.com/veldt-labs/ragvault/internal/adapters/driven/config/file"
	"github.com/veldt-labs/ragvault/internal/adapters/driven/embedding/ollama"
	indexmemory "github.com/veldt-labs/ragvault/internal/adapters/driven/index/memory"
	storagefile "github.com/veldt-labs/ragvault/internal/adapters/driven/storage/file"
	"github.com/veldt-labs/ragvault/internal/adapters/driven/storage/httpapi"
	storagesqlite "github.com/veldt-labs/ragvault/internal/adapters/driven/storage/sqlite"
	"github.com/veldt-labs/ragvault/internal/adapters/driving/cli"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
	"github.com/veldt-labs/ragvault/internal/core/services"
	"github.com/veldt-labs/ragvault/internal/extractors"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore(os.Getenv("RAGVAULT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(config)

	embedder := ollama.NewEmbeddingService(ollama.Config{
		BaseURL: config.GetString("embedding.base_url"),
		Model:   settingsService.Get().EmbeddingModel,
	})

	store, err := newSnapshotStore(config)
	if err != nil {
		return fmt.Errorf("opening snapshot storage: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	index := indexmemory.NewIndex()
	persistenceService := services.NewPersistenceService(index, store, settingsService)
	ingestService := services.NewIngestService(
		extractors.NewRegistry(), embedder, index, settingsService, persistenceService)
	searchService := services.NewSearchService(embedder, index)
	indexService := services.NewIndexService(index, settingsService, persistenceService)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Ingest:      ingestService,
		Search:      searchService,
		Index:       indexService,
		Settings:    settingsService,
		Persistence: persistenceService,
	})
	cli.SetServeStore(store)
	cli.SetEmbeddingService(embedder)

	// The index lives in process memory, so each invocation starts
	// from the last snapshot. Failure to restore degrades to an empty
	// index rather than blocking the command.
	if _, err := persistenceService.Restore(context.Background()); err != nil {
		logger.Warn("could not restore snapshot: %v", err)
	}

	return cli.Execute()
}

// newSnapshotStore picks the storage backend from config. Default is
// a local directory; "http" targets the companion storage service and
// "sqlite" keeps snapshots in one database file.
func newSnapshotStore(config driven.ConfigStore) (driven.SnapshotStore, error) {
	switch backend := config.GetString("storage.backend"); backend {
	case "", "file":
		return storagefile.NewStore(config.GetString("storage.dir"))
	case "http":
		return httpapi.NewStore(httpapi.Config{
			BaseURL: config.GetString("storage.url"),
		}), nil
	case "sqlite":
		return storagesqlite.NewStore(config.GetString("storage.data_dir"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected file, http or sqlite)", backend)
	}
}
