// Package cli implements the command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
	"github.com/veldt-labs/ragvault/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands talk to, injected by the composition root
// before Execute. Commands check for nil so a partially wired binary
// fails with a clear message instead of a panic.
var (
	ingestService      driving.IngestService
	searchService      driving.SearchService
	indexService       driving.IndexService
	settingsService    driving.SettingsService
	persistenceService driving.PersistenceService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ragvault",
	Short: "Local RAG document pipeline",
	Long: `ragvault ingests documents into a local vector index and answers
similarity queries against it. Embeddings come from a locally running
Ollama instance; the index is persisted as JSON snapshots.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the commands need.
type Services struct {
	Ingest      driving.IngestService
	Search      driving.SearchService
	Index       driving.IndexService
	Settings    driving.SettingsService
	Persistence driving.PersistenceService
}

// SetServices injects the service implementations.
func SetServices(s Services) {
	ingestService = s.Ingest
	searchService = s.Search
	indexService = s.Index
	settingsService = s.Settings
	persistenceService = s.Persistence
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
