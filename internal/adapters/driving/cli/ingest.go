package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/ragvault/internal/core/ports/driving"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Ingest documents into the index",
	Long: `Extracts text from the given files, chunks it, embeds every chunk
via Ollama and adds the documents to the index. Supported formats:
txt, csv, json (pdf files are indexed as a placeholder note).

Files are processed independently: one unreadable file does not stop
the rest of the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	files := make([]driving.NamedFile, 0, len(args))
	results := make([]driving.IngestResult, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			// Unreadable paths join the summary instead of aborting
			// the batch, same as extraction failures.
			results = append(results, driving.IngestResult{
				Name: filepath.Base(path),
				Err:  fmt.Errorf("reading %s: %w", path, err),
			})
			continue
		}
		files = append(files, driving.NamedFile{Name: filepath.Base(path), Data: data})
	}

	results = append(results, ingestService.IngestBatch(cmd.Context(), files)...)

	failed := 0
	for _, r := range results {
		switch {
		case !r.Succeeded():
			failed++
			cmd.Printf("  FAIL %s: %v\n", r.Name, r.Err)
		case r.PersistErr != nil:
			cmd.Printf("  ok   %s: %d chunks (warning: autosave failed: %v)\n", r.Name, r.Chunks, r.PersistErr)
		default:
			cmd.Printf("  ok   %s: %d chunks\n", r.Name, r.Chunks)
		}
	}

	cmd.Printf("\nIngested %d of %d files\n", len(results)-failed, len(results))
	if failed == len(results) {
		return errors.New("all files failed to ingest")
	}
	return nil
}
