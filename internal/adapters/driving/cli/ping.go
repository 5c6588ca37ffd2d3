package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// embeddingService is checked by the ping command, injected by the
// composition root.
var embeddingService driven.EmbeddingService

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the embedding service is reachable",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

// SetEmbeddingService injects the embedding service for ping.
func SetEmbeddingService(e driven.EmbeddingService) {
	embeddingService = e
}

func runPing(cmd *cobra.Command, _ []string) error {
	if embeddingService == nil {
		return errors.New("embedding service not configured")
	}

	if err := embeddingService.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("embedding service unreachable: %w", err)
	}
	cmd.Printf("Embedding service is up (model %s)\n", embeddingService.ModelName())
	return nil
}
