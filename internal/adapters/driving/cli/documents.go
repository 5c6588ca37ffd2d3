package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage indexed documents",
	RunE:  runDocumentsList,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents",
	RunE:  runDocumentsList,
}

var documentsRemoveCmd = &cobra.Command{
	Use:   "remove [document-id]",
	Short: "Remove a document from the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsRemove,
}

var documentsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all documents from the in-memory index",
	Long: `Empties the in-memory index. Durable snapshots are kept; use
"snapshot clear" to delete those as well.`,
	RunE: runDocumentsClear,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsRemoveCmd)
	documentsCmd.AddCommand(documentsClearCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	docs, err := indexService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the index.")
		return nil
	}

	cmd.Printf("%d document(s):\n\n", len(docs))
	for _, d := range docs {
		cmd.Printf("  %s  %-30s %-5s %d bytes  %s\n",
			d.ID, d.Name, d.Type, d.Size, d.UploadedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runDocumentsRemove(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing document: %w", err)
	}
	cmd.Printf("Removed document %s\n", args[0])
	return nil
}

func runDocumentsClear(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	cmd.Println("Index cleared.")
	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	stats, err := indexService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	cmd.Println("Index")
	cmd.Printf("  Documents:  %d\n", stats.Documents)
	cmd.Printf("  Chunks:     %d\n", stats.Chunks)
	cmd.Printf("  Embeddings: %d\n", stats.Embeddings)
	cmd.Println()
	cmd.Println("Settings")
	cmd.Printf("  Chunk size:      %d\n", stats.Settings.ChunkSize)
	cmd.Printf("  Chunk overlap:   %d\n", stats.Settings.ChunkOverlap)
	cmd.Printf("  Embedding model: %s\n", stats.Settings.EmbeddingModel)
	return nil
}
