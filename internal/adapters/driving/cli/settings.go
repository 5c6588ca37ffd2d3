package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage chunking and embedding settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Update one setting",
	Long: `Updates one setting and persists it to the config file.

Keys:
  chunk-size     maximum chunk size in characters
  chunk-overlap  overlap between adjacent chunks (must stay below chunk-size)
  model          Ollama embedding model name`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()
	cmd.Println("Current Settings")
	cmd.Printf("  chunk-size:    %d\n", settings.ChunkSize)
	cmd.Printf("  chunk-overlap: %d\n", settings.ChunkOverlap)
	cmd.Printf("  model:         %s\n", settings.EmbeddingModel)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case "chunk-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("chunk-size must be an integer: %w", err)
		}
		if err := settingsService.SetChunkSize(size); err != nil {
			return err
		}
	case "chunk-overlap":
		overlap, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("chunk-overlap must be an integer: %w", err)
		}
		if err := settingsService.SetChunkOverlap(overlap); err != nil {
			return err
		}
	case "model":
		if err := settingsService.SetEmbeddingModel(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown setting %q (expected chunk-size, chunk-overlap or model)", key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	cmd.Println("Note: existing documents keep their current chunking until re-ingested.")
	return nil
}
