package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage durable index snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist the index to storage",
	Long: `Writes the full index as a timestamped snapshot. Retention is
single-snapshot: any previous snapshot files are deleted first.`,
	RunE: runSnapshotSave,
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the index from the newest snapshot",
	RunE:  runSnapshotRestore,
}

var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all snapshots from storage",
	Long: `Deletes every snapshot file from storage. The in-memory index is
untouched; use "documents clear" for that.`,
	RunE: runSnapshotClear,
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotRestoreCmd)
	snapshotCmd.AddCommand(snapshotClearCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshotSave(cmd *cobra.Command, _ []string) error {
	if persistenceService == nil {
		return errors.New("persistence service not configured")
	}

	filename, err := persistenceService.Persist(cmd.Context())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	cmd.Printf("Saved %s\n", filename)
	return nil
}

func runSnapshotRestore(cmd *cobra.Command, _ []string) error {
	if persistenceService == nil {
		return errors.New("persistence service not configured")
	}

	restored, err := persistenceService.Restore(cmd.Context())
	if err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}
	if !restored {
		cmd.Println("No snapshots in storage; nothing restored.")
		return nil
	}

	if indexService != nil {
		stats, err := indexService.Stats(cmd.Context())
		if err == nil {
			cmd.Printf("Restored %d document(s), %d chunk(s)\n", stats.Documents, stats.Chunks)
			return nil
		}
	}
	cmd.Println("Restored.")
	return nil
}

func runSnapshotClear(cmd *cobra.Command, _ []string) error {
	if persistenceService == nil {
		return errors.New("persistence service not configured")
	}

	if err := persistenceService.ClearStorage(cmd.Context()); err != nil {
		return fmt.Errorf("clearing storage: %w", err)
	}
	cmd.Println("Storage cleared.")
	return nil
}
