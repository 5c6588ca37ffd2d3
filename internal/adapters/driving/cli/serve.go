package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/ragvault/internal/adapters/driving/httpserver"
	"github.com/veldt-labs/ragvault/internal/core/ports/driven"
)

// serveStore backs the storage server, injected by the composition
// root alongside the services.
var serveStore driven.SnapshotStore

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the snapshot storage server",
	Long: `Serves the vector-storage HTTP API backed by the configured storage
backend, so browser clients and other ragvault processes can share one
durable snapshot store.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", httpserver.DefaultAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

// SetServeStore injects the snapshot store the serve command exposes.
func SetServeStore(store driven.SnapshotStore) {
	serveStore = store
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveStore == nil {
		return errors.New("storage backend not configured")
	}

	srv := httpserver.NewServer(serveAddr, serveStore)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	cmd.Printf("Storage server listening on %s\n", serveAddr)
	select {
	case err := <-errCh:
		return err
	case <-stop:
		cmd.Println("\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
