package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_RequiresArgs(t *testing.T) {
	_, err := execute("ingest")
	assert.Error(t, err)
}

func TestIngestCmd_IngestsFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello world."), 0600))

	out, err := execute("ingest", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "ok   notes.txt: 2 chunks")
	assert.Contains(t, out, "Ingested 1 of 1 files")

	mock := ingestService.(*mockIngestService)
	assert.Equal(t, []string{"notes.txt"}, mock.ingested)
}

func TestIngestCmd_UnreadableFileJoinsSummary(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("Hello."), 0600))

	out, err := execute("ingest", filepath.Join(dir, "missing.txt"), good)
	assert.NoError(t, err, "one unreadable file must not fail the batch")
	assert.Contains(t, out, "FAIL missing.txt")
	assert.Contains(t, out, "ok   good.txt")
	assert.Contains(t, out, "Ingested 1 of 2 files")
}

func TestIngestCmd_AllFailed(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("ingest", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "all files failed")
}
