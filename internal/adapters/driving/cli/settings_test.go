package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings")
	assert.NoError(t, err)
	assert.Contains(t, out, "chunk-size:    1000")
	assert.Contains(t, out, "chunk-overlap: 200")
	assert.Contains(t, out, "model:         nomic-embed-text")
}

func TestSettingsCmd_SetChunkSize(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("settings", "set", "chunk-size", "500")
	assert.NoError(t, err)
	assert.Contains(t, out, "Set chunk-size = 500")
	assert.Equal(t, 500, settingsService.Get().ChunkSize)
}

func TestSettingsCmd_SetModel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "model", "all-minilm")
	assert.NoError(t, err)
	assert.Equal(t, "all-minilm", settingsService.Get().EmbeddingModel)
}

func TestSettingsCmd_SetRejectsInvalidOverlap(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "chunk-overlap", "1000")
	assert.Error(t, err, "overlap equal to chunk size must be rejected")

	_, err = execute("settings", "set", "chunk-overlap", "abc")
	assert.Error(t, err)
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("settings", "set", "nope", "1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}
