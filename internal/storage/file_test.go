package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirim-labs/invoice-service/internal/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "state.json")
	store, err := NewFileStore(path, newTestLogger())
	require.NoError(t, err)
	return store, path
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store, _ := newTestFileStore(t)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Documents)
	assert.Empty(t, state.Customers)
	assert.Equal(t, models.BusinessProfile{}, state.BusinessProfile)
}

func TestFileStoreLoadMalformedFile(t *testing.T) {
	store, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Documents)
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestFileStore(t)

	state := models.NewAppState()
	state.BusinessProfile.Name = "Studio Pixel"
	doc := models.NewDocument(models.DocumentTypeInvoice)
	doc.Number = "INV-2026-0001"
	state.UpsertDocument(*doc)

	require.NoError(t, store.Save(state))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Studio Pixel", loaded.BusinessProfile.Name)
	require.Len(t, loaded.Documents, 1)
	assert.Equal(t, "INV-2026-0001", loaded.Documents[0].Number)
	assert.Equal(t, doc.ID, loaded.Documents[0].ID)
}

func TestFileStoreSaveLeavesNoTempFile(t *testing.T) {
	store, path := newTestFileStore(t)
	require.NoError(t, store.Save(models.NewAppState()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
