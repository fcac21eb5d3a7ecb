package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnch-cli/pnch/internal/storage"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	dir := storage.Dir(t.TempDir())
	data, err := dir.Load("pnchs.db")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := storage.Dir(t.TempDir())
	blob := []byte{1, 2, 3, 0xFF}
	require.NoError(t, dir.Save("tags.db", blob))

	data, err := dir.Load("tags.db")
	require.NoError(t, err)
	assert.Equal(t, blob, data)
}

func TestSaveRewritesWholeFile(t *testing.T) {
	dir := storage.Dir(t.TempDir())
	require.NoError(t, dir.Save("config.db", []byte("first version")))
	require.NoError(t, dir.Save("config.db", []byte("short")))

	data, err := dir.Load("config.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), data)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := storage.Dir(t.TempDir())
	require.NoError(t, dir.Save("tags.db", []byte{1}))

	_, err := os.Stat(filepath.Join(string(dir), "tags.db.tmp"))
	assert.True(t, os.IsNotExist(err))
}
