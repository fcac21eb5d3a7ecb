package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnch-cli/pnch/internal/codec"
	"github.com/pnch-cli/pnch/internal/storage"
	"github.com/pnch-cli/pnch/internal/tag"
)

func TestTagRoundTrip(t *testing.T) {
	original := tag.Tag{ID: 3, Text: "BUG-1"}
	chunk, err := original.Encode()
	require.NoError(t, err)
	require.Len(t, chunk, tag.Size)

	decoded, err := tag.Decode(chunk)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestTagEncodeRejectsZeroByte(t *testing.T) {
	_, err := tag.Tag{ID: 0, Text: "bad\x00tag"}.Encode()
	assert.ErrorIs(t, err, codec.ErrTextInvalid)
}

func TestTagDecodeWrongLength(t *testing.T) {
	_, err := tag.Decode(make([]byte, tag.Size-1))
	require.ErrorIs(t, err, codec.ErrWrongByteLen)
	assert.Contains(t, err.Error(), "tag")
}

func TestGetOrInsertInterns(t *testing.T) {
	table, err := tag.Load(storage.Dir(t.TempDir()))
	require.NoError(t, err)

	first := table.GetOrInsert("BUG-1")
	assert.Equal(t, uint32(0), first.ID)
	second := table.GetOrInsert("CHORE")
	assert.Equal(t, uint32(1), second.ID)

	// Same text again: same id, table does not grow.
	again := table.GetOrInsert("BUG-1")
	assert.Equal(t, first, again)
	assert.Equal(t, 2, table.Len())
}

func TestGetOutOfBounds(t *testing.T) {
	table, err := tag.Load(storage.Dir(t.TempDir()))
	require.NoError(t, err)
	table.GetOrInsert("BUG-1")

	got, ok := table.Get(0)
	require.True(t, ok)
	assert.Equal(t, "BUG-1", got.Text)

	_, ok = table.Get(1)
	assert.False(t, ok)
	_, ok = table.Get(tag.NoneID)
	assert.False(t, ok)
}

func TestTableSaveLoad(t *testing.T) {
	dir := storage.Dir(t.TempDir())

	table, err := tag.Load(dir)
	require.NoError(t, err)
	table.GetOrInsert("BUG-1")
	table.GetOrInsert("CHORE")
	require.NoError(t, table.Save())

	reloaded, err := tag.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
	got, ok := reloaded.Get(1)
	require.True(t, ok)
	assert.Equal(t, tag.Tag{ID: 1, Text: "CHORE"}, got)
}

func TestLoadRejectsPartialRecord(t *testing.T) {
	dir := storage.Dir(t.TempDir())
	require.NoError(t, dir.Save("tags.db", make([]byte, tag.Size+3)))

	_, err := tag.Load(dir)
	require.ErrorIs(t, err, codec.ErrWrongByteLen)
	assert.Contains(t, err.Error(), "not a multiple")
}
