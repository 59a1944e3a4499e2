package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-coin-series/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_SaveAndLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "nested", "summary.log")
	s := NewSnapshot(path)

	_, err := s.Load()
	assert.ErrorIs(t, err, storage.NotFoundErr)

	err = s.Save("first report\nwith more lines\n")
	require.NoError(t, err)

	err = s.Save("second")
	require.NoError(t, err)

	text, err := s.Load()
	require.NoError(t, err)
	// no append, the last save wins
	assert.Equal(t, "second", text)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSnapshot_DefaultPath(t *testing.T) {
	s := NewSnapshot("")
	assert.Equal(t, storage.SnapshotFile, s.Path())
}

func TestSnapshot_SaveFailure(t *testing.T) {

	dir := t.TempDir()
	parent := filepath.Join(dir, "file")
	err := os.WriteFile(parent, []byte("not a dir"), 0600)
	require.NoError(t, err)

	s := NewSnapshot(filepath.Join(parent, "summary.log"))
	err = s.Save("text")
	assert.ErrorIs(t, err, storage.CouldNotSaveErr)
}
