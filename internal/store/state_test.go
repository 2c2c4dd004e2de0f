package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastScheme(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	_, err := LoadLastScheme(dir)
	assert.ErrorIs(t, err, ErrNoCurrentScheme)

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(LastSchemePath(dir), []byte("ocean"), 0644))
	name, err := LoadLastScheme(dir)
	require.NoError(t, err)
	assert.Equal(t, "ocean", name)
}

func TestLoadLastScheme_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(LastSchemePath(dir), []byte("  eighties\n"), 0644))

	name, err := LoadLastScheme(dir)
	require.NoError(t, err)
	assert.Equal(t, "eighties", name)

	require.NoError(t, os.WriteFile(LastSchemePath(dir), []byte("\n"), 0644))
	_, err = LoadLastScheme(dir)
	assert.ErrorIs(t, err, ErrNoCurrentScheme)
}
