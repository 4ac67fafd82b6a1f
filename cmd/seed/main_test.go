package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/counter/internal/menu"
)

func TestSeedMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")

	written, err := seedMenu(path, false)
	require.NoError(t, err)
	assert.True(t, written)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	items, err := menu.ReadYAML(f)
	require.NoError(t, err)
	assert.Len(t, items, len(menu.DefaultItems()))
}

func TestSeedMenuKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("custom"), 0o644))

	written, err := seedMenu(path, false)
	require.NoError(t, err)
	assert.False(t, written)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(b))

	written, err = seedMenu(path, true)
	require.NoError(t, err)
	assert.True(t, written)
}
