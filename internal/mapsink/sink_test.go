package mapsink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svmlight-indexer/internal/intern"
)

func TestSinkAppend(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mapping.txt")

	s, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, s.Append(1, "color"))
	require.NoError(t, s.Append(2, "size"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 color\n2 size\n", string(data))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes snapshot", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mapping.txt")
		entries := []intern.Entry{
			{Index: 1, Name: "x"},
			{Index: 2, Name: "y"},
		}

		require.NoError(t, WriteFile(path, entries))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1 x\n2 y\n", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "mapping.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0o644))

		require.NoError(t, WriteFile(path, []intern.Entry{{Index: 1, Name: "a"}}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1 a\n", string(data))
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "mapping.txt")
		err := WriteFile(path, nil)
		assert.Error(t, err)
	})
}
