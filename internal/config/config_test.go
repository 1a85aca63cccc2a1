package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		yaml := `
verbose: true
mode: batch
progress_interval: 5000
`

		cfg, err := Parse([]byte(yaml))
		require.NoError(t, err)

		assert.True(t, cfg.Verbose)
		assert.Equal(t, ModeBatch, cfg.Mode)
		assert.Equal(t, 5000, cfg.ProgressInterval)
	})

	t.Run("defaults for omitted fields", func(t *testing.T) {
		t.Parallel()

		cfg, err := Parse([]byte("verbose: true\n"))
		require.NoError(t, err)

		assert.Equal(t, ModeStream, cfg.Mode)
		assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("mode: parallel\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("mode: [unterminated\n"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: stream\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ModeStream, cfg.Mode)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.False(t, cfg.Verbose)
	assert.Equal(t, ModeStream, cfg.Mode)
	assert.Equal(t, DefaultProgressInterval, cfg.ProgressInterval)
}
