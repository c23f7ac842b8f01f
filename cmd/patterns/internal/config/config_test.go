package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopatterns/cmd/patterns/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadOptional_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := config.LoadOptional(filepath.Join(t.TempDir(), "patterns.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Demos)
	assert.False(t, cfg.Parallel)
	assert.False(t, cfg.NoHeaders)
}

func TestLoadOptional_FullConfig(t *testing.T) {
	path := writeFile(t, "patterns.yaml", `
demos:
  - composite
  - observer
parallel: true
no_headers: true
`)

	cfg, err := config.LoadOptional(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"composite", "observer"}, cfg.Demos)
	assert.True(t, cfg.Parallel)
	assert.True(t, cfg.NoHeaders)
}

func TestLoadOptional_MalformedYAML(t *testing.T) {
	path := writeFile(t, "patterns.yaml", "demos: [unclosed")

	cfg, err := config.LoadOptional(path)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to parse")
}
