// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp dir, environment variables
// PURPOSE: Test configuration layering: defaults, file, environment

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "mods.yml", cfg.ModsFileName)
	assert.Equal(t, "zip", cfg.ExportExtension)
	assert.True(t, cfg.Reveal)
}

func TestFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("mods_file_name: modlist.yaml\nreveal: false\n"), 0644))

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "modlist.yaml", cfg.ModsFileName)
	assert.False(t, cfg.Reveal)
	assert.Equal(t, "zip", cfg.ExportExtension, "unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("export_extension: tar\n"), 0644))

	t.Setenv("MODSTACK_EXPORT_EXTENSION", "zip")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, "zip", cfg.ExportExtension, "environment must win over the config file")
}

func TestMissingFileIsFine(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "mods.yml", cfg.ModsFileName)
}

func TestMalformedFileIsConfigParseCoded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("{{ nope"), 0644))

	_, err := load(path)
	require.Error(t, err)
}
