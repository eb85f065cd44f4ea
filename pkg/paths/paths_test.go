// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (environment variables only)
// PURPOSE: Test path resolution and environment overrides

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvProfilesDir, "/srv/modstack/profiles")
	t.Setenv(EnvExportDir, "/srv/modstack/exports")

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/modstack/profiles", p.ProfilesRoot())
	assert.Equal(t, "/srv/modstack/exports", p.ExportDir())
}

func TestProfilePaths(t *testing.T) {
	t.Setenv(EnvProfilesDir, "/srv/modstack/profiles")
	t.Setenv(EnvExportDir, "/srv/modstack/exports")

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/srv/modstack/profiles", "hardcore"), p.ProfilePath("hardcore"))
	assert.Equal(t, filepath.Join("/srv/modstack/profiles", "hardcore", "mods.yml"), p.ModsFilePath("hardcore"))
	assert.Equal(t, filepath.Join("/srv/modstack/profiles", "hardcore", "config"), p.ConfigDirPath("hardcore"))
	assert.Equal(t, filepath.Join("/srv/modstack/profiles", "hardcore", "profile.toml"), p.ProfileMetaPath("hardcore"))
}

func TestCustomModsFileName(t *testing.T) {
	t.Setenv(EnvProfilesDir, "/srv/modstack/profiles")

	p, err := New("modlist.yaml")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/srv/modstack/profiles", "default", "modlist.yaml"), p.ModsFilePath("default"))
}

func TestXDGDefault(t *testing.T) {
	t.Setenv(EnvProfilesDir, "")
	t.Setenv(EnvExportDir, "")
	t.Setenv("XDG_DATA_HOME", "/home/player/.local/share")

	// xdg caches values per process; Reload picks up the test env.
	reloadXDG()

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "/home/player/.local/share/modstack/profiles", p.ProfilesRoot())
	assert.Equal(t, "/home/player/.local/share/modstack/exports", p.ExportDir())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")

	assert.Equal(t, "/home/player/mods", expandHome("~/mods"))
	assert.Equal(t, "/srv/mods", expandHome("/srv/mods"))
}
