// internal/cli/commands_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Temp dir, environment variables
// PURPOSE: Test command wiring and the end-to-end flow against a real
// filesystem

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRootCommandStructure(t *testing.T) {
	rootCmd := NewRootCmd()

	expected := []string{
		"version", "init", "profiles", "list", "add", "remove",
		"enable", "disable", "up", "down", "export",
	}

	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, names[name], "command %q should be registered", name)
	}
}

func TestPersistentFlags(t *testing.T) {
	rootCmd := NewRootCmd()

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))

	profileFlag := rootCmd.PersistentFlags().Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, DefaultProfile, profileFlag.DefValue)
}

func run(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func setupEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("MODSTACK_PROFILES_DIR", filepath.Join(root, "profiles"))
	t.Setenv("MODSTACK_EXPORT_DIR", filepath.Join(root, "exports"))
	t.Setenv("MODSTACK_REVEAL", "false")
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	return root
}

func persistedNames(t *testing.T, root, profile string) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, "profiles", profile, "mods.yml"))
	require.NoError(t, err)

	var list []struct {
		Name string `yaml:"name"`
	}
	require.NoError(t, yaml.Unmarshal(data, &list))

	names := make([]string, len(list))
	for i, rec := range list {
		names[i] = rec.Name
	}
	return names
}

func TestEndToEndFlow(t *testing.T) {
	root := setupEnv(t)

	require.NoError(t, run(t, "init", "hardcore"))
	require.NoError(t, run(t, "add", "quality-tweaks", "--mod-version", "1.2.0", "-p", "hardcore"))
	require.NoError(t, run(t, "add", "extra-biomes", "-p", "hardcore"))
	require.NoError(t, run(t, "add", "fast-travel", "-p", "hardcore"))

	assert.Equal(t, []string{"quality-tweaks", "extra-biomes", "fast-travel"}, persistedNames(t, root, "hardcore"))

	require.NoError(t, run(t, "up", "fast-travel", "-p", "hardcore"))
	assert.Equal(t, []string{"quality-tweaks", "fast-travel", "extra-biomes"}, persistedNames(t, root, "hardcore"))

	require.NoError(t, run(t, "remove", "extra-biomes", "-p", "hardcore"))
	assert.Equal(t, []string{"quality-tweaks", "fast-travel"}, persistedNames(t, root, "hardcore"))

	require.NoError(t, run(t, "disable", "fast-travel", "-p", "hardcore"))
	require.NoError(t, run(t, "list", "-p", "hardcore"))

	require.NoError(t, run(t, "export", "-p", "hardcore"))
	_, err := os.Stat(filepath.Join(root, "exports", "hardcore.zip"))
	assert.NoError(t, err, "export archive should be written")
}

func TestListUnknownProfileFails(t *testing.T) {
	setupEnv(t)

	err := run(t, "list", "-p", "ghost")
	require.Error(t, err)
}

func TestInitTwiceFails(t *testing.T) {
	setupEnv(t)

	require.NoError(t, run(t, "init", "dupe"))
	require.Error(t, run(t, "init", "dupe"))
}
