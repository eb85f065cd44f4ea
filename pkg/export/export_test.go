// pkg/export/export_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test archive assembly: envelope entry, config tree, reveal hook

package export_test

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/export"
	"github.com/arthur-debert/modstack/pkg/modlist"
	"github.com/arthur-debert/modstack/pkg/testutil"
	"github.com/arthur-debert/modstack/pkg/types"
)

// recordingRevealer captures the reveal side effect
type recordingRevealer struct {
	revealed []string
	err      error
}

func (r *recordingRevealer) Reveal(path string) error {
	r.revealed = append(r.revealed, path)
	return r.err
}

func newExporter(env *testutil.TestEnvironment, revealer *recordingRevealer) *export.Exporter {
	mgr := modlist.New(env.FS, "mods.yml")
	return export.New(env.FS, env.Paths, mgr, revealer, "zip")
}

func readArchive(t *testing.T, env *testutil.TestEnvironment, archivePath string) map[string]string {
	t.Helper()

	data, err := env.FS.ReadFile(archivePath)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(content)
	}
	return entries
}

func TestExportArchiveContents(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "hardcore", testutil.ProfileConfig{
		Mods: "- name: quality-tweaks\n  version: 1.2.0\n- name: extra-biomes\n",
		ConfigFiles: map[string]string{
			"settings.ini":       "difficulty=max",
			"keybinds/moves.cfg": "jump=space",
		},
	})
	revealer := &recordingRevealer{}

	archivePath, err := newExporter(env, revealer).Export(profile)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.Paths.ExportDir(), "hardcore.zip"), archivePath)

	entries := readArchive(t, env, archivePath)
	require.Contains(t, entries, "export.yml")
	assert.Equal(t, "difficulty=max", entries["config/settings.ini"])
	assert.Equal(t, "jump=space", entries["config/keybinds/moves.cfg"])

	var env2 struct {
		Name string `yaml:"name"`
		Mods []struct {
			Name string `yaml:"name"`
		} `yaml:"mods"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(entries["export.yml"]), &env2))
	assert.Equal(t, "hardcore", env2.Name)
	require.Len(t, env2.Mods, 2)
	assert.Equal(t, "quality-tweaks", env2.Mods[0].Name)
	assert.Equal(t, "extra-biomes", env2.Mods[1].Name)
}

func TestExportMissingConfigDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "bare", testutil.ProfileConfig{
		Mods: "- name: quality-tweaks\n",
	})

	archivePath, err := newExporter(env, &recordingRevealer{}).Export(profile)

	require.NoError(t, err, "a profile without a config directory still exports")
	entries := readArchive(t, env, archivePath)
	assert.Len(t, entries, 1, "only the envelope entry should be present")
}

func TestExportRevealIsBestEffort(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "hardcore", testutil.ProfileConfig{
		Mods: "- name: quality-tweaks\n",
	})
	revealer := &recordingRevealer{err: assert.AnError}

	archivePath, err := newExporter(env, revealer).Export(profile)

	require.NoError(t, err, "a failing reveal must not fail the export")
	assert.Equal(t, []string{archivePath}, revealer.revealed)
}

func TestExportPropagatesListFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "broken", testutil.ProfileConfig{
		Mods: "{{ this is not yaml",
	})

	_, err := newExporter(env, &recordingRevealer{}).Export(profile)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrParse), "list failures pass through typed")
}

func TestExportNilRevealerDefaultsToNoop(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "hardcore", testutil.ProfileConfig{
		Mods: "- name: quality-tweaks\n",
	})
	mgr := modlist.New(env.FS, "mods.yml")
	exporter := export.New(env.FS, env.Paths, mgr, nil, "zip")

	_, err := exporter.Export(profile)
	require.NoError(t, err)
}

func TestExportEmptyProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	profile := env.SetupProfile(t, "empty", testutil.ProfileConfig{})

	archivePath, err := newExporter(env, &recordingRevealer{}).Export(profile)

	require.NoError(t, err)
	entries := readArchive(t, env, archivePath)

	var env2 struct {
		Name string         `yaml:"name"`
		Mods []types.Record `yaml:"mods"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(entries["export.yml"]), &env2))
	assert.Equal(t, "empty", env2.Name)
	assert.Empty(t, env2.Mods)
}
