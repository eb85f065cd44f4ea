package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modstack/pkg/types"
)

// TestPaths implements types.Pather rooted at a fixed directory, so tests
// can run against a MemoryFS without touching XDG locations.
type TestPaths struct {
	Root         string
	ModsFileName string
}

// NewTestPaths creates a TestPaths anchored at root
func NewTestPaths(root string) *TestPaths {
	return &TestPaths{Root: root, ModsFileName: "mods.yml"}
}

func (p *TestPaths) ProfilesRoot() string {
	return filepath.Join(p.Root, "profiles")
}

func (p *TestPaths) ExportDir() string {
	return filepath.Join(p.Root, "exports")
}

func (p *TestPaths) ProfilePath(profileName string) string {
	return filepath.Join(p.ProfilesRoot(), profileName)
}

func (p *TestPaths) ModsFilePath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), p.ModsFileName)
}

func (p *TestPaths) ConfigDirPath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), "config")
}

func (p *TestPaths) ProfileMetaPath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), "profile.toml")
}

// ProfileConfig describes the initial contents of a test profile
type ProfileConfig struct {
	// Mods is the raw mods.yml payload; empty means no backing file yet
	Mods string

	// ConfigFiles seeds files under the profile's config/ directory,
	// keyed by relative path
	ConfigFiles map[string]string

	// Metadata is the raw profile.toml payload; empty means none
	Metadata string
}

// TestEnvironment bundles a memory filesystem with test paths
type TestEnvironment struct {
	FS    *MemoryFS
	Paths *TestPaths
}

// NewTestEnvironment creates an isolated in-memory environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	fs := NewMemoryFS()
	paths := NewTestPaths("/test")
	if err := fs.MkdirAll(paths.ProfilesRoot(), 0755); err != nil {
		t.Fatalf("failed to create profiles root: %v", err)
	}

	return &TestEnvironment{FS: fs, Paths: paths}
}

// SetupProfile creates a profile directory with the given contents and
// returns its handle
func (e *TestEnvironment) SetupProfile(t *testing.T, name string, cfg ProfileConfig) types.Profile {
	t.Helper()

	profileDir := e.Paths.ProfilePath(name)
	if err := e.FS.MkdirAll(profileDir, 0755); err != nil {
		t.Fatalf("failed to create profile dir: %v", err)
	}

	if cfg.Mods != "" {
		if err := e.FS.WriteFile(e.Paths.ModsFilePath(name), []byte(cfg.Mods), 0644); err != nil {
			t.Fatalf("failed to seed mods file: %v", err)
		}
	}

	if cfg.Metadata != "" {
		if err := e.FS.WriteFile(filepath.Join(profileDir, "profile.toml"), []byte(cfg.Metadata), 0644); err != nil {
			t.Fatalf("failed to seed profile metadata: %v", err)
		}
	}

	for rel, content := range cfg.ConfigFiles {
		path := filepath.Join(e.Paths.ConfigDirPath(name), rel)
		if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to seed config file %s: %v", rel, err)
		}
	}

	return types.Profile{Name: name, Path: profileDir}
}

// ReadModsFile returns the raw persisted payload for a profile
func (e *TestEnvironment) ReadModsFile(t *testing.T, name string) []byte {
	t.Helper()

	data, err := e.FS.ReadFile(e.Paths.ModsFilePath(name))
	if err != nil {
		t.Fatalf("failed to read mods file for %s: %v", name, err)
	}
	return data
}
