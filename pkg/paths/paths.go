// Package paths provides centralized path handling for modstack.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/types"
)

// Paths provides centralized path management for modstack
type Paths interface {
	types.Pather

	// ProfileMetaPath returns the metadata file of a profile
	ProfileMetaPath(profileName string) string
}

// Environment variable names
const (
	// EnvProfilesDir overrides the root directory holding all profiles
	EnvProfilesDir = "MODSTACK_PROFILES_DIR"

	// EnvExportDir overrides the directory export archives go to
	EnvExportDir = "MODSTACK_EXPORT_DIR"
)

// Default directories and files
// IMPORTANT: These constants define modstack's on-disk layout and are NOT
// user-configurable here. The mods file name is configurable through
// pkg/config; everything else must remain consistent across installations.
const (
	// ModstackDirName is the directory name for modstack-specific files
	ModstackDirName = "modstack"

	// ProfilesDir is the subdirectory holding profile directories
	ProfilesDir = "profiles"

	// ExportsDir is the subdirectory export archives are written to
	ExportsDir = "exports"

	// ConfigDirName is the per-profile configuration directory bundled
	// into exports
	ConfigDirName = "config"

	// ProfileMetaFile is the per-profile metadata file
	ProfileMetaFile = "profile.toml"

	// DefaultModsFileName is the default backing list file name
	DefaultModsFileName = "mods.yml"
)

// paths provides centralized path management for modstack.
// It satisfies types.Pather.
type paths struct {
	profilesRoot string
	exportDir    string
	modsFileName string
}

// New creates a Paths instance. modsFileName selects the backing file
// name within each profile directory; empty means the default.
// Environment overrides win over the XDG data directory anchors.
func New(modsFileName string) (Paths, error) {
	p := &paths{modsFileName: modsFileName}
	if p.modsFileName == "" {
		p.modsFileName = DefaultModsFileName
	}

	if root := os.Getenv(EnvProfilesDir); root != "" {
		p.profilesRoot = expandHome(root)
	} else {
		p.profilesRoot = filepath.Join(xdg.DataHome, ModstackDirName, ProfilesDir)
	}

	if dir := os.Getenv(EnvExportDir); dir != "" {
		p.exportDir = expandHome(dir)
	} else {
		p.exportDir = filepath.Join(xdg.DataHome, ModstackDirName, ExportsDir)
	}

	for _, dir := range []*string{&p.profilesRoot, &p.exportDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput,
				"failed to resolve absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

func (p *paths) ProfilesRoot() string {
	return p.profilesRoot
}

func (p *paths) ExportDir() string {
	return p.exportDir
}

func (p *paths) ProfilePath(profileName string) string {
	return filepath.Join(p.profilesRoot, profileName)
}

func (p *paths) ModsFilePath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), p.modsFileName)
}

func (p *paths) ConfigDirPath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), ConfigDirName)
}

// ProfileMetaPath returns the metadata file of a profile
func (p *paths) ProfileMetaPath(profileName string) string {
	return filepath.Join(p.ProfilePath(profileName), ProfileMetaFile)
}

// reloadXDG re-reads the XDG environment; used by tests that change it
func reloadXDG() {
	xdg.Reload()
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
