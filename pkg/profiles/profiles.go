// Package profiles resolves profile directories under the profiles root.
// A profile is a directory holding a mod list, an optional profile.toml
// with metadata, and a config/ directory bundled on export.
package profiles

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/logging"
	"github.com/arthur-debert/modstack/pkg/paths"
	"github.com/arthur-debert/modstack/pkg/types"
)

// meta is the profile.toml shape; unknown keys are ignored
type meta struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Load resolves a named profile. The profile directory must exist; the
// metadata file is optional and defaults to the directory name.
func Load(fs types.FS, p paths.Paths, name string) (types.Profile, error) {
	dir := p.ProfilePath(name)

	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Profile{}, errors.Newf(errors.ErrProfileNotFound,
				"profile %q does not exist", name).WithDetail("path", dir)
		}
		return types.Profile{}, errors.Wrapf(err, errors.ErrProfileNotFound,
			"profile %q could not be accessed", name)
	}
	if !info.IsDir() {
		return types.Profile{}, errors.Newf(errors.ErrProfileInvalid,
			"profile path %s is not a directory", dir)
	}

	profile := types.Profile{Name: name, Path: dir}

	data, err := fs.ReadFile(p.ProfileMetaPath(name))
	if err != nil {
		// No metadata file is the common case for hand-made profiles.
		return profile, nil
	}

	var m meta
	if err := toml.Unmarshal(data, &m); err != nil {
		return types.Profile{}, errors.Wrapf(err, errors.ErrProfileInvalid,
			"profile %q has malformed metadata", name)
	}
	if m.Name != "" {
		profile.Name = m.Name
	}
	if m.Description != "" {
		profile.Metadata = map[string]interface{}{"description": m.Description}
	}

	return profile, nil
}

// Discover lists all profiles under the profiles root, sorted by
// directory name. A missing root yields an empty slice.
func Discover(fs types.FS, p paths.Paths) ([]types.Profile, error) {
	logger := logging.GetLogger("profiles.discover")

	entries, err := fs.ReadDir(p.ProfilesRoot())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrGeneric,
			"profiles root %s could not be read", p.ProfilesRoot())
	}

	var found []types.Profile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		profile, err := Load(fs, p, entry.Name())
		if err != nil {
			logger.Warn().Err(err).Str("dir", entry.Name()).Msg("Skipping unloadable profile")
			continue
		}
		found = append(found, profile)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })

	logger.Debug().Int("count", len(found)).Msg("Discovered profiles")
	return found, nil
}

// Create makes the directory skeleton for a new profile and writes its
// metadata file. Creating an existing profile is an error.
func Create(fs types.FS, p paths.Paths, name string) (types.Profile, error) {
	if name == "" {
		return types.Profile{}, errors.New(errors.ErrInvalidInput, "profile name must not be empty")
	}

	dir := p.ProfilePath(name)
	if _, err := fs.Stat(dir); err == nil {
		return types.Profile{}, errors.Newf(errors.ErrProfileInvalid,
			"profile %q already exists", name)
	}

	if err := fs.MkdirAll(p.ConfigDirPath(name), 0755); err != nil {
		return types.Profile{}, errors.Wrapf(err, errors.ErrDirCreate,
			"profile directory %s could not be created", dir)
	}

	data, err := toml.Marshal(meta{Name: name})
	if err != nil {
		return types.Profile{}, errors.Wrap(err, errors.ErrConvert, "profile metadata could not be serialized")
	}
	if err := fs.WriteFile(p.ProfileMetaPath(name), data, 0644); err != nil {
		return types.Profile{}, errors.Wrapf(err, errors.ErrWrite,
			"profile metadata for %q could not be written", name)
	}

	logger := logging.GetLogger("profiles.create")
	logger.Info().Str("profile", name).Str("path", dir).Msg("Created profile")
	return types.Profile{Name: name, Path: dir}, nil
}
